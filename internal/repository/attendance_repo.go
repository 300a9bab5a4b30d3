package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sdasasqkim/edu-admin/internal/model"
)

// AttendanceRepository 출결 데이터 접근 인터페이스
type AttendanceRepository interface {
	Upsert(ctx context.Context, record *model.AttendanceRecord) error
	ListByStudent(ctx context.Context, studentID string, from, to *time.Time) ([]model.AttendanceRecord, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.AttendanceRecord, error)
	CountByDate(ctx context.Context, date time.Time) (map[string]int, error)
}

// attendanceRepo AttendanceRepository 의 GORM 구현
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo AttendanceRepository 인스턴스 생성
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

// Upsert 같은 (학생, 날짜) 기록이 있으면 상태를 덮어쓴다
func (r *attendanceRepo) Upsert(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(record).Error
}

func (r *attendanceRepo) ListByStudent(ctx context.Context, studentID string, from, to *time.Time) ([]model.AttendanceRecord, error) {
	db := r.db.WithContext(ctx).
		Where("student_id = ?", studentID)
	if from != nil {
		db = db.Where("date >= ?", *from)
	}
	if to != nil {
		db = db.Where("date <= ?", *to)
	}

	var records []model.AttendanceRecord
	if err := db.Order("date ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountByDate 날짜 하나의 상태별 집계 (A/B/C → 건수)
func (r *attendanceRepo) CountByDate(ctx context.Context, date time.Time) (map[string]int, error) {
	type row struct {
		Status string
		Cnt    int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.AttendanceRecord{}).
		Select("status, COUNT(*) AS cnt").
		Where("date = ?", date).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Cnt
	}
	return counts, nil
}
