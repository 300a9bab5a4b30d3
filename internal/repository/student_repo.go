package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/internal/model"
)

// StudentRepository 학생 데이터 접근 인터페이스
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Student, error)
	ListWithSchedule(ctx context.Context) ([]model.Student, error)
	ReplaceSchedule(ctx context.Context, studentID string, slots []model.ScheduleSlot) error
	BatchCreate(ctx context.Context, students []*model.Student) error
}

// studentRepo StudentRepository 의 GORM 구현
type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo StudentRepository 인스턴스 생성
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Schedule").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	// Save 는 연관 슬롯까지 건드리므로 본 컬럼만 갱신한다
	return r.db.WithContext(ctx).Model(student).
		Omit("Schedule").
		Select("school", "grade", "name", "phone", "english", "math",
			"eng_teacher", "math_teacher",
			"english_join_date", "english_leave_date",
			"math_join_date", "math_leave_date").
		Updates(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) ListWithSchedule(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Preload("Schedule").
		Order("name ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// ReplaceSchedule 학생 시간표 슬롯 전체 교체 (트랜잭션)
func (r *studentRepo) ReplaceSchedule(ctx context.Context, studentID string, slots []model.ScheduleSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", studentID).
			Delete(&model.ScheduleSlot{}).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].StudentID = studentID
		}
		return tx.Create(&slots).Error
	})
}

// BatchCreate 레거시 가져오기용 일괄 생성 (슬롯 포함, 단일 트랜잭션)
func (r *studentRepo) BatchCreate(ctx context.Context, students []*model.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range students {
			if err := tx.Create(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
