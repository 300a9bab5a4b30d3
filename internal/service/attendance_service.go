package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// ── 출결 모듈 업무 오류 ──

var ErrInvalidAttendanceStatus = errors.New("유효하지 않은 출결 상태 코드입니다")

// AttendanceService 출결 업무 인터페이스
type AttendanceService interface {
	Mark(ctx context.Context, studentID string, req *dto.MarkAttendanceRequest) error
	GetByStudent(ctx context.Context, studentID string, req *dto.AttendanceQueryRequest) (*dto.AttendanceResponse, error)
	DailyView(ctx context.Context, req *dto.DailyAttendanceRequest) (*dto.DailyAttendanceResponse, error)
	SummaryByDate(ctx context.Context, date time.Time) (*dto.AttendanceSummary, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService AttendanceService 인스턴스 생성
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// Mark 출결을 기록한다 — 같은 (학생, 날짜)의 기존 기록은 덮어쓴다
func (s *attendanceService) Mark(ctx context.Context, studentID string, req *dto.MarkAttendanceRequest) error {
	if !model.ValidAttendanceStatus(req.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidAttendanceStatus, req.Status)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 학생 존재 확인
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.Error(err))
		return err
	}

	record := &model.AttendanceRecord{
		StudentID: studentID,
		Date:      date,
		Status:    req.Status,
	}
	if err := s.repo.Attendance.Upsert(ctx, record); err != nil {
		s.logger.Error("출결 기록 실패", zap.Error(err))
		return err
	}
	return nil
}

func (s *attendanceService) GetByStudent(ctx context.Context, studentID string, req *dto.AttendanceQueryRequest) (*dto.AttendanceResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.Error(err))
		return nil, err
	}

	var from, to *time.Time
	if from, err = parseDatePtr(strPtrOrNil(req.From)); err != nil {
		return nil, err
	}
	if to, err = parseDatePtr(strPtrOrNil(req.To)); err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		s.logger.Error("출결 조회 실패", zap.Error(err))
		return nil, err
	}

	entries := make([]dto.AttendanceEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, dto.AttendanceEntry{
			Date:   r.Date.Format(dateLayout),
			Status: r.Status,
			Label:  model.AttendanceStatusLabel[r.Status],
		})
	}

	return &dto.AttendanceResponse{
		StudentID: student.StudentID,
		Name:      student.Name,
		Records:   entries,
	}, nil
}

// DailyView 날짜 하나의 전체 학생 출결 현황을 만든다
// 학교/학년은 정확히 일치하는 값으로, 과목은 해당일 재원 여부로 거른다
func (s *attendanceService) DailyView(ctx context.Context, req *dto.DailyAttendanceRequest) (*dto.DailyAttendanceResponse, error) {
	// Truncate(24h)는 UTC 자정이라 로컬 날짜와 어긋날 수 있다
	date := truncateToDate(time.Now())
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
		}
		date = parsed
	}

	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("학생 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	records, err := s.repo.Attendance.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("출결 조회 실패", zap.Error(err))
		return nil, err
	}

	statusByStudent := make(map[string]string, len(records))
	for _, r := range records {
		statusByStudent[r.StudentID] = r.Status
	}

	var summary dto.AttendanceSummary
	rows := make([]dto.DailyAttendanceRow, 0, len(students))
	for i := range students {
		st := &students[i]
		if req.School != "" && st.School != req.School {
			continue
		}
		if req.Grade != "" && st.Grade != req.Grade {
			continue
		}
		if req.Subject != "" && !IsSubjectActive(st, req.Subject, date) {
			continue
		}

		status := statusByStudent[st.StudentID]
		switch status {
		case model.AttendancePresent:
			summary.Present++
		case model.AttendanceLate:
			summary.Late++
		case model.AttendanceAbsent:
			summary.Absent++
		}

		rows = append(rows, dto.DailyAttendanceRow{
			StudentID: st.StudentID,
			Name:      st.Name,
			School:    st.School,
			Grade:     st.Grade,
			Status:    status,
			Label:     model.AttendanceStatusLabel[status],
		})
	}

	return &dto.DailyAttendanceResponse{
		Date:    date.Format(dateLayout),
		Rows:    rows,
		Summary: summary,
	}, nil
}

func (s *attendanceService) SummaryByDate(ctx context.Context, date time.Time) (*dto.AttendanceSummary, error) {
	counts, err := s.repo.Attendance.CountByDate(ctx, date)
	if err != nil {
		s.logger.Error("출결 집계 실패", zap.Error(err))
		return nil, err
	}
	return &dto.AttendanceSummary{
		Present: counts[model.AttendancePresent],
		Late:    counts[model.AttendanceLate],
		Absent:  counts[model.AttendanceAbsent],
	}, nil
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
