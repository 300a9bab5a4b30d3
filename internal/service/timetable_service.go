package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/config"
	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// ── 시간표 모듈 업무 오류 ──

var (
	ErrInvalidViewMode = errors.New("유효하지 않은 시간표 보기 모드입니다")
	ErrInvalidCell     = errors.New("유효하지 않은 시간표 칸입니다")
)

// TimetableService 시간표 격자 업무 인터페이스
type TimetableService interface {
	BuildGrid(ctx context.Context, req *dto.TimetableQueryRequest) (*dto.TimetableGridResponse, error)
	Overview(ctx context.Context, dateStr string) (*dto.TimetableOverviewResponse, error)
	GetCell(ctx context.Context, mode, day string, hour int, dateStr string) (*dto.TimetableCell, error)
}

type timetableService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService TimetableService 인스턴스 생성
func NewTimetableService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{cfg: cfg, repo: repo, logger: logger}
}

// validMode 보기 모드 검증 — english/math 또는 설정된 교사 그룹 키
func (s *timetableService) validMode(mode string) bool {
	if mode == SubjectEnglish || mode == SubjectMath {
		return true
	}
	_, ok := s.cfg.Academy.TeacherGroups[mode]
	return ok
}

// loadSnapshot 기준일에 한 과목이라도 재원 중인 학생 스냅샷을 읽는다
func (s *timetableService) loadSnapshot(ctx context.Context, ref time.Time) ([]model.Student, error) {
	students, err := s.repo.Student.ListWithSchedule(ctx)
	if err != nil {
		s.logger.Error("학생 스냅샷 조회 실패", zap.Error(err))
		return nil, err
	}

	active := make([]model.Student, 0, len(students))
	for i := range students {
		if IsSubjectActive(&students[i], SubjectEnglish, ref) ||
			IsSubjectActive(&students[i], SubjectMath, ref) {
			active = append(active, students[i])
		}
	}
	return active, nil
}

// BuildGrid 요일×시간 전체 격자를 계산한다
// 칸마다 점유 목록을 학년 순으로 정렬해 담는다
func (s *timetableService) BuildGrid(ctx context.Context, req *dto.TimetableQueryRequest) (*dto.TimetableGridResponse, error) {
	mode := req.Mode
	if mode == "" {
		mode = SubjectEnglish
	}
	if !s.validMode(mode) {
		return nil, ErrInvalidViewMode
	}

	ref := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		ref = parsed
	}

	snapshot, err := s.loadSnapshot(ctx, ref)
	if err != nil {
		return nil, err
	}

	open, close := s.cfg.Academy.OpenHour, s.cfg.Academy.CloseHour
	groups := s.cfg.Academy.TeacherGroups

	cells := make([]dto.TimetableCell, 0, len(model.Weekdays)*(close-open+1))
	for _, day := range model.Weekdays {
		for hour := open; hour <= close; hour++ {
			matches := ListOccupants(snapshot, day, hour, mode, groups)
			SortByGradeRank(matches)
			cells = append(cells, dto.TimetableCell{
				Day:       day,
				Hour:      hour,
				Count:     len(matches),
				Occupants: toOccupantEntries(matches),
			})
		}
	}

	return &dto.TimetableGridResponse{
		Mode:      mode,
		Date:      ref.Format(dateLayout),
		OpenHour:  open,
		CloseHour: close,
		Days:      model.Weekdays,
		Cells:     cells,
	}, nil
}

// Overview 영어·수학 인원수를 합산한 전체 현황 격자를 계산한다
func (s *timetableService) Overview(ctx context.Context, dateStr string) (*dto.TimetableOverviewResponse, error) {
	ref := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		ref = parsed
	}

	snapshot, err := s.loadSnapshot(ctx, ref)
	if err != nil {
		return nil, err
	}

	open, close := s.cfg.Academy.OpenHour, s.cfg.Academy.CloseHour
	groups := s.cfg.Academy.TeacherGroups

	cells := make([]dto.OverviewCell, 0, len(model.Weekdays)*(close-open+1))
	for _, day := range model.Weekdays {
		for hour := open; hour <= close; hour++ {
			eng := CountOccupancy(snapshot, day, hour, SubjectEnglish, groups)
			math := CountOccupancy(snapshot, day, hour, SubjectMath, groups)
			cells = append(cells, dto.OverviewCell{
				Day:     day,
				Hour:    hour,
				English: eng,
				Math:    math,
				Total:   eng + math,
			})
		}
	}

	return &dto.TimetableOverviewResponse{
		Date:      ref.Format(dateLayout),
		OpenHour:  open,
		CloseHour: close,
		Days:      model.Weekdays,
		Cells:     cells,
	}, nil
}

// GetCell 칸 하나의 상세 점유 목록
func (s *timetableService) GetCell(ctx context.Context, mode, day string, hour int, dateStr string) (*dto.TimetableCell, error) {
	if mode == "" {
		mode = SubjectEnglish
	}
	if !s.validMode(mode) {
		return nil, ErrInvalidViewMode
	}
	if !containsStr(model.Weekdays, day) ||
		hour < s.cfg.Academy.OpenHour || hour > s.cfg.Academy.CloseHour {
		return nil, ErrInvalidCell
	}

	ref := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		ref = parsed
	}

	snapshot, err := s.loadSnapshot(ctx, ref)
	if err != nil {
		return nil, err
	}

	matches := ListOccupants(snapshot, day, hour, mode, s.cfg.Academy.TeacherGroups)
	SortByGradeRank(matches)

	return &dto.TimetableCell{
		Day:       day,
		Hour:      hour,
		Count:     len(matches),
		Occupants: toOccupantEntries(matches),
	}, nil
}

func toOccupantEntries(matches []OccupantMatch) []dto.OccupantEntry {
	entries := make([]dto.OccupantEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, dto.OccupantEntry{
			StudentID: m.Student.StudentID,
			Name:      m.Student.Name,
			Grade:     m.Student.Grade,
			Subject:   m.Subject,
			Teacher:   m.Teacher,
		})
	}
	return entries
}
