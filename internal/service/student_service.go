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

// ── 학생 모듈 업무 오류 ──

var (
	ErrStudentNotFound  = errors.New("학생을 찾을 수 없습니다")
	ErrInvalidSlotKey   = errors.New("유효하지 않은 시간표 슬롯 키입니다")
	ErrInvalidSlotRange = errors.New("시작 시각은 종료 시각보다 앞서야 합니다")
	ErrInvalidDate      = errors.New("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
)

const dateLayout = "2006-01-02"

// StudentService 학생 명부 업무 인터페이스
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Get(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	UpdateSchedule(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
	ImportLegacy(ctx context.Context, req *dto.ImportLegacyRequest) (*dto.ImportLegacyResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService StudentService 인스턴스 생성
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// 슬롯 정규화
// ═══════════════════════════════════════════════════════════

// normalizeSlots 요청 슬롯을 정확히 10개(요일×과목)로 정규화한다
// 빠진 조합은 시간 null 슬롯으로 채우고, 알 수 없는 키나
// start >= end 범위는 오류로 거부한다. 중복 키는 마지막 값이 이긴다.
func normalizeSlots(payload []dto.ScheduleSlotPayload) ([]model.ScheduleSlot, error) {
	byKey := make(map[string]dto.ScheduleSlotPayload, len(payload))
	valid := make(map[string]bool, 10)
	for _, key := range model.SlotKeys() {
		valid[key] = true
	}

	for _, slot := range payload {
		if !valid[slot.Day] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotKey, slot.Day)
		}
		if slot.Start != nil && slot.End != nil && *slot.Start >= *slot.End {
			return nil, fmt.Errorf("%w: %s %d~%d", ErrInvalidSlotRange, slot.Day, *slot.Start, *slot.End)
		}
		byKey[slot.Day] = slot
	}

	slots := make([]model.ScheduleSlot, 0, 10)
	for _, key := range model.SlotKeys() {
		s := model.ScheduleSlot{SlotKey: key}
		if p, ok := byKey[key]; ok && p.Start != nil && p.End != nil {
			start, end := *p.Start, *p.End
			s.StartHour, s.EndHour = &start, &end
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// ═══════════════════════════════════════════════════════════
// CRUD
// ═══════════════════════════════════════════════════════════

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	slots, err := normalizeSlots(req.Schedule)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		School:      req.School,
		Grade:       req.Grade,
		Name:        req.Name,
		Phone:       req.Phone,
		English:     req.English,
		Math:        req.Math,
		EngTeacher:  req.EngTeacher,
		MathTeacher: req.MathTeacher,
		Schedule:    slots,
	}

	if student.EnglishJoinDate, err = parseDatePtr(req.EnglishJoinDate); err != nil {
		return nil, err
	}
	if student.EnglishLeaveDate, err = parseDatePtr(req.EnglishLeaveDate); err != nil {
		return nil, err
	}
	if student.MathJoinDate, err = parseDatePtr(req.MathJoinDate); err != nil {
		return nil, err
	}
	if student.MathLeaveDate, err = parseDatePtr(req.MathLeaveDate); err != nil {
		return nil, err
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("학생 등록 실패", zap.Error(err))
		return nil, err
	}

	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.Error(err))
		return nil, err
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.ListWithSchedule(ctx)
	if err != nil {
		s.logger.Error("학생 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, toStudentResponse(&students[i]))
	}
	return result, nil
}

// Update 필드 단위 수정 — nil 필드는 손대지 않고, 교사/날짜 필드는
// 빈 문자열을 주면 NULL 로 지운다
func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.Error(err))
		return nil, err
	}

	if req.School != nil {
		student.School = *req.School
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.English != nil {
		student.English = *req.English
	}
	if req.Math != nil {
		student.Math = *req.Math
	}
	if req.EngTeacher != nil {
		student.EngTeacher = clearableStr(*req.EngTeacher)
	}
	if req.MathTeacher != nil {
		student.MathTeacher = clearableStr(*req.MathTeacher)
	}

	if req.EnglishJoinDate != nil {
		if student.EnglishJoinDate, err = parseClearableDate(*req.EnglishJoinDate); err != nil {
			return nil, err
		}
	}
	if req.EnglishLeaveDate != nil {
		if student.EnglishLeaveDate, err = parseClearableDate(*req.EnglishLeaveDate); err != nil {
			return nil, err
		}
	}
	if req.MathJoinDate != nil {
		if student.MathJoinDate, err = parseClearableDate(*req.MathJoinDate); err != nil {
			return nil, err
		}
	}
	if req.MathLeaveDate != nil {
		if student.MathLeaveDate, err = parseClearableDate(*req.MathLeaveDate); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("학생 수정 실패", zap.Error(err))
		return nil, err
	}

	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) UpdateSchedule(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.StudentResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.Error(err))
		return nil, err
	}

	slots, err := normalizeSlots(req.Schedule)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Student.ReplaceSchedule(ctx, id, slots); err != nil {
		s.logger.Error("시간표 교체 실패", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("학생 삭제 실패", zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// 레거시 가져오기
// ═══════════════════════════════════════════════════════════

// ImportLegacy 구 문서 저장소의 학생 문서를 일괄 등록한다
// YYMMDD 정수 날짜는 여기서만 해석하며, 해석 불가한 코드는
// 해당 필드만 비운 채 등록하고 skipped_dates 에 보고한다
func (s *studentService) ImportLegacy(ctx context.Context, req *dto.ImportLegacyRequest) (*dto.ImportLegacyResponse, error) {
	var skipped []string
	students := make([]*model.Student, 0, len(req.Students))

	decode := func(name, field string, code *int) *time.Time {
		if code == nil {
			return nil
		}
		t, err := DecodeDateCode(*code)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s %s=%d", name, field, *code))
			return nil
		}
		return &t
	}

	for _, p := range req.Students {
		slots, err := normalizeSlots(p.Schedule)
		if err != nil {
			return nil, fmt.Errorf("학생 %q: %w", p.Name, err)
		}

		students = append(students, &model.Student{
			School:           p.School,
			Grade:            p.Grade,
			Name:             p.Name,
			Phone:            p.Phone,
			English:          p.English,
			Math:             p.Math,
			EngTeacher:       p.EngT,
			MathTeacher:      p.MathT,
			Schedule:         slots,
			EnglishJoinDate:  decode(p.Name, "in", p.In),
			EnglishLeaveDate: decode(p.Name, "out", p.Out),
			MathJoinDate:     decode(p.Name, "in_math", p.InMath),
			MathLeaveDate:    decode(p.Name, "out_math", p.OutMath),
		})
	}

	if err := s.repo.Student.BatchCreate(ctx, students); err != nil {
		s.logger.Error("레거시 가져오기 실패", zap.Error(err))
		return nil, err
	}

	s.logger.Info("레거시 학생 문서 가져오기 완료",
		zap.Int("imported", len(students)),
		zap.Int("skipped_dates", len(skipped)))

	return &dto.ImportLegacyResponse{
		ImportedCount: len(students),
		SkippedDates:  skipped,
	}, nil
}

// ═══════════════════════════════════════════════════════════
// 변환 헬퍼
// ═══════════════════════════════════════════════════════════

// toStudentResponse 모델 → 응답 DTO 변환 (슬롯은 고정 키 순서로 정렬)
func toStudentResponse(st *model.Student) dto.StudentResponse {
	bySlotKey := make(map[string]model.ScheduleSlot, len(st.Schedule))
	for _, slot := range st.Schedule {
		bySlotKey[slot.SlotKey] = slot
	}

	schedule := make([]dto.ScheduleSlotPayload, 0, 10)
	for _, key := range model.SlotKeys() {
		p := dto.ScheduleSlotPayload{Day: key}
		if slot, ok := bySlotKey[key]; ok {
			p.Start, p.End = slot.StartHour, slot.EndHour
		}
		schedule = append(schedule, p)
	}

	return dto.StudentResponse{
		StudentID:        st.StudentID,
		School:           st.School,
		Grade:            st.Grade,
		Name:             st.Name,
		Phone:            st.Phone,
		English:          st.English,
		Math:             st.Math,
		EngTeacher:       st.EngTeacher,
		MathTeacher:      st.MathTeacher,
		Schedule:         schedule,
		EnglishJoinDate:  formatDatePtr(st.EnglishJoinDate),
		EnglishLeaveDate: formatDatePtr(st.EnglishLeaveDate),
		MathJoinDate:     formatDatePtr(st.MathJoinDate),
		MathLeaveDate:    formatDatePtr(st.MathLeaveDate),
	}
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *s)
	}
	return &t, nil
}

// parseClearableDate 빈 문자열이면 NULL 로 지우고, 아니면 파싱한다
func parseClearableDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	return parseDatePtr(&s)
}

func clearableStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
