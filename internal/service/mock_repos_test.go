package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/config"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// ── 테스트 공통 설정 ──

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-test-secret",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
		Academy: config.AcademyConfig{
			OpenHour:      13,
			CloseHour:     19,
			TrendMonths:   5,
			TeacherGroups: testGroups,
		},
	}
}

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		Staff:      newMockStaffRepo(),
		Student:    newMockStudentRepo(),
		Attendance: newMockAttendanceRepo(),
		Notice:     newMockNoticeRepo(),
		Memo:       newMockMemoRepo(),
	}
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staffs map[string]*model.Staff
	seq    int
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staffs: make(map[string]*model.Staff)}
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.Staff) error {
	for _, s := range m.staffs {
		if s.Email == staff.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if staff.UID == "" {
		m.seq++
		staff.UID = fmt.Sprintf("staff-%d", m.seq)
	}
	m.staffs[staff.UID] = staff
	return nil
}

func (m *mockStaffRepo) GetByUID(_ context.Context, uid string) (*model.Staff, error) {
	if s, ok := m.staffs[uid]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) GetByEmail(_ context.Context, email string) (*model.Staff, error) {
	for _, s := range m.staffs {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) Update(_ context.Context, staff *model.Staff) error {
	m.staffs[staff.UID] = staff
	return nil
}

func (m *mockStaffRepo) UpdateLastLogin(_ context.Context, uid string, at time.Time) error {
	if s, ok := m.staffs[uid]; ok {
		s.LastLogin = &at
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) SetAdmin(_ context.Context, uid string, isAdmin bool) error {
	if s, ok := m.staffs[uid]; ok {
		s.IsAdmin = isAdmin
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) SetAllowLogin(_ context.Context, uid string, allow bool) error {
	if s, ok := m.staffs[uid]; ok {
		s.AllowLogin = allow
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context) ([]model.Staff, error) {
	var result []model.Staff
	for _, s := range m.staffs {
		result = append(result, *s)
	}
	return result, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	order    []string
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("student-%d", m.seq)
	}
	for i := range student.Schedule {
		student.Schedule[i].StudentID = student.StudentID
	}
	m.students[student.StudentID] = student
	m.order = append(m.order, student.StudentID)
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.StudentID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.students[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.students, id)
	for i, sid := range m.order {
		if sid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	result := make([]model.Student, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.students[id])
	}
	return result, nil
}

func (m *mockStudentRepo) ListWithSchedule(ctx context.Context) ([]model.Student, error) {
	return m.List(ctx)
}

func (m *mockStudentRepo) ReplaceSchedule(_ context.Context, studentID string, slots []model.ScheduleSlot) error {
	s, ok := m.students[studentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range slots {
		slots[i].StudentID = studentID
	}
	s.Schedule = slots
	return nil
}

func (m *mockStudentRepo) BatchCreate(ctx context.Context, students []*model.Student) error {
	for _, s := range students {
		if err := m.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	// key: "studentID:YYYY-MM-DD"
	records map[string]*model.AttendanceRecord
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.AttendanceRecord)}
}

func attKey(studentID string, date time.Time) string {
	return studentID + ":" + date.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, record *model.AttendanceRecord) error {
	m.records[attKey(record.StudentID, record.Date)] = record
	return nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentID string, from, to *time.Time) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for key, r := range m.records {
		if !strings.HasPrefix(key, studentID+":") {
			continue
		}
		if from != nil && r.Date.Before(*from) {
			continue
		}
		if to != nil && r.Date.After(*to) {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.Date.Equal(date) {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) CountByDate(_ context.Context, date time.Time) (map[string]int, error) {
	counts := make(map[string]int)
	for _, r := range m.records {
		if r.Date.Year() == date.Year() && r.Date.YearDay() == date.YearDay() {
			counts[r.Status]++
		}
	}
	return counts, nil
}

// ── Mock NoticeRepository ──

type mockNoticeRepo struct {
	notices map[string]*model.Notice
	order   []string
	seq     int
}

func newMockNoticeRepo() *mockNoticeRepo {
	return &mockNoticeRepo{notices: make(map[string]*model.Notice)}
}

func (m *mockNoticeRepo) Create(_ context.Context, notice *model.Notice) error {
	if notice.NoticeID == "" {
		m.seq++
		notice.NoticeID = fmt.Sprintf("notice-%d", m.seq)
	}
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = time.Now()
	}
	m.notices[notice.NoticeID] = notice
	// 최신이 앞에 오도록
	m.order = append([]string{notice.NoticeID}, m.order...)
	return nil
}

func (m *mockNoticeRepo) GetByID(_ context.Context, id string) (*model.Notice, error) {
	if n, ok := m.notices[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNoticeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.notices[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.notices, id)
	for i, nid := range m.order {
		if nid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockNoticeRepo) List(_ context.Context) ([]model.Notice, error) {
	result := make([]model.Notice, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.notices[id])
	}
	return result, nil
}

// ── Mock MemoRepository ──

type mockMemoRepo struct {
	memos map[string]*model.Memo
	order []string
	seq   int
}

func newMockMemoRepo() *mockMemoRepo {
	return &mockMemoRepo{memos: make(map[string]*model.Memo)}
}

func (m *mockMemoRepo) Create(_ context.Context, memo *model.Memo) error {
	if memo.MemoID == "" {
		m.seq++
		memo.MemoID = fmt.Sprintf("memo-%d", m.seq)
	}
	m.memos[memo.MemoID] = memo
	m.order = append(m.order, memo.MemoID)
	return nil
}

func (m *mockMemoRepo) GetByID(_ context.Context, id string) (*model.Memo, error) {
	if memo, ok := m.memos[id]; ok {
		return memo, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemoRepo) Update(_ context.Context, memo *model.Memo) error {
	if _, ok := m.memos[memo.MemoID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.memos[memo.MemoID] = memo
	return nil
}

func (m *mockMemoRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.memos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.memos, id)
	for i, mid := range m.order {
		if mid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockMemoRepo) ListByOwner(_ context.Context, ownerUID string) ([]model.Memo, error) {
	var result []model.Memo
	for _, id := range m.order {
		if m.memos[id].OwnerUID == ownerUID {
			result = append(result, *m.memos[id])
		}
	}
	return result, nil
}

func (m *mockMemoRepo) CountByOwner(ctx context.Context, ownerUID string) (int64, error) {
	memos, _ := m.ListByOwner(ctx, ownerUID)
	return int64(len(memos)), nil
}
