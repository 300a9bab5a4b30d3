package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

func setupExportService(t *testing.T) (ExportService, *repository.Repository) {
	t.Helper()
	repo := newTestRepo()
	return NewExportService(newTestConfig(), repo, zap.NewNop()), repo
}

func TestExportRoster(t *testing.T) {
	svc, repo := setupExportService(t)

	s := newTestStudent("김학생", "중2")
	s.StudentID = ""
	s.English = true
	if err := repo.Student.Create(context.Background(), &s); err != nil {
		t.Fatalf("학생 생성 실패: %v", err)
	}

	buf, filename, err := svc.ExportRoster(context.Background())
	if err != nil {
		t.Fatalf("명부 내보내기 실패: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Excel 버퍼가 비어 있다")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("xlsx 확장자를 기대했으나 %s", filename)
	}
}

func TestExportRoster_Empty(t *testing.T) {
	svc, _ := setupExportService(t)

	_, _, err := svc.ExportRoster(context.Background())
	if !errors.Is(err, ErrExportNoStudents) {
		t.Errorf("ErrExportNoStudents를 기대했으나 %v", err)
	}
}

func TestExportAttendance(t *testing.T) {
	svc, repo := setupExportService(t)
	ctx := context.Background()

	s := newTestStudent("김학생", "중2")
	s.StudentID = ""
	if err := repo.Student.Create(ctx, &s); err != nil {
		t.Fatalf("학생 생성 실패: %v", err)
	}
	if err := repo.Attendance.Upsert(ctx, &model.AttendanceRecord{
		StudentID: s.StudentID,
		Date:      time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
		Status:    model.AttendanceLate,
	}); err != nil {
		t.Fatalf("출결 기록 실패: %v", err)
	}

	from := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC)
	buf, filename, err := svc.ExportAttendance(ctx, from, to)
	if err != nil {
		t.Fatalf("출결 내보내기 실패: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Excel 버퍼가 비어 있다")
	}
	if !strings.Contains(filename, "20250407") {
		t.Errorf("파일명에 기간이 들어가야 한다: %s", filename)
	}
}

func TestExportStudentSchedule_ICS(t *testing.T) {
	svc, repo := setupExportService(t)

	s := newTestStudent("김학생", "중2")
	s.StudentID = ""
	s.English = true
	setSlot(&s, "월", 14, 16)
	setSlot(&s, "목_수학", 17, 19)
	if err := repo.Student.Create(context.Background(), &s); err != nil {
		t.Fatalf("학생 생성 실패: %v", err)
	}

	buf, filename, err := svc.ExportStudentSchedule(context.Background(), s.StudentID)
	if err != nil {
		t.Fatalf("시간표 내보내기 실패: %v", err)
	}
	ics := buf.String()

	if !strings.Contains(ics, "BEGIN:VCALENDAR") {
		t.Error("iCalendar 헤더가 없다")
	}
	if !strings.Contains(ics, "FREQ=WEEKLY;BYDAY=MO") || !strings.Contains(ics, "FREQ=WEEKLY;BYDAY=TH") {
		t.Error("주간 반복 규칙이 요일별로 들어가야 한다")
	}
	if !strings.Contains(ics, "영어") || !strings.Contains(ics, "수학") {
		t.Error("과목명이 이벤트 제목에 들어가야 한다")
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("ics 확장자를 기대했으나 %s", filename)
	}
}

func TestExportStudentSchedule_NoClasses(t *testing.T) {
	svc, repo := setupExportService(t)

	s := newTestStudent("김학생", "중2")
	s.StudentID = ""
	if err := repo.Student.Create(context.Background(), &s); err != nil {
		t.Fatalf("학생 생성 실패: %v", err)
	}

	_, _, err := svc.ExportStudentSchedule(context.Background(), s.StudentID)
	if !errors.Is(err, ErrExportNoSchedule) {
		t.Errorf("ErrExportNoSchedule을 기대했으나 %v", err)
	}
}
