package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

func setupStudentService(t *testing.T) (StudentService, *repository.Repository) {
	t.Helper()
	repo := newTestRepo()
	return NewStudentService(repo, zap.NewNop()), repo
}

func TestStudentCreate_FillsTenSlots(t *testing.T) {
	svc, _ := setupStudentService(t)

	// 슬롯 하나만 지정해도 나머지 9개가 null 로 채워져야 한다
	resp, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:    "김학생",
		Grade:   "중2",
		English: true,
		Schedule: []dto.ScheduleSlotPayload{
			{Day: "월", Start: intPtr(14), End: intPtr(16)},
		},
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}

	if len(resp.Schedule) != 10 {
		t.Fatalf("슬롯 10개를 기대했으나 %d개", len(resp.Schedule))
	}
	var filled int
	for _, slot := range resp.Schedule {
		if slot.Start != nil && slot.End != nil {
			filled++
			if slot.Day != "월" {
				t.Errorf("시간이 지정된 슬롯은 월요일이어야 하나 %s", slot.Day)
			}
		}
	}
	if filled != 1 {
		t.Errorf("시간 지정 슬롯 1개를 기대했으나 %d개", filled)
	}
}

func TestStudentCreate_InvalidSlotKey(t *testing.T) {
	svc, _ := setupStudentService(t)

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name: "김학생",
		Schedule: []dto.ScheduleSlotPayload{
			{Day: "토", Start: intPtr(14), End: intPtr(16)},
		},
	})
	if !errors.Is(err, ErrInvalidSlotKey) {
		t.Errorf("ErrInvalidSlotKey를 기대했으나 %v", err)
	}
}

func TestStudentCreate_InvalidSlotRange(t *testing.T) {
	svc, _ := setupStudentService(t)

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name: "김학생",
		Schedule: []dto.ScheduleSlotPayload{
			{Day: "월", Start: intPtr(16), End: intPtr(16)},
		},
	})
	if !errors.Is(err, ErrInvalidSlotRange) {
		t.Errorf("ErrInvalidSlotRange를 기대했으나 %v", err)
	}
}

func TestStudentUpdate_PartialFields(t *testing.T) {
	svc, _ := setupStudentService(t)

	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:       "김학생",
		Grade:      "중2",
		English:    true,
		EngTeacher: strPtr("김선생"),
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}

	// 학년만 수정 — 나머지 필드는 유지
	newGrade := "중3"
	updated, err := svc.Update(context.Background(), created.StudentID, &dto.UpdateStudentRequest{
		Grade: &newGrade,
	})
	if err != nil {
		t.Fatalf("수정 실패: %v", err)
	}
	if updated.Grade != "중3" {
		t.Errorf("학년 중3을 기대했으나 %s", updated.Grade)
	}
	if updated.Name != "김학생" || updated.EngTeacher == nil || *updated.EngTeacher != "김선생" {
		t.Error("수정하지 않은 필드가 변경되었다")
	}
}

func TestStudentUpdate_ClearTeacherWithEmptyString(t *testing.T) {
	svc, _ := setupStudentService(t)

	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:       "김학생",
		English:    true,
		EngTeacher: strPtr("김선생"),
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}

	empty := ""
	updated, err := svc.Update(context.Background(), created.StudentID, &dto.UpdateStudentRequest{
		EngTeacher: &empty,
	})
	if err != nil {
		t.Fatalf("수정 실패: %v", err)
	}
	if updated.EngTeacher != nil {
		t.Errorf("빈 문자열은 담당 교사를 지워야 하나 %q", *updated.EngTeacher)
	}
}

func TestStudentUpdate_ClearDateWithEmptyString(t *testing.T) {
	svc, _ := setupStudentService(t)

	joinDate := "2024-03-01"
	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:            "김학생",
		English:         true,
		EnglishJoinDate: &joinDate,
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}
	if created.EnglishJoinDate == nil || *created.EnglishJoinDate != "2024-03-01" {
		t.Fatal("입회일이 저장되어야 한다")
	}

	empty := ""
	updated, err := svc.Update(context.Background(), created.StudentID, &dto.UpdateStudentRequest{
		EnglishJoinDate: &empty,
	})
	if err != nil {
		t.Fatalf("수정 실패: %v", err)
	}
	if updated.EnglishJoinDate != nil {
		t.Errorf("빈 문자열은 입회일을 지워야 하나 %q", *updated.EnglishJoinDate)
	}
}

func TestStudentUpdateSchedule_Replaces(t *testing.T) {
	svc, _ := setupStudentService(t)

	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name: "김학생",
		Schedule: []dto.ScheduleSlotPayload{
			{Day: "월", Start: intPtr(14), End: intPtr(16)},
		},
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}

	updated, err := svc.UpdateSchedule(context.Background(), created.StudentID, &dto.UpdateScheduleRequest{
		Schedule: []dto.ScheduleSlotPayload{
			{Day: "화_수학", Start: intPtr(17), End: intPtr(19)},
		},
	})
	if err != nil {
		t.Fatalf("시간표 교체 실패: %v", err)
	}

	for _, slot := range updated.Schedule {
		switch slot.Day {
		case "화_수학":
			if slot.Start == nil || *slot.Start != 17 {
				t.Error("새 슬롯이 반영되어야 한다")
			}
		case "월":
			if slot.Start != nil {
				t.Error("교체 후 이전 슬롯은 비워져야 한다")
			}
		}
	}
}

func TestStudentGet_NotFound(t *testing.T) {
	svc, _ := setupStudentService(t)

	if _, err := svc.Get(context.Background(), "없는-id"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("ErrStudentNotFound를 기대했으나 %v", err)
	}
	if err := svc.Delete(context.Background(), "없는-id"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("ErrStudentNotFound를 기대했으나 %v", err)
	}
}

func TestStudentImportLegacy(t *testing.T) {
	svc, repo := setupStudentService(t)

	in := 240110       // 2024-01-10
	badOut := 250230   // 달력에 없는 날짜 — 건너뛰고 보고
	inMath := 230901   // 2023-09-01

	resp, err := svc.ImportLegacy(context.Background(), &dto.ImportLegacyRequest{
		Students: []dto.LegacyStudentPayload{
			{
				Name:    "레거시학생",
				Grade:   "고1",
				English: true,
				Math:    true,
				EngT:    strPtr("김선생"),
				In:      &in,
				Out:     &badOut,
				InMath:  &inMath,
				Schedule: []dto.ScheduleSlotPayload{
					{Day: "금", Start: intPtr(15), End: intPtr(17)},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("가져오기 실패: %v", err)
	}

	if resp.ImportedCount != 1 {
		t.Errorf("가져오기 1건을 기대했으나 %d건", resp.ImportedCount)
	}
	if len(resp.SkippedDates) != 1 {
		t.Fatalf("건너뛴 날짜 1건을 기대했으나 %d건", len(resp.SkippedDates))
	}

	students, err := repo.Student.List(context.Background())
	if err != nil || len(students) != 1 {
		t.Fatalf("저장된 학생 1명을 기대했으나 %d명 (err=%v)", len(students), err)
	}
	st := students[0]
	if st.EnglishJoinDate == nil || st.EnglishJoinDate.Format(dateLayout) != "2024-01-10" {
		t.Error("영어 입회일이 2024-01-10으로 해석되어야 한다")
	}
	if st.EnglishLeaveDate != nil {
		t.Error("해석 불가한 탈퇴일은 비워져야 한다")
	}
	if st.MathJoinDate == nil || st.MathJoinDate.Format(dateLayout) != "2023-09-01" {
		t.Error("수학 입회일이 2023-09-01로 해석되어야 한다")
	}
}
