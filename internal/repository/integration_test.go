//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=edu_admin password=edu_admin_password dbname=edu_admin_test sslmode=disable TimeZone=Asia/Seoul"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "테스트 DB 연결 실패: %v\n", err)
		os.Exit(1)
	}

	// 테스트 테이블 자동 마이그레이션
	err = testDB.AutoMigrate(
		&model.Staff{},
		&model.Student{},
		&model.ScheduleSlot{},
		&model.AttendanceRecord{},
		&model.Notice{},
		&model.Memo{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 실패: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupStudent 기본 학생 하나 생성 후 정리 함수 반환
func setupStudent(t *testing.T) (student *model.Student, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	student = &model.Student{
		School:  "테스트중",
		Grade:   "중2",
		Name:    fmt.Sprintf("테스트학생-%d", time.Now().UnixNano()),
		English: true,
		Math:    true,
	}
	if err := testDB.WithContext(ctx).Create(student).Error; err != nil {
		t.Fatalf("학생 생성 실패: %v", err)
	}

	cleanup = func() {
		testDB.Where("student_id = ?", student.StudentID).Delete(&model.AttendanceRecord{})
		testDB.Where("student_id = ?", student.StudentID).Delete(&model.ScheduleSlot{})
		testDB.Where("student_id = ?", student.StudentID).Delete(&model.Student{})
	}
	return
}

// ═══════════════════════════════════════════════════════════
// Test: Schedule Replace
// ═══════════════════════════════════════════════════════════

func TestReplaceSchedule_FullSlotSet(t *testing.T) {
	student, cleanup := setupStudent(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	h16, h18 := 16, 18
	slots := make([]model.ScheduleSlot, 0, len(model.SlotKeys()))
	for _, key := range model.SlotKeys() {
		slot := model.ScheduleSlot{SlotKey: key}
		if key == "월" {
			slot.StartHour, slot.EndHour = &h16, &h18
		}
		slots = append(slots, slot)
	}

	if err := repo.Student.ReplaceSchedule(ctx, student.StudentID, slots); err != nil {
		t.Fatalf("ReplaceSchedule 실패: %v", err)
	}

	got, err := repo.Student.GetByID(ctx, student.StudentID)
	if err != nil {
		t.Fatalf("GetByID 실패: %v", err)
	}
	if len(got.Schedule) != 10 {
		t.Errorf("슬롯 10개를 기대했으나 %d개", len(got.Schedule))
	}

	// 재교체해도 슬롯은 10개를 유지해야 한다
	if err := repo.Student.ReplaceSchedule(ctx, student.StudentID, slots); err != nil {
		t.Fatalf("재교체 실패: %v", err)
	}
	got, _ = repo.Student.GetByID(ctx, student.StudentID)
	if len(got.Schedule) != 10 {
		t.Errorf("재교체 후에도 슬롯 10개를 기대했으나 %d개", len(got.Schedule))
	}
}

func TestScheduleSlot_UniquePerStudentKey(t *testing.T) {
	student, cleanup := setupStudent(t)
	defer cleanup()

	ctx := context.Background()
	slot1 := model.ScheduleSlot{StudentID: student.StudentID, SlotKey: "화"}
	if err := testDB.WithContext(ctx).Create(&slot1).Error; err != nil {
		t.Fatalf("슬롯 생성 실패: %v", err)
	}

	slot2 := model.ScheduleSlot{StudentID: student.StudentID, SlotKey: "화"}
	if err := testDB.WithContext(ctx).Create(&slot2).Error; err == nil {
		t.Fatal("같은 (학생, 슬롯키) 중복 생성은 유일 제약 위반이어야 한다")
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Attendance Upsert
// ═══════════════════════════════════════════════════════════

func TestAttendance_UpsertOverwrites(t *testing.T) {
	student, cleanup := setupStudent(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	date := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

	rec := &model.AttendanceRecord{
		StudentID: student.StudentID,
		Date:      date,
		Status:    model.AttendancePresent,
	}
	if err := repo.Attendance.Upsert(ctx, rec); err != nil {
		t.Fatalf("첫 기록 실패: %v", err)
	}

	// 같은 날짜 재기록은 상태만 덮어써야 한다
	rec2 := &model.AttendanceRecord{
		StudentID: student.StudentID,
		Date:      date,
		Status:    model.AttendanceLate,
	}
	if err := repo.Attendance.Upsert(ctx, rec2); err != nil {
		t.Fatalf("덮어쓰기 실패: %v", err)
	}

	records, err := repo.Attendance.ListByStudent(ctx, student.StudentID, nil, nil)
	if err != nil {
		t.Fatalf("ListByStudent 실패: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("기록 1건을 기대했으나 %d건", len(records))
	}
	if records[0].Status != model.AttendanceLate {
		t.Errorf("상태 B를 기대했으나 %s", records[0].Status)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Cascade Delete
// ═══════════════════════════════════════════════════════════

func TestStudentDelete_CascadesSlots(t *testing.T) {
	student, cleanup := setupStudent(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	slots := []model.ScheduleSlot{{SlotKey: "수"}, {SlotKey: "수_수학"}}
	if err := repo.Student.ReplaceSchedule(ctx, student.StudentID, slots); err != nil {
		t.Fatalf("ReplaceSchedule 실패: %v", err)
	}

	if err := repo.Student.Delete(ctx, student.StudentID); err != nil {
		t.Fatalf("학생 삭제 실패: %v", err)
	}

	var count int64
	testDB.Model(&model.ScheduleSlot{}).
		Where("student_id = ?", student.StudentID).
		Count(&count)
	if count != 0 {
		t.Errorf("학생 삭제 후 슬롯 0개를 기대했으나 %d개", count)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Memo Count
// ═══════════════════════════════════════════════════════════

func TestMemo_CountByOwner(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	staff := &model.Staff{
		Email:        fmt.Sprintf("memo%d@test.kr", time.Now().UnixNano()),
		Username:     "메모테스터",
		PasswordHash: "$2a$10$placeholder",
	}
	if err := testDB.WithContext(ctx).Create(staff).Error; err != nil {
		t.Fatalf("교직원 생성 실패: %v", err)
	}
	defer func() {
		testDB.Where("owner_uid = ?", staff.UID).Delete(&model.Memo{})
		testDB.Where("uid = ?", staff.UID).Delete(&model.Staff{})
	}()

	for i := 0; i < 3; i++ {
		memo := &model.Memo{
			OwnerUID:   staff.UID,
			Title:      fmt.Sprintf("메모 %d", i),
			ColorIndex: i % model.MemoColorCount,
		}
		if err := repo.Memo.Create(ctx, memo); err != nil {
			t.Fatalf("메모 생성 실패: %v", err)
		}
	}

	count, err := repo.Memo.CountByOwner(ctx, staff.UID)
	if err != nil {
		t.Fatalf("CountByOwner 실패: %v", err)
	}
	if count != 3 {
		t.Errorf("메모 3개를 기대했으나 %d개", count)
	}
}
