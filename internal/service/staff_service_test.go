package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

func setupStaffService(t *testing.T) (StaffService, *repository.Repository) {
	t.Helper()
	repo := newTestRepo()
	return NewStaffService(repo, zap.NewNop()), repo
}

func seedStaffAccount(t *testing.T, repo *repository.Repository, username, email string, isAdmin bool) *model.Staff {
	t.Helper()
	staff := &model.Staff{
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$placeholder",
		IsAdmin:      isAdmin,
	}
	if err := repo.Staff.Create(context.Background(), staff); err != nil {
		t.Fatalf("계정 생성 실패: %v", err)
	}
	return staff
}

func TestStaffList_Filters(t *testing.T) {
	svc, repo := setupStaffService(t)
	seedStaffAccount(t, repo, "관리자", "admin@academy.kr", true)
	seedStaffAccount(t, repo, "평교사", "teacher@academy.kr", false)

	all, err := svc.List(context.Background(), "", &dto.StaffListRequest{})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("전체 2명을 기대했으나 %d명", len(all))
	}

	admins, err := svc.List(context.Background(), "", &dto.StaffListRequest{AdminOnly: true})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(admins) != 1 || !admins[0].IsAdmin {
		t.Errorf("관리자 1명을 기대했으나 %d명", len(admins))
	}

	nonAdmins, err := svc.List(context.Background(), "", &dto.StaffListRequest{NonAdminOnly: true})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(nonAdmins) != 1 || nonAdmins[0].IsAdmin {
		t.Errorf("비관리자 1명을 기대했으나 %d명", len(nonAdmins))
	}

	searched, err := svc.List(context.Background(), "", &dto.StaffListRequest{Search: "평교사"})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(searched) != 1 || searched[0].Username != "평교사" {
		t.Errorf("검색 결과 1명(평교사)을 기대했으나 %d명", len(searched))
	}
}

func TestStaffList_ExcludesRequester(t *testing.T) {
	svc, repo := setupStaffService(t)
	admin := seedStaffAccount(t, repo, "관리자", "admin@academy.kr", true)
	seedStaffAccount(t, repo, "평교사", "teacher@academy.kr", false)

	result, err := svc.List(context.Background(), admin.UID, &dto.StaffListRequest{})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("본인 제외 1명을 기대했으나 %d명", len(result))
	}
	if result[0].UID == admin.UID {
		t.Error("요청자 본인이 목록에 포함되면 안 된다")
	}
}

func TestStaffSetAdmin(t *testing.T) {
	svc, repo := setupStaffService(t)
	admin := seedStaffAccount(t, repo, "관리자", "admin@academy.kr", true)
	target := seedStaffAccount(t, repo, "평교사", "teacher@academy.kr", false)

	if err := svc.SetAdmin(context.Background(), admin.UID, target.UID, true); err != nil {
		t.Fatalf("권한 부여 실패: %v", err)
	}
	got, _ := repo.Staff.GetByUID(context.Background(), target.UID)
	if !got.IsAdmin {
		t.Error("대상 계정이 관리자가 되어야 한다")
	}
}

func TestStaffSetAdmin_SelfDemotionBlocked(t *testing.T) {
	svc, repo := setupStaffService(t)
	admin := seedStaffAccount(t, repo, "관리자", "admin@academy.kr", true)

	err := svc.SetAdmin(context.Background(), admin.UID, admin.UID, false)
	if !errors.Is(err, ErrSelfDemotion) {
		t.Errorf("ErrSelfDemotion을 기대했으나 %v", err)
	}
}

func TestStaffSetAllowLogin(t *testing.T) {
	svc, repo := setupStaffService(t)
	target := seedStaffAccount(t, repo, "평교사", "teacher@academy.kr", false)

	if err := svc.SetAllowLogin(context.Background(), target.UID, true); err != nil {
		t.Fatalf("허용 설정 실패: %v", err)
	}
	got, _ := repo.Staff.GetByUID(context.Background(), target.UID)
	if !got.AllowLogin {
		t.Error("로그인이 허용되어야 한다")
	}

	if err := svc.SetAllowLogin(context.Background(), "없는-id", true); !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("ErrStaffNotFound를 기대했으나 %v", err)
	}
}
