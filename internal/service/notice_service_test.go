package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/internal/dto"
)

func setupNoticeService(t *testing.T) NoticeService {
	t.Helper()
	return NewNoticeService(newTestRepo(), zap.NewNop())
}

func TestNoticeCreateAndList_NewestFirst(t *testing.T) {
	svc := setupNoticeService(t)
	ctx := context.Background()

	for _, text := range []string{"첫 공지", "둘째 공지", "셋째 공지"} {
		if _, err := svc.Create(ctx, "uid-1", "김교사", &dto.CreateNoticeRequest{Text: text}); err != nil {
			t.Fatalf("공지 작성 실패: %v", err)
		}
	}

	notices, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(notices) != 3 {
		t.Fatalf("공지 3건을 기대했으나 %d건", len(notices))
	}
	if notices[0].Text != "셋째 공지" {
		t.Errorf("최신 공지가 먼저 와야 하나 %q", notices[0].Text)
	}
	if notices[0].Author != "김교사" || notices[0].AuthorUID != "uid-1" {
		t.Error("작성자 정보가 기록되어야 한다")
	}
}

func TestNoticeDelete_ByAuthor(t *testing.T) {
	svc := setupNoticeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "uid-1", "김교사", &dto.CreateNoticeRequest{Text: "공지"})
	if err != nil {
		t.Fatalf("공지 작성 실패: %v", err)
	}

	if err := svc.Delete(ctx, created.NoticeID, "uid-1", false); err != nil {
		t.Fatalf("작성자 본인 삭제는 허용되어야 한다: %v", err)
	}
}

func TestNoticeDelete_ByAdmin(t *testing.T) {
	svc := setupNoticeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "uid-1", "김교사", &dto.CreateNoticeRequest{Text: "공지"})
	if err != nil {
		t.Fatalf("공지 작성 실패: %v", err)
	}

	if err := svc.Delete(ctx, created.NoticeID, "uid-2", true); err != nil {
		t.Fatalf("관리자 삭제는 허용되어야 한다: %v", err)
	}
}

func TestNoticeDelete_DeniedForOthers(t *testing.T) {
	svc := setupNoticeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "uid-1", "김교사", &dto.CreateNoticeRequest{Text: "공지"})
	if err != nil {
		t.Fatalf("공지 작성 실패: %v", err)
	}

	err = svc.Delete(ctx, created.NoticeID, "uid-2", false)
	if !errors.Is(err, ErrNoticePermission) {
		t.Errorf("ErrNoticePermission을 기대했으나 %v", err)
	}
}

func TestNoticeDelete_NotFound(t *testing.T) {
	svc := setupNoticeService(t)

	err := svc.Delete(context.Background(), "없는-id", "uid-1", true)
	if !errors.Is(err, ErrNoticeNotFound) {
		t.Errorf("ErrNoticeNotFound를 기대했으나 %v", err)
	}
}
