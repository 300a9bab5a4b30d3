package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// ── 개인 메모 모듈 업무 오류 ──

var (
	ErrMemoNotFound   = errors.New("메모를 찾을 수 없습니다")
	ErrMemoPermission = errors.New("본인의 메모만 수정/삭제할 수 있습니다")
)

// MemoService 개인 메모 업무 인터페이스
type MemoService interface {
	Create(ctx context.Context, ownerUID string, req *dto.CreateMemoRequest) (*dto.MemoResponse, error)
	List(ctx context.Context, ownerUID string) ([]dto.MemoResponse, error)
	Update(ctx context.Context, memoID, ownerUID string, req *dto.UpdateMemoRequest) (*dto.MemoResponse, error)
	Delete(ctx context.Context, memoID, ownerUID string) error
}

type memoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemoService MemoService 인스턴스 생성
func NewMemoService(repo *repository.Repository, logger *zap.Logger) MemoService {
	return &memoService{repo: repo, logger: logger}
}

// Create 배경색은 누적 생성 수 기준으로 7색을 순환 배정한다
func (s *memoService) Create(ctx context.Context, ownerUID string, req *dto.CreateMemoRequest) (*dto.MemoResponse, error) {
	count, err := s.repo.Memo.CountByOwner(ctx, ownerUID)
	if err != nil {
		s.logger.Error("메모 수 조회 실패", zap.Error(err))
		return nil, err
	}

	memo := &model.Memo{
		OwnerUID:   ownerUID,
		Title:      req.Title,
		Content:    req.Content,
		ColorIndex: int(count % model.MemoColorCount),
	}
	if err := s.repo.Memo.Create(ctx, memo); err != nil {
		s.logger.Error("메모 생성 실패", zap.Error(err))
		return nil, err
	}

	resp := toMemoResponse(memo)
	return &resp, nil
}

func (s *memoService) List(ctx context.Context, ownerUID string) ([]dto.MemoResponse, error) {
	memos, err := s.repo.Memo.ListByOwner(ctx, ownerUID)
	if err != nil {
		s.logger.Error("메모 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MemoResponse, 0, len(memos))
	for i := range memos {
		result = append(result, toMemoResponse(&memos[i]))
	}
	return result, nil
}

// Update 제목/내용만 수정한다 — 색상은 생성 시 배정값을 유지한다
func (s *memoService) Update(ctx context.Context, memoID, ownerUID string, req *dto.UpdateMemoRequest) (*dto.MemoResponse, error) {
	memo, err := s.getOwned(ctx, memoID, ownerUID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		memo.Title = *req.Title
	}
	if req.Content != nil {
		memo.Content = *req.Content
	}

	if err := s.repo.Memo.Update(ctx, memo); err != nil {
		s.logger.Error("메모 수정 실패", zap.Error(err))
		return nil, err
	}

	resp := toMemoResponse(memo)
	return &resp, nil
}

func (s *memoService) Delete(ctx context.Context, memoID, ownerUID string) error {
	if _, err := s.getOwned(ctx, memoID, ownerUID); err != nil {
		return err
	}
	if err := s.repo.Memo.Delete(ctx, memoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemoNotFound
		}
		s.logger.Error("메모 삭제 실패", zap.Error(err))
		return err
	}
	return nil
}

func (s *memoService) getOwned(ctx context.Context, memoID, ownerUID string) (*model.Memo, error) {
	memo, err := s.repo.Memo.GetByID(ctx, memoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoNotFound
		}
		s.logger.Error("메모 조회 실패", zap.Error(err))
		return nil, err
	}
	if memo.OwnerUID != ownerUID {
		return nil, ErrMemoPermission
	}
	return memo, nil
}

func toMemoResponse(m *model.Memo) dto.MemoResponse {
	return dto.MemoResponse{
		MemoID:     m.MemoID,
		Title:      m.Title,
		Content:    m.Content,
		ColorIndex: m.ColorIndex,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
