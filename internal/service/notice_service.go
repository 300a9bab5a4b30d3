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

// ── 공지사항 모듈 업무 오류 ──

var (
	ErrNoticeNotFound   = errors.New("공지사항을 찾을 수 없습니다")
	ErrNoticePermission = errors.New("공지사항 삭제 권한이 없습니다")
)

// NoticeService 공지사항 업무 인터페이스
type NoticeService interface {
	Create(ctx context.Context, authorUID, authorName string, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	List(ctx context.Context) ([]dto.NoticeResponse, error)
	Delete(ctx context.Context, noticeID, actorUID string, isAdmin bool) error
}

type noticeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoticeService NoticeService 인스턴스 생성
func NewNoticeService(repo *repository.Repository, logger *zap.Logger) NoticeService {
	return &noticeService{repo: repo, logger: logger}
}

func (s *noticeService) Create(ctx context.Context, authorUID, authorName string, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	notice := &model.Notice{
		Text:      req.Text,
		Author:    authorName,
		AuthorUID: authorUID,
	}
	if err := s.repo.Notice.Create(ctx, notice); err != nil {
		s.logger.Error("공지 작성 실패", zap.Error(err))
		return nil, err
	}
	resp := toNoticeResponse(notice)
	return &resp, nil
}

func (s *noticeService) List(ctx context.Context) ([]dto.NoticeResponse, error) {
	notices, err := s.repo.Notice.List(ctx)
	if err != nil {
		s.logger.Error("공지 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		result = append(result, toNoticeResponse(&notices[i]))
	}
	return result, nil
}

// Delete 관리자이거나 작성자 본인만 삭제할 수 있다
func (s *noticeService) Delete(ctx context.Context, noticeID, actorUID string, isAdmin bool) error {
	notice, err := s.repo.Notice.GetByID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoticeNotFound
		}
		s.logger.Error("공지 조회 실패", zap.Error(err))
		return err
	}

	if !isAdmin && notice.AuthorUID != actorUID {
		return ErrNoticePermission
	}

	if err := s.repo.Notice.Delete(ctx, noticeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoticeNotFound
		}
		s.logger.Error("공지 삭제 실패", zap.Error(err))
		return err
	}
	return nil
}

func toNoticeResponse(n *model.Notice) dto.NoticeResponse {
	return dto.NoticeResponse{
		NoticeID:  n.NoticeID,
		Text:      n.Text,
		Author:    n.Author,
		AuthorUID: n.AuthorUID,
		CreatedAt: n.CreatedAt,
	}
}
