package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/internal/model"
)

// NoticeRepository 공지사항 데이터 접근 인터페이스
type NoticeRepository interface {
	Create(ctx context.Context, notice *model.Notice) error
	GetByID(ctx context.Context, id string) (*model.Notice, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Notice, error)
}

// noticeRepo NoticeRepository 의 GORM 구현
type noticeRepo struct {
	db *gorm.DB
}

// NewNoticeRepo NoticeRepository 인스턴스 생성
func NewNoticeRepo(db *gorm.DB) NoticeRepository {
	return &noticeRepo{db: db}
}

func (r *noticeRepo) Create(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepo) GetByID(ctx context.Context, id string) (*model.Notice, error) {
	var notice model.Notice
	err := r.db.WithContext(ctx).
		Where("notice_id = ?", id).
		First(&notice).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("notice_id = ?", id).
		Delete(&model.Notice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List 최신 공지가 먼저 오도록 정렬
func (r *noticeRepo) List(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&notices).Error
	if err != nil {
		return nil, err
	}
	return notices, nil
}
