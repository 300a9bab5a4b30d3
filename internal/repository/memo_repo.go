package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/internal/model"
)

// MemoRepository 개인 메모 데이터 접근 인터페이스
type MemoRepository interface {
	Create(ctx context.Context, memo *model.Memo) error
	GetByID(ctx context.Context, id string) (*model.Memo, error)
	Update(ctx context.Context, memo *model.Memo) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerUID string) ([]model.Memo, error)
	CountByOwner(ctx context.Context, ownerUID string) (int64, error)
}

// memoRepo MemoRepository 의 GORM 구현
type memoRepo struct {
	db *gorm.DB
}

// NewMemoRepo MemoRepository 인스턴스 생성
func NewMemoRepo(db *gorm.DB) MemoRepository {
	return &memoRepo{db: db}
}

func (r *memoRepo) Create(ctx context.Context, memo *model.Memo) error {
	return r.db.WithContext(ctx).Create(memo).Error
}

func (r *memoRepo) GetByID(ctx context.Context, id string) (*model.Memo, error) {
	var memo model.Memo
	err := r.db.WithContext(ctx).
		Where("memo_id = ?", id).
		First(&memo).Error
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *memoRepo) Update(ctx context.Context, memo *model.Memo) error {
	return r.db.WithContext(ctx).Save(memo).Error
}

func (r *memoRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("memo_id = ?", id).
		Delete(&model.Memo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *memoRepo) ListByOwner(ctx context.Context, ownerUID string) ([]model.Memo, error) {
	var memos []model.Memo
	err := r.db.WithContext(ctx).
		Where("owner_uid = ?", ownerUID).
		Order("created_at ASC").
		Find(&memos).Error
	if err != nil {
		return nil, err
	}
	return memos, nil
}

// CountByOwner 색상 순환 배정용 누적 개수
func (r *memoRepo) CountByOwner(ctx context.Context, ownerUID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Memo{}).
		Where("owner_uid = ?", ownerUID).
		Count(&count).Error
	return count, err
}
