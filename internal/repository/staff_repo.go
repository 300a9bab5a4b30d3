package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/internal/model"
)

// StaffRepository 교직원 데이터 접근 인터페이스
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	GetByUID(ctx context.Context, uid string) (*model.Staff, error)
	GetByEmail(ctx context.Context, email string) (*model.Staff, error)
	Update(ctx context.Context, staff *model.Staff) error
	UpdateLastLogin(ctx context.Context, uid string, at time.Time) error
	SetAdmin(ctx context.Context, uid string, isAdmin bool) error
	SetAllowLogin(ctx context.Context, uid string, allow bool) error
	List(ctx context.Context) ([]model.Staff, error)
}

// staffRepo StaffRepository 의 GORM 구현
type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo StaffRepository 인스턴스 생성
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) GetByUID(ctx context.Context, uid string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) Update(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepo) UpdateLastLogin(ctx context.Context, uid string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Staff{}).
		Where("uid = ?", uid).
		Update("last_login", at).Error
}

func (r *staffRepo) SetAdmin(ctx context.Context, uid string, isAdmin bool) error {
	res := r.db.WithContext(ctx).Model(&model.Staff{}).
		Where("uid = ?", uid).
		Update("is_admin", isAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *staffRepo) SetAllowLogin(ctx context.Context, uid string, allow bool) error {
	res := r.db.WithContext(ctx).Model(&model.Staff{}).
		Where("uid = ?", uid).
		Update("allow_login", allow)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *staffRepo) List(ctx context.Context) ([]model.Staff, error) {
	var staffs []model.Staff
	err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&staffs).Error
	if err != nil {
		return nil, err
	}
	return staffs, nil
}
