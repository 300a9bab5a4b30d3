package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// ── 관리자 패널 업무 오류 ──

var (
	ErrStaffNotFound = errors.New("교직원을 찾을 수 없습니다")
	ErrSelfDemotion  = errors.New("자신의 관리자 권한은 해제할 수 없습니다")
)

// StaffService 교직원/권한 관리 업무 인터페이스
type StaffService interface {
	Get(ctx context.Context, uid string) (*dto.StaffResponse, error)
	List(ctx context.Context, actorUID string, req *dto.StaffListRequest) ([]dto.StaffResponse, error)
	SetAdmin(ctx context.Context, actorUID, targetUID string, isAdmin bool) error
	SetAllowLogin(ctx context.Context, targetUID string, allow bool) error
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService StaffService 인스턴스 생성
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

func (s *staffService) Get(ctx context.Context, uid string) (*dto.StaffResponse, error) {
	staff, err := s.repo.Staff.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("교직원 조회 실패", zap.Error(err))
		return nil, err
	}
	resp := toStaffResponse(staff)
	return &resp, nil
}

// List 교직원 목록을 조회한다. 요청자 본인은 목록에서 제외된다
func (s *staffService) List(ctx context.Context, actorUID string, req *dto.StaffListRequest) ([]dto.StaffResponse, error) {
	staffs, err := s.repo.Staff.List(ctx)
	if err != nil {
		s.logger.Error("교직원 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StaffResponse, 0, len(staffs))
	for i := range staffs {
		st := &staffs[i]
		if st.UID == actorUID {
			continue
		}
		if req.AdminOnly && !st.IsAdmin {
			continue
		}
		if !req.AdminOnly && req.NonAdminOnly && st.IsAdmin {
			continue
		}
		if req.Search != "" {
			q := strings.ToLower(req.Search)
			if !strings.Contains(strings.ToLower(st.Username), q) &&
				!strings.Contains(strings.ToLower(st.Email), q) {
				continue
			}
		}
		result = append(result, toStaffResponse(st))
	}
	return result, nil
}

// SetAdmin 관리자 권한을 명시적 값으로 설정한다
// 읽고-뒤집는 토글 대신 목표 상태를 받아 동시 조작 경쟁을 피한다
func (s *staffService) SetAdmin(ctx context.Context, actorUID, targetUID string, isAdmin bool) error {
	if actorUID == targetUID && !isAdmin {
		return ErrSelfDemotion
	}
	if err := s.repo.Staff.SetAdmin(ctx, targetUID, isAdmin); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("관리자 권한 변경 실패", zap.Error(err))
		return err
	}
	s.logger.Info("관리자 권한 변경",
		zap.String("actor", actorUID),
		zap.String("target", targetUID),
		zap.Bool("is_admin", isAdmin))
	return nil
}

func (s *staffService) SetAllowLogin(ctx context.Context, targetUID string, allow bool) error {
	if err := s.repo.Staff.SetAllowLogin(ctx, targetUID, allow); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("로그인 허용 변경 실패", zap.Error(err))
		return err
	}
	return nil
}

// toStaffResponse 모델 → 응답 DTO 변환
func toStaffResponse(st *model.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		UID:        st.UID,
		Email:      st.Email,
		Username:   st.Username,
		English:    st.English,
		Math:       st.Math,
		Phone:      st.Phone,
		IsAdmin:    st.IsAdmin,
		AllowLogin: st.AllowLogin,
		LastLogin:  st.LastLogin,
	}
}
