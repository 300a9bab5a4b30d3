package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/config"
	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
	"github.com/sdasasqkim/edu-admin/pkg/jwt"
	"github.com/sdasasqkim/edu-admin/pkg/redis"
)

// ── 인증 모듈 업무 오류 ──

var (
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	ErrLoginNotAllowed    = errors.New("로그인이 허용되지 않은 계정입니다")
	ErrEmailTaken         = errors.New("이미 사용 중인 이메일입니다")
	ErrInvalidRefresh     = errors.New("유효하지 않은 갱신 토큰입니다")
)

// AuthService 인증 업무 인터페이스
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.StaffResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, rawToken string) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService AuthService 인스턴스 생성
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 계정 조회
	staff, err := s.repo.Staff.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("계정 조회 실패", zap.Error(err))
		return nil, err
	}

	// 2. 비밀번호 검증 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 로그인 허용 여부 — 가입 직후에는 관리자가 허용할 때까지 차단된다
	if !staff.AllowLogin {
		return nil, ErrLoginNotAllowed
	}

	// 4. Token 쌍 생성
	accessToken, err := s.jwtMgr.GenerateAccessToken(staff.UID, staff.Username, staff.IsAdmin)
	if err != nil {
		s.logger.Error("AccessToken 생성 실패", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(staff.UID, staff.Username, staff.IsAdmin)
	if err != nil {
		s.logger.Error("RefreshToken 생성 실패", zap.Error(err))
		return nil, err
	}

	// 5. 최근 로그인 시각 기록 (실패해도 로그인은 진행)
	now := time.Now()
	if err := s.repo.Staff.UpdateLastLogin(ctx, staff.UID, now); err != nil {
		s.logger.Warn("최근 로그인 시각 기록 실패", zap.String("uid", staff.UID), zap.Error(err))
	}
	staff.LastLogin = &now

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toStaffResponse(staff),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.StaffResponse, error) {
	// 1. 이메일 중복 확인
	if _, err := s.repo.Staff.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("이메일 중복 확인 실패", zap.Error(err))
		return nil, err
	}

	// 2. 비밀번호 해시
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("비밀번호 해시 실패", zap.Error(err))
		return nil, err
	}

	// 3. 계정 생성 — allow_login/is_admin 은 기본 false
	staff := &model.Staff{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		English:      req.English,
		Math:         req.Math,
		Phone:        req.Phone,
	}
	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		s.logger.Error("계정 생성 실패", zap.Error(err))
		return nil, err
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// 1. 갱신 토큰 검증
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefresh
	}

	// 2. 블랙리스트 확인 (Redis 미가동 시 통과)
	if s.rdb != nil {
		blocked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("블랙리스트 확인 실패", zap.Error(err))
		} else if blocked {
			return nil, ErrInvalidRefresh
		}
	}

	// 3. 계정 상태 재확인 — 토큰 발급 후 허용이 취소됐을 수 있다
	staff, err := s.repo.Staff.GetByUID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		s.logger.Error("계정 조회 실패", zap.Error(err))
		return nil, err
	}
	if !staff.AllowLogin {
		return nil, ErrLoginNotAllowed
	}

	// 4. 새 토큰 쌍 발급
	accessToken, err := s.jwtMgr.GenerateAccessToken(staff.UID, staff.Username, staff.IsAdmin)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(staff.UID, staff.Username, staff.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toStaffResponse(staff),
	}, nil
}

// Logout 전달받은 토큰을 남은 유효 기간 동안 블랙리스트에 올린다
// Redis 미가동 시에는 만료에 맡긴다
func (s *authService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.jwtMgr.ParseToken(rawToken)
	if err != nil {
		// 이미 만료된 토큰의 로그아웃은 성공으로 처리
		return nil
	}

	if s.rdb == nil || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("토큰 블랙리스트 등록 실패", zap.Error(err))
	}
	return nil
}
