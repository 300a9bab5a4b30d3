package dto

// ── 인증 모듈 DTO ──

// LoginRequest 로그인 요청
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 회원가입 요청
// 가입 직후에는 allow_login=false, is_admin=false 상태로 생성된다
type RegisterRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Username string `json:"username" binding:"required,min=2,max=20"`
	Password string `json:"password" binding:"required,min=8,max=30"`
	English  bool   `json:"english"`
	Math     bool   `json:"math"`
	Phone    string `json:"phone"    binding:"omitempty,max=20"`
}

// RefreshTokenRequest Token 갱신 요청
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse 로그인/갱신 응답
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int           `json:"expires_in"`
	User         StaffResponse `json:"user"`
}
