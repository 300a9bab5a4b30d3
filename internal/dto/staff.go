package dto

import "time"

// ── 관리자 패널 DTO ──

// StaffListRequest 교직원 목록 조회 요청
// admin_only / non_admin_only는 동시에 켤 수 없으며 admin_only가 우선한다
type StaffListRequest struct {
	Search       string `form:"search"`
	AdminOnly    bool   `form:"admin_only"`
	NonAdminOnly bool   `form:"non_admin_only"`
}

// SetAdminRequest 관리자 권한 변경 요청
type SetAdminRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// SetLoginRequest 로그인 허용 변경 요청
type SetLoginRequest struct {
	AllowLogin *bool `json:"allow_login" binding:"required"`
}

// StaffResponse 교직원 응답
type StaffResponse struct {
	UID        string     `json:"uid"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	English    bool       `json:"english"`
	Math       bool       `json:"math"`
	Phone      string     `json:"phone"`
	IsAdmin    bool       `json:"is_admin"`
	AllowLogin bool       `json:"allow_login"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}
