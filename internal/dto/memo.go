package dto

import "time"

// ── 개인 메모 모듈 DTO ──

// CreateMemoRequest 메모 생성 요청 (색상은 서버가 순환 배정)
type CreateMemoRequest struct {
	Title   string `json:"title"   binding:"required,max=200"`
	Content string `json:"content" binding:"omitempty,max=5000"`
}

// UpdateMemoRequest 메모 수정 요청 (색상은 유지된다)
type UpdateMemoRequest struct {
	Title   *string `json:"title"   binding:"omitempty,max=200"`
	Content *string `json:"content" binding:"omitempty,max=5000"`
}

// MemoResponse 메모 응답
type MemoResponse struct {
	MemoID     string    `json:"memo_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ColorIndex int       `json:"color_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
