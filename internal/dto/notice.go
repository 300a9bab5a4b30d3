package dto

import "time"

// ── 공지사항 모듈 DTO ──

// CreateNoticeRequest 공지 작성 요청 (작성자 정보는 토큰에서 가져온다)
type CreateNoticeRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// NoticeResponse 공지 응답
type NoticeResponse struct {
	NoticeID  string    `json:"notice_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	AuthorUID string    `json:"author_uid"`
	CreatedAt time.Time `json:"created_at"`
}
