package model

import "time"

// Notice 공지사항 테이블 — notices
type Notice struct {
	NoticeID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notice_id"`
	Text      string    `gorm:"type:text;not null"                             json:"text"`
	Author    string    `gorm:"type:varchar(50);not null"                      json:"author"`
	AuthorUID string    `gorm:"type:uuid;not null"                             json:"author_uid"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 테이블명 지정
func (Notice) TableName() string { return "notices" }
