package model

import "time"

// Staff 교직원 계정 테이블 — staff
// english/math는 담당 과목, is_admin/allow_login은 관리자 패널에서 토글한다
type Staff struct {
	UID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"uid"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	English      bool       `gorm:"not null;default:false"                         json:"english"`
	Math         bool       `gorm:"not null;default:false"                         json:"math"`
	Phone        string     `gorm:"type:varchar(20);not null;default:''"           json:"phone"`
	IsAdmin      bool       `gorm:"not null;default:false"                         json:"is_admin"`
	AllowLogin   bool       `gorm:"not null;default:false"                         json:"allow_login"`
	LastLogin    *time.Time `json:"last_login"`
	BaseModel
}

// TableName 테이블명 지정
func (Staff) TableName() string { return "staff" }
