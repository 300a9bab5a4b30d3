package model

// MemoColorCount 메모 배경색 순환 개수 (빨 주 노 초 파 남 보)
const MemoColorCount = 7

// Memo 개인 메모 테이블 — memos
// color_index는 생성 시 순환 배정되고 수정 시에는 유지된다
type Memo struct {
	MemoID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"memo_id"`
	OwnerUID   string `gorm:"type:uuid;not null;index"                       json:"-"`
	Title      string `gorm:"type:varchar(200);not null"                     json:"title"`
	Content    string `gorm:"type:text;not null;default:''"                  json:"content"`
	ColorIndex int    `gorm:"type:smallint;not null;default:0"               json:"color_index"`
	BaseModel
}

// TableName 테이블명 지정
func (Memo) TableName() string { return "memos" }
