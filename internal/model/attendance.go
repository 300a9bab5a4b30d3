package model

import "time"

// ── 출석 상태 코드 ──

const (
	AttendancePresent = "A" // 출석
	AttendanceLate    = "B" // 지각
	AttendanceAbsent  = "C" // 결석
)

// AttendanceStatusLabel 상태 코드 → 표시 라벨
var AttendanceStatusLabel = map[string]string{
	AttendancePresent: "출석",
	AttendanceLate:    "지각",
	AttendanceAbsent:  "결석",
}

// ValidAttendanceStatus 유효한 상태 코드인지 확인
func ValidAttendanceStatus(code string) bool {
	_, ok := AttendanceStatusLabel[code]
	return ok
}

// AttendanceRecord 출석 테이블 — attendance_records
// (학생, 날짜)당 최대 1행. 같은 날짜에 다시 기록하면 덮어쓴다
type AttendanceRecord struct {
	RecordID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"     json:"-"`
	StudentID string    `gorm:"type:uuid;not null;uniqueIndex:uniq_student_date"   json:"student_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uniq_student_date"   json:"date"`
	Status    string    `gorm:"type:char(1);not null"                              json:"status"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                 json:"updated_at"`
}

// TableName 테이블명 지정
func (AttendanceRecord) TableName() string { return "attendance_records" }
