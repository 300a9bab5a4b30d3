package model

import "time"

// ── 요일/슬롯 키 ──
//
// 슬롯 키는 문서 저장소 시절의 표기를 그대로 따른다:
// 영어 수업은 요일 태그("월"), 수학 수업은 "_수학" 접미사("월_수학").

// MathSuffix 수학 슬롯 키 접미사
const MathSuffix = "_수학"

// Weekdays 수업 요일 (월~금)
var Weekdays = []string{"월", "화", "수", "목", "금"}

// SlotKeys 학생 1명의 전체 슬롯 키 10개 (요일 5 × 과목 2)
// 영어 5개가 먼저, 수학 5개가 뒤에 온다
func SlotKeys() []string {
	keys := make([]string, 0, len(Weekdays)*2)
	keys = append(keys, Weekdays...)
	for _, d := range Weekdays {
		keys = append(keys, d+MathSuffix)
	}
	return keys
}

// Student 학생 테이블 — students
type Student struct {
	StudentID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	School      string  `gorm:"type:varchar(100);not null;default:''"          json:"school"`
	Grade       string  `gorm:"type:varchar(20);not null;default:''"           json:"grade"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Phone       string  `gorm:"type:varchar(20);not null;default:''"           json:"phone"`
	English     bool    `gorm:"not null;default:false"                         json:"english"`
	Math        bool    `gorm:"not null;default:false"                         json:"math"`
	EngTeacher  *string `gorm:"type:varchar(10)"                               json:"eng_teacher"`
	MathTeacher *string `gorm:"type:varchar(10)"                               json:"math_teacher"`

	// 과목별 수강 기간 (탈퇴일 null = 재원 중)
	EnglishJoinDate  *time.Time `gorm:"type:date" json:"english_join_date"`
	EnglishLeaveDate *time.Time `gorm:"type:date" json:"english_leave_date"`
	MathJoinDate     *time.Time `gorm:"type:date" json:"math_join_date"`
	MathLeaveDate    *time.Time `gorm:"type:date" json:"math_leave_date"`

	BaseModel

	// 연관
	Schedule []ScheduleSlot `gorm:"foreignKey:StudentID;references:StudentID" json:"schedule,omitempty"`
}

// TableName 테이블명 지정
func (Student) TableName() string { return "students" }

// ScheduleSlot 시간표 슬롯 테이블 — schedule_slots
// 학생당 정확히 10행 (요일×과목 조합당 1행), 시간이 null이면 해당 요일 수업 없음
type ScheduleSlot struct {
	SlotID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"-"`
	StudentID string `gorm:"type:uuid;not null;index"                       json:"-"`
	SlotKey   string `gorm:"type:varchar(10);not null"                      json:"day"`
	StartHour *int   `gorm:"type:smallint"                                  json:"start"`
	EndHour   *int   `gorm:"type:smallint"                                  json:"end"`
}

// TableName 테이블명 지정
func (ScheduleSlot) TableName() string { return "schedule_slots" }

// IsMath 수학 슬롯 여부
func (s ScheduleSlot) IsMath() bool {
	return len(s.SlotKey) > len(MathSuffix) && s.SlotKey[len(s.SlotKey)-len(MathSuffix):] == MathSuffix
}

// Weekday 슬롯 키에서 요일 태그를 분리한다 ("월_수학" → "월")
func (s ScheduleSlot) Weekday() string {
	if s.IsMath() {
		return s.SlotKey[:len(s.SlotKey)-len(MathSuffix)]
	}
	return s.SlotKey
}
