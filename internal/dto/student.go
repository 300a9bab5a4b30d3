package dto

// ── 학생 모듈 DTO ──
//
// 수강 기간 날짜는 API에서 ISO 형식("2024-01-10")을 사용한다.
// 구 문서 저장소의 YYMMDD 정수 인코딩은 레거시 가져오기에서만 받는다.

// ScheduleSlotPayload 시간표 슬롯 (day는 "월".."금" 또는 "월_수학".."금_수학")
type ScheduleSlotPayload struct {
	Day   string `json:"day"   binding:"required"`
	Start *int   `json:"start" binding:"omitempty,min=0,max=23"`
	End   *int   `json:"end"   binding:"omitempty,min=0,max=23"`
}

// CreateStudentRequest 학생 등록 요청
// schedule에 없는 요일×과목 조합은 시간 null 슬롯으로 채워진다
type CreateStudentRequest struct {
	School           string                `json:"school"             binding:"omitempty,max=100"`
	Grade            string                `json:"grade"              binding:"omitempty,max=20"`
	Name             string                `json:"name"               binding:"required,max=100"`
	Phone            string                `json:"phone"              binding:"omitempty,max=20"`
	English          bool                  `json:"english"`
	Math             bool                  `json:"math"`
	EngTeacher       *string               `json:"eng_teacher"        binding:"omitempty,max=10"`
	MathTeacher      *string               `json:"math_teacher"       binding:"omitempty,max=10"`
	Schedule         []ScheduleSlotPayload `json:"schedule"           binding:"omitempty,dive"`
	EnglishJoinDate  *string               `json:"english_join_date"  binding:"omitempty,datetime=2006-01-02"`
	EnglishLeaveDate *string               `json:"english_leave_date" binding:"omitempty,datetime=2006-01-02"`
	MathJoinDate     *string               `json:"math_join_date"     binding:"omitempty,datetime=2006-01-02"`
	MathLeaveDate    *string               `json:"math_leave_date"    binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStudentRequest 학생 필드 단위 수정 요청 (nil 필드는 건드리지 않음)
// eng_teacher/math_teacher와 날짜 필드는 빈 문자열을 주면 값이 지워진다
type UpdateStudentRequest struct {
	School           *string `json:"school"             binding:"omitempty,max=100"`
	Grade            *string `json:"grade"              binding:"omitempty,max=20"`
	Name             *string `json:"name"               binding:"omitempty,max=100"`
	Phone            *string `json:"phone"              binding:"omitempty,max=20"`
	English          *bool   `json:"english"`
	Math             *bool   `json:"math"`
	EngTeacher       *string `json:"eng_teacher"        binding:"omitempty,max=10"`
	MathTeacher      *string `json:"math_teacher"       binding:"omitempty,max=10"`
	EnglishJoinDate  *string `json:"english_join_date"  binding:"omitempty"`
	EnglishLeaveDate *string `json:"english_leave_date" binding:"omitempty"`
	MathJoinDate     *string `json:"math_join_date"     binding:"omitempty"`
	MathLeaveDate    *string `json:"math_leave_date"    binding:"omitempty"`
}

// UpdateScheduleRequest 학생 시간표 전체 교체 요청
type UpdateScheduleRequest struct {
	Schedule []ScheduleSlotPayload `json:"schedule" binding:"required,dive"`
}

// StudentResponse 학생 응답 (시간표 슬롯 10개 포함)
type StudentResponse struct {
	StudentID        string                `json:"student_id"`
	School           string                `json:"school"`
	Grade            string                `json:"grade"`
	Name             string                `json:"name"`
	Phone            string                `json:"phone"`
	English          bool                  `json:"english"`
	Math             bool                  `json:"math"`
	EngTeacher       *string               `json:"eng_teacher"`
	MathTeacher      *string               `json:"math_teacher"`
	Schedule         []ScheduleSlotPayload `json:"schedule"`
	EnglishJoinDate  *string               `json:"english_join_date"`
	EnglishLeaveDate *string               `json:"english_leave_date"`
	MathJoinDate     *string               `json:"math_join_date"`
	MathLeaveDate    *string               `json:"math_leave_date"`
}

// ── 레거시 가져오기 ──

// LegacyStudentPayload 구 문서 저장소의 학생 문서 형태
// 날짜는 YYMMDD 정수(in/out=영어, in_math/out_math=수학), 교사는 eng_T/math_T
type LegacyStudentPayload struct {
	School   string                `json:"school"`
	Grade    string                `json:"grade"`
	Name     string                `json:"name"     binding:"required"`
	Phone    string                `json:"phone"`
	English  bool                  `json:"english"`
	Math     bool                  `json:"math"`
	EngT     *string               `json:"eng_T"`
	MathT    *string               `json:"math_T"`
	Schedule []ScheduleSlotPayload `json:"schedule"`
	In       *int                  `json:"in"`
	Out      *int                  `json:"out"`
	InMath   *int                  `json:"in_math"`
	OutMath  *int                  `json:"out_math"`
}

// ImportLegacyRequest 레거시 학생 문서 일괄 가져오기 요청
type ImportLegacyRequest struct {
	Students []LegacyStudentPayload `json:"students" binding:"required,min=1,dive"`
}

// ImportLegacyResponse 레거시 가져오기 응답
type ImportLegacyResponse struct {
	ImportedCount int      `json:"imported_count"`
	SkippedDates  []string `json:"skipped_dates,omitempty"` // 해석 불가한 YYMMDD 코드 목록
}
