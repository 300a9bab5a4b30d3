package dto

// ── 출결 모듈 DTO ──

// MarkAttendanceRequest 출결 기록 요청 (같은 날짜 재기록 시 덮어쓴다)
type MarkAttendanceRequest struct {
	Date   string `json:"date"   binding:"required,datetime=2006-01-02"`
	Status string `json:"status" binding:"required,oneof=A B C"`
}

// AttendanceQueryRequest 출결 조회 요청
type AttendanceQueryRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
}

// AttendanceEntry 날짜별 출결 항목
type AttendanceEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Label  string `json:"label"`
}

// AttendanceResponse 학생 한 명의 출결 이력
type AttendanceResponse struct {
	StudentID string            `json:"student_id"`
	Name      string            `json:"name"`
	Records   []AttendanceEntry `json:"records"`
}

// DailyAttendanceRequest 일일 출결 현황 조회 요청 (날짜 생략 시 오늘)
type DailyAttendanceRequest struct {
	Date    string `form:"date"    binding:"omitempty,datetime=2006-01-02"`
	School  string `form:"school"`
	Grade   string `form:"grade"`
	Subject string `form:"subject" binding:"omitempty,oneof=english math"`
}

// DailyAttendanceRow 일일 현황 한 줄 (미기록 학생은 status가 빈 문자열)
type DailyAttendanceRow struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	School    string `json:"school"`
	Grade     string `json:"grade"`
	Status    string `json:"status"`
	Label     string `json:"label"`
}

// DailyAttendanceResponse 일일 출결 현황
type DailyAttendanceResponse struct {
	Date    string               `json:"date"`
	Rows    []DailyAttendanceRow `json:"rows"`
	Summary AttendanceSummary    `json:"summary"`
}

// AttendanceSummary 출결 집계 (대시보드용)
type AttendanceSummary struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}
