package dto

// ── 대시보드 모듈 DTO ──

// EnrollmentPoint 월별 재원생 수 점 하나
type EnrollmentPoint struct {
	Month   string `json:"month"` // "2025-04"
	English int    `json:"english"`
	Math    int    `json:"math"`
	Total   int    `json:"total"`
}

// DashboardSummaryResponse 대시보드 요약 응답
type DashboardSummaryResponse struct {
	TotalStudents   int               `json:"total_students"`
	EnglishStudents int               `json:"english_students"`
	MathStudents    int               `json:"math_students"`
	TodayAttendance AttendanceSummary `json:"today_attendance"`
	EnrollmentTrend []EnrollmentPoint `json:"enrollment_trend"`
	NoticeCount     int               `json:"notice_count"`
	LatestNotices   []NoticeResponse  `json:"latest_notices"`
}
