package dto

// ── 시간표 모듈 DTO ──
//
// 보기 모드: english / math / A / B / C / D
// A~D는 담당 교사 그룹 기준으로 영어·수학을 합쳐 보여준다.

// TimetableQueryRequest 시간표 격자 조회 요청
// 모드 검증은 Service 층에서 한다 — 교사 그룹이 설정으로 늘어날 수 있다
type TimetableQueryRequest struct {
	Mode string `form:"mode"`
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"` // 기준일, 생략 시 오늘
}

// OccupantEntry 격자 칸 안의 학생 한 명 (교사 모드에서는 같은 학생이 과목별로 중복될 수 있음)
type OccupantEntry struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Grade     string `json:"grade"`
	Subject   string `json:"subject"` // "영어" | "수학"
	Teacher   string `json:"teacher,omitempty"`
}

// TimetableCell 요일×시간 칸
type TimetableCell struct {
	Day       string          `json:"day"`
	Hour      int             `json:"hour"`
	Count     int             `json:"count"`
	Occupants []OccupantEntry `json:"occupants"`
}

// OverviewCell 과목별 인원수만 담은 칸 (전체 현황 보기)
type OverviewCell struct {
	Day     string `json:"day"`
	Hour    int    `json:"hour"`
	English int    `json:"english"`
	Math    int    `json:"math"`
	Total   int    `json:"total"`
}

// TimetableOverviewResponse 영어·수학 합산 현황 격자 응답
type TimetableOverviewResponse struct {
	Date      string         `json:"date"`
	OpenHour  int            `json:"open_hour"`
	CloseHour int            `json:"close_hour"`
	Days      []string       `json:"days"`
	Cells     []OverviewCell `json:"cells"`
}

// TimetableGridResponse 전체 격자 응답
type TimetableGridResponse struct {
	Mode      string          `json:"mode"`
	Date      string          `json:"date"`
	OpenHour  int             `json:"open_hour"`
	CloseHour int             `json:"close_hour"`
	Days      []string        `json:"days"`
	Cells     []TimetableCell `json:"cells"`
}
