package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sdasasqkim/edu-admin/internal/model"
)

// ════════════════════════════════════════════════════════════
// 수강/시간표 집계 코어
//
// 학생 스냅샷과 기준일을 받아 파생 뷰를 계산하는 순수 함수 모음.
// I/O 없음, 내부 상태 없음 — 같은 입력이면 항상 같은 출력.
// ════════════════════════════════════════════════════════════

// 과목 식별자
const (
	SubjectEnglish = "english"
	SubjectMath    = "math"
)

// 과목 표시명
const (
	SubjectLabelEnglish = "영어"
	SubjectLabelMath    = "수학"
)

// OccupantMatch 격자 칸 하나에 매칭된 (학생, 과목) 쌍
// 교사 모드에서는 같은 학생이 영어/수학으로 두 번 나타날 수 있다
type OccupantMatch struct {
	Student *model.Student
	Subject string // SubjectLabelEnglish | SubjectLabelMath
	Teacher string
}

// IsSubjectActive 기준일에 해당 과목 재원 중인지 판정한다
// 수강 플래그가 꺼져 있거나 입회일이 없으면 false (누락 필드는 오류가 아니라 비재원)
// 탈퇴일은 포함 경계: 탈퇴일 당일까지 재원으로 본다
func IsSubjectActive(s *model.Student, subject string, ref time.Time) bool {
	var flag bool
	var join, leave *time.Time

	switch subject {
	case SubjectEnglish:
		flag, join, leave = s.English, s.EnglishJoinDate, s.EnglishLeaveDate
	case SubjectMath:
		flag, join, leave = s.Math, s.MathJoinDate, s.MathLeaveDate
	default:
		return false
	}

	if !flag || join == nil {
		return false
	}

	day := truncateToDate(ref)
	if truncateToDate(*join).After(day) {
		return false
	}
	if leave != nil && truncateToDate(*leave).Before(day) {
		return false
	}
	return true
}

// slotCovers 슬롯이 (요일, 시각)을 덮는지 판정한다
// 상한은 배타: hour == end 는 점유가 아니다
func slotCovers(slot model.ScheduleSlot, day string, hour int) bool {
	if slot.Weekday() != day || slot.StartHour == nil || slot.EndHour == nil {
		return false
	}
	return *slot.StartHour <= hour && hour < *slot.EndHour
}

// matchStudent 학생 한 명이 (요일, 시각, 모드) 칸에 기여하는 항목을 구한다
//
// 모드별 매칭 규칙:
//   - english: 접미사 없는 요일 슬롯만
//   - math:    "_수학" 접미사 슬롯만
//   - 교사 그룹(A~D): 양 과목 슬롯 모두 후보이며, 매칭 과목의 담당
//     교사가 그룹에 속해야 한다
func matchStudent(s *model.Student, day string, hour int, mode string, groups map[string][]string) []OccupantMatch {
	var matches []OccupantMatch

	for _, slot := range s.Schedule {
		if !slotCovers(slot, day, hour) {
			continue
		}

		isMath := slot.IsMath()
		switch mode {
		case SubjectEnglish:
			if !isMath {
				matches = append(matches, OccupantMatch{Student: s, Subject: SubjectLabelEnglish, Teacher: derefStr(s.EngTeacher)})
			}
		case SubjectMath:
			if isMath {
				matches = append(matches, OccupantMatch{Student: s, Subject: SubjectLabelMath, Teacher: derefStr(s.MathTeacher)})
			}
		default:
			teachers, ok := groups[mode]
			if !ok {
				continue
			}
			if isMath {
				if s.MathTeacher != nil && containsStr(teachers, *s.MathTeacher) {
					matches = append(matches, OccupantMatch{Student: s, Subject: SubjectLabelMath, Teacher: *s.MathTeacher})
				}
			} else {
				if s.EngTeacher != nil && containsStr(teachers, *s.EngTeacher) {
					matches = append(matches, OccupantMatch{Student: s, Subject: SubjectLabelEnglish, Teacher: *s.EngTeacher})
				}
			}
		}
	}
	return matches
}

// ListOccupants (요일, 시각, 모드) 칸의 점유 학생 목록
// 입력 순서를 유지하며, 매칭이 없으면 빈 목록 (오류 아님)
func ListOccupants(records []model.Student, day string, hour int, mode string, groups map[string][]string) []OccupantMatch {
	var result []OccupantMatch
	for i := range records {
		result = append(result, matchStudent(&records[i], day, hour, mode, groups)...)
	}
	return result
}

// CountOccupancy (요일, 시각, 모드) 칸의 점유 수
// 항상 len(ListOccupants(...)) 와 같다
func CountOccupancy(records []model.Student, day string, hour int, mode string, groups map[string][]string) int {
	return len(ListOccupants(records, day, hour, mode, groups))
}

// GradeRank 학년 문자열을 정렬용 순위로 바꾼다
// 초N → N, 중N → 6+N, 고N → 9+N, 해석 불가 → 99
func GradeRank(grade string) int {
	parse := func(prefix string) (int, bool) {
		rest := strings.TrimPrefix(grade, prefix)
		if rest == grade {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 1 {
			return 0, false
		}
		return n, true
	}

	if n, ok := parse("초"); ok {
		return n
	}
	if n, ok := parse("중"); ok {
		return 6 + n
	}
	if n, ok := parse("고"); ok {
		return 9 + n
	}
	return 99
}

// SortByGradeRank 학년 순위 오름차순 안정 정렬 (동순위는 원래 순서 유지)
func SortByGradeRank(matches []OccupantMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return GradeRank(matches[i].Student.Grade) < GradeRank(matches[j].Student.Grade)
	})
}

// MonthAnchors 기준일이 속한 달을 끝으로 months 개월의 1일 목록을 만든다
// 예: ref=2025-04-15, months=3 → [2025-02-01, 2025-03-01, 2025-04-01]
func MonthAnchors(ref time.Time, months int) []time.Time {
	if months < 1 {
		return nil
	}
	anchors := make([]time.Time, 0, months)
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	for i := months - 1; i >= 0; i-- {
		anchors = append(anchors, first.AddDate(0, -i, 0))
	}
	return anchors
}

// MonthlyEnrollment 월 앵커 하나의 재원생 집계
type MonthlyEnrollment struct {
	Anchor  time.Time
	English int
	Math    int
}

// Total 영어+수학 합계 (양 과목 수강생은 두 번 센다)
func (m MonthlyEnrollment) Total() int { return m.English + m.Math }

// BuildMonthlyEnrollmentSeries 월별 재원생 추이를 계산한다
// 각 앵커(해당 월 1일)를 기준일로 IsSubjectActive 를 평가한다
func BuildMonthlyEnrollmentSeries(records []model.Student, anchors []time.Time) []MonthlyEnrollment {
	series := make([]MonthlyEnrollment, 0, len(anchors))
	for _, anchor := range anchors {
		point := MonthlyEnrollment{Anchor: anchor}
		for i := range records {
			if IsSubjectActive(&records[i], SubjectEnglish, anchor) {
				point.English++
			}
			if IsSubjectActive(&records[i], SubjectMath, anchor) {
				point.Math++
			}
		}
		series = append(series, point)
	}
	return series
}

// ── 내부 헬퍼 ──

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsStr(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
