package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sdasasqkim/edu-admin/config"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// ── 내보내기 모듈 업무 오류 ──

var (
	ErrExportNoStudents   = errors.New("내보낼 학생이 없습니다")
	ErrExportNoSchedule   = errors.New("해당 학생의 시간표에 수업이 없습니다")
	ErrExportGenerateFail = errors.New("내보내기 파일 생성에 실패했습니다")
)

// ExportService 내보내기 업무 인터페이스
//
// 설계 메모:
//   - 명부/출결은 Excel(.xlsx), 학생 시간표는 iCalendar(.ics)로 내보낸다
//   - 결과는 bytes.Buffer 로 반환하고 Handler 가 응답 헤더를 설정한다
type ExportService interface {
	ExportRoster(ctx context.Context) (*bytes.Buffer, string, error)
	ExportAttendance(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error)
	ExportStudentSchedule(ctx context.Context, studentID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportRoster — 학생 명부를 Excel 로
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportRoster(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("학생 목록 조회 실패", zap.Error(err))
		return nil, "", err
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoStudents
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "학생 명부"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "C", 10)
	f.SetColWidth(sheet, "D", "D", 16)
	f.SetColWidth(sheet, "E", "H", 12)
	f.SetColWidth(sheet, "I", "L", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"이름", "학교", "학년", "연락처", "영어", "수학", "영어 담당", "수학 담당",
		"영어 입회일", "영어 탈퇴일", "수학 입회일", "수학 탈퇴일"}
	for i, h := range headers {
		f.SetCellValue(sheet, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheet, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	yesNo := func(b bool) string {
		if b {
			return "O"
		}
		return "-"
	}
	dateOrDash := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format(dateLayout)
	}

	for i := range students {
		st := &students[i]
		row := i + 2
		f.SetCellValue(sheet, cell("A", row), st.Name)
		f.SetCellValue(sheet, cell("B", row), st.School)
		f.SetCellValue(sheet, cell("C", row), st.Grade)
		f.SetCellValue(sheet, cell("D", row), st.Phone)
		f.SetCellValue(sheet, cell("E", row), yesNo(st.English))
		f.SetCellValue(sheet, cell("F", row), yesNo(st.Math))
		f.SetCellValue(sheet, cell("G", row), derefStr(st.EngTeacher))
		f.SetCellValue(sheet, cell("H", row), derefStr(st.MathTeacher))
		f.SetCellValue(sheet, cell("I", row), dateOrDash(st.EnglishJoinDate))
		f.SetCellValue(sheet, cell("J", row), dateOrDash(st.EnglishLeaveDate))
		f.SetCellValue(sheet, cell("K", row), dateOrDash(st.MathJoinDate))
		f.SetCellValue(sheet, cell("L", row), dateOrDash(st.MathLeaveDate))
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 쓰기 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("학생명부_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportAttendance — 기간 출결을 Excel 로
// ═══════════════════════════════════════════════════════════
//
// 출력 형식: 행 = 학생, 열 = 날짜, 칸 = 출결 라벨(출석/지각/결석)

func (s *exportService) ExportAttendance(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("학생 목록 조회 실패", zap.Error(err))
		return nil, "", err
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoStudents
	}

	// 기간 내 날짜 열 구성
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "출결표"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 8)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", "이름")
	f.SetCellValue(sheet, "B1", "학년")
	for i, d := range dates {
		col := colName(2 + i)
		f.SetColWidth(sheet, col, col, 10)
		f.SetCellValue(sheet, cell(col, 1), d.Format("01/02"))
	}
	f.SetCellStyle(sheet, "A1", cell(colName(1+len(dates)), 1), headerStyle)

	for i := range students {
		st := &students[i]
		row := i + 2
		f.SetCellValue(sheet, cell("A", row), st.Name)
		f.SetCellValue(sheet, cell("B", row), st.Grade)

		records, err := s.repo.Attendance.ListByStudent(ctx, st.StudentID, &from, &to)
		if err != nil {
			s.logger.Error("출결 조회 실패", zap.String("student_id", st.StudentID), zap.Error(err))
			return nil, "", err
		}
		byDate := make(map[string]string, len(records))
		for _, r := range records {
			byDate[r.Date.Format(dateLayout)] = model.AttendanceStatusLabel[r.Status]
		}

		for j, d := range dates {
			label := byDate[d.Format(dateLayout)]
			if label == "" {
				label = "-"
			}
			f.SetCellValue(sheet, cell(colName(2+j), row), label)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 쓰기 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("출결표_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportStudentSchedule — 학생 한 명의 주간 시간표를 iCalendar 로
// ═══════════════════════════════════════════════════════════
//
// 시간이 지정된 슬롯마다 주간 반복(RRULE FREQ=WEEKLY) 이벤트를 만든다

// weekdayRule 요일 태그 → (time.Weekday, BYDAY 코드)
var weekdayRule = map[string]struct {
	wd    time.Weekday
	byday string
}{
	"월": {time.Monday, "MO"},
	"화": {time.Tuesday, "TU"},
	"수": {time.Wednesday, "WE"},
	"목": {time.Thursday, "TH"},
	"금": {time.Friday, "FR"},
}

func (s *exportService) ExportStudentSchedule(ctx context.Context, studentID string) (*bytes.Buffer, string, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStudentNotFound
		}
		s.logger.Error("학생 조회 실패", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//edu-admin//timetable//KR")

	now := time.Now()
	eventCount := 0

	for _, slot := range student.Schedule {
		if slot.StartHour == nil || slot.EndHour == nil {
			continue
		}
		rule, ok := weekdayRule[slot.Weekday()]
		if !ok {
			continue
		}

		subject := SubjectLabelEnglish
		if slot.IsMath() {
			subject = SubjectLabelMath
		}

		// 다음 해당 요일의 수업 시작 시각을 첫 발생으로 잡는다
		start := nextWeekday(now, rule.wd)
		start = time.Date(start.Year(), start.Month(), start.Day(), *slot.StartHour, 0, 0, 0, start.Location())
		end := time.Date(start.Year(), start.Month(), start.Day(), *slot.EndHour, 0, 0, 0, start.Location())

		event := cal.AddEvent(fmt.Sprintf("%s-%s@edu-admin", student.StudentID, slot.SlotKey))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s %s 수업", student.Name, subject))
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + rule.byday)
		eventCount++
	}

	if eventCount == 0 {
		return nil, "", ErrExportNoSchedule
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("시간표_%s.ics", student.Name)
	return buf, filename, nil
}

// nextWeekday ref 이후(당일 포함) 가장 가까운 해당 요일
func nextWeekday(ref time.Time, wd time.Weekday) time.Time {
	offset := (int(wd) - int(ref.Weekday()) + 7) % 7
	return ref.AddDate(0, 0, offset)
}

// ── 보조 함수 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
