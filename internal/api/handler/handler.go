package handler

import "github.com/sdasasqkim/edu-admin/internal/service"

// Handler 모든 Handler 의 집합 진입점
type Handler struct {
	Auth       *AuthHandler
	Staff      *StaffHandler
	Student    *StudentHandler
	Attendance *AttendanceHandler
	Timetable  *TimetableHandler
	Dashboard  *DashboardHandler
	Notice     *NoticeHandler
	Memo       *MemoHandler
	Export     *ExportHandler
}

// NewHandler Handler 집합 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Staff:      NewStaffHandler(svc.Staff),
		Student:    NewStudentHandler(svc.Student),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Timetable:  NewTimetableHandler(svc.Timetable),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Notice:     NewNoticeHandler(svc.Notice),
		Memo:       NewMemoHandler(svc.Memo),
		Export:     NewExportHandler(svc.Export),
	}
}
