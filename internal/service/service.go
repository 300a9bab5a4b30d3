package service

import (
	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/config"
	"github.com/sdasasqkim/edu-admin/internal/repository"
	"github.com/sdasasqkim/edu-admin/pkg/jwt"
	"github.com/sdasasqkim/edu-admin/pkg/redis"
)

// Service 모든 Service 의 집합 진입점
type Service struct {
	Auth       AuthService
	Staff      StaffService
	Student    StudentService
	Attendance AttendanceService
	Timetable  TimetableService
	Dashboard  DashboardService
	Notice     NoticeService
	Memo       MemoService
	Export     ExportService
}

// NewService Service 집합 생성
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Staff:      NewStaffService(repo, logger),
		Student:    NewStudentService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Timetable:  NewTimetableService(cfg, repo, logger),
		Dashboard:  NewDashboardService(cfg, repo, logger),
		Notice:     NewNoticeService(repo, logger),
		Memo:       NewMemoService(repo, logger),
		Export:     NewExportService(cfg, repo, logger),
	}
}
