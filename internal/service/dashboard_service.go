package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/config"
	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/model"
	"github.com/sdasasqkim/edu-admin/internal/repository"
)

// noticePreviewSize 대시보드에 보여줄 최신 공지 수
const noticePreviewSize = 4

// DashboardService 대시보드 집계 업무 인터페이스
type DashboardService interface {
	Summary(ctx context.Context, ref time.Time) (*dto.DashboardSummaryResponse, error)
}

type dashboardService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService DashboardService 인스턴스 생성
func NewDashboardService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{cfg: cfg, repo: repo, logger: logger}
}

// Summary 기준일의 재원생 수, 당일 출결, 월별 추이를 계산한다
// 매 호출마다 스냅샷에서 재계산하며 캐시하지 않는다
func (s *dashboardService) Summary(ctx context.Context, ref time.Time) (*dto.DashboardSummaryResponse, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("학생 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	var english, math, total int
	for i := range students {
		engActive := IsSubjectActive(&students[i], SubjectEnglish, ref)
		mathActive := IsSubjectActive(&students[i], SubjectMath, ref)
		if engActive {
			english++
		}
		if mathActive {
			math++
		}
		if engActive || mathActive {
			total++
		}
	}

	// 당일 출결 집계
	counts, err := s.repo.Attendance.CountByDate(ctx, time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC))
	if err != nil {
		s.logger.Error("출결 집계 실패", zap.Error(err))
		return nil, err
	}

	// 최신 공지 미리보기 (최신순 상위 4건)
	notices, err := s.repo.Notice.List(ctx)
	if err != nil {
		s.logger.Error("공지 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	preview := make([]dto.NoticeResponse, 0, noticePreviewSize)
	for i := range notices {
		if i == noticePreviewSize {
			break
		}
		preview = append(preview, toNoticeResponse(&notices[i]))
	}

	// 월별 재원생 추이
	anchors := MonthAnchors(ref, s.cfg.Academy.TrendMonths)
	series := BuildMonthlyEnrollmentSeries(students, anchors)

	trend := make([]dto.EnrollmentPoint, 0, len(series))
	for _, p := range series {
		trend = append(trend, dto.EnrollmentPoint{
			Month:   p.Anchor.Format("2006-01"),
			English: p.English,
			Math:    p.Math,
			Total:   p.Total(),
		})
	}

	return &dto.DashboardSummaryResponse{
		TotalStudents:   total,
		EnglishStudents: english,
		MathStudents:    math,
		TodayAttendance: dto.AttendanceSummary{
			Present: counts[model.AttendancePresent],
			Late:    counts[model.AttendanceLate],
			Absent:  counts[model.AttendanceAbsent],
		},
		EnrollmentTrend: trend,
		NoticeCount:     len(notices),
		LatestNotices:   preview,
	}, nil
}
