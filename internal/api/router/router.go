package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdasasqkim/edu-admin/config"
	"github.com/sdasasqkim/edu-admin/internal/api/handler"
	"github.com/sdasasqkim/edu-admin/internal/api/middleware"
	"github.com/sdasasqkim/edu-admin/pkg/jwt"
	"github.com/sdasasqkim/edu-admin/pkg/redis"
)

// 로그인 속도 제한: IP당 1분에 10회
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// maxBodyBytes 요청 본문 최대 크기 (레거시 일괄 가져오기 포함 여유분)
const maxBodyBytes = 4 << 20

// Setup Gin 라우터 엔진을 초기화해 반환한다
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 헬스체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (인증 불필요)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 인증이 필요한 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 학생 모듈 (출결·시간표 포함)
			students := authorized.Group("/students")
			{
				students.GET("", h.Student.List)
				students.POST("", h.Student.Create)
				students.GET("/:id", h.Student.Get)
				students.PATCH("/:id", h.Student.Update)
				students.DELETE("/:id", h.Student.Delete)
				students.PUT("/:id/schedule", h.Student.UpdateSchedule)
				students.PUT("/:id/attendance", h.Attendance.Mark)
				students.GET("/:id/attendance", h.Attendance.GetByStudent)
				students.POST("/import-legacy", middleware.AdminOnly(), h.Student.ImportLegacy)
			}

			// 일일 출결 현황
			authorized.GET("/attendance", h.Attendance.Daily)

			// 시간표 격자 모듈
			timetable := authorized.Group("/timetable")
			{
				timetable.GET("", h.Timetable.GetGrid)
				timetable.GET("/overview", h.Timetable.Overview)
				timetable.GET("/cell", h.Timetable.GetCell)
			}

			// 대시보드 모듈
			authorized.GET("/dashboard/summary", h.Dashboard.Summary)

			// 공지사항 모듈
			notices := authorized.Group("/notices")
			{
				notices.GET("", h.Notice.List)
				notices.POST("", h.Notice.Create)
				notices.DELETE("/:id", h.Notice.Delete) // 관리자 또는 작성자 (Service 층에서 판정)
			}

			// 개인 메모 모듈
			memos := authorized.Group("/memos")
			{
				memos.GET("", h.Memo.List)
				memos.POST("", h.Memo.Create)
				memos.PATCH("/:id", h.Memo.Update)
				memos.DELETE("/:id", h.Memo.Delete)
			}

			// 교직원/권한 관리 모듈
			staff := authorized.Group("/staff")
			{
				staff.GET("/me", h.Staff.Me)
				staff.GET("", middleware.AdminOnly(), h.Staff.List)
				staff.PUT("/:uid/admin", middleware.AdminOnly(), h.Staff.SetAdmin)
				staff.PUT("/:uid/login", middleware.AdminOnly(), h.Staff.SetAllowLogin)
			}

			// 내보내기 모듈
			export := authorized.Group("/export")
			{
				export.GET("/roster", h.Export.Roster)
				export.GET("/attendance", h.Export.Attendance)
				export.GET("/students/:id/schedule.ics", h.Export.StudentSchedule)
			}
		}
	}

	return r
}
