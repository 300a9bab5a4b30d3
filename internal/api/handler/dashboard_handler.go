package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// DashboardHandler 대시보드 HTTP 처리기
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler DashboardHandler 생성
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Summary 대시보드 요약 (재원생 수 + 당일 출결 + 월별 추이)
// GET /api/v1/dashboard/summary?date=
func (h *DashboardHandler) Summary(c *gin.Context) {
	ref := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			response.BadRequest(c, 10001, "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
			return
		}
		ref = parsed
	}

	result, err := h.dashboardSvc.Summary(c.Request.Context(), ref)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
