package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// AttendanceHandler 출결 모듈 HTTP 처리기
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler AttendanceHandler 생성
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Mark 출결 기록 — 같은 날짜 재기록은 덮어쓴다
// PUT /api/v1/students/:id/attendance
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	err := h.attendanceSvc.Mark(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 12001, err.Error())
		case errors.Is(err, service.ErrInvalidAttendanceStatus),
			errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 13001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// Daily 일일 출결 현황 조회 (학교/학년/과목 필터)
// GET /api/v1/attendance?date=&school=&grade=&subject=
func (h *AttendanceHandler) Daily(c *gin.Context) {
	var req dto.DailyAttendanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.attendanceSvc.DailyView(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, 13001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetByStudent 학생 출결 이력 조회
// GET /api/v1/students/:id/attendance?from=&to=
func (h *AttendanceHandler) GetByStudent(c *gin.Context) {
	var req dto.AttendanceQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.attendanceSvc.GetByStudent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 12001, err.Error())
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 13001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
