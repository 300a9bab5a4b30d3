package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// TimetableHandler 시간표 격자 HTTP 처리기
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler TimetableHandler 생성
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// GetGrid 요일×시간 전체 격자 조회
// GET /api/v1/timetable?mode=&date=
func (h *TimetableHandler) GetGrid(c *gin.Context) {
	var req dto.TimetableQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.timetableSvc.BuildGrid(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidViewMode),
			errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 14001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// Overview 영어·수학 합산 인원수 격자 조회
// GET /api/v1/timetable/overview?date=
func (h *TimetableHandler) Overview(c *gin.Context) {
	result, err := h.timetableSvc.Overview(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, 14001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetCell 칸 하나의 상세 점유 목록
// GET /api/v1/timetable/cell?mode=&day=&hour=&date=
func (h *TimetableHandler) GetCell(c *gin.Context) {
	hour, err := strconv.Atoi(c.Query("hour"))
	if err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.timetableSvc.GetCell(
		c.Request.Context(),
		c.Query("mode"), c.Query("day"), hour, c.Query("date"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidViewMode),
			errors.Is(err, service.ErrInvalidCell),
			errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 14001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
