package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// ExportHandler 내보내기 HTTP 처리기
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeAttachment 파일 다운로드 응답 작성 (파일명은 RFC 5987 인코딩)
func writeAttachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, contentType, data)
}

// Roster 학생 명부 Excel 내보내기
// GET /api/v1/export/roster
func (h *ExportHandler) Roster(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoStudents) {
			response.NotFound(c, 18001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	writeAttachment(c, xlsxContentType, filename, buf.Bytes())
}

// Attendance 기간 출결 Excel 내보내기
// GET /api/v1/export/attendance?from=&to=
func (h *ExportHandler) Attendance(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.BadRequest(c, 10001, "from 날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		response.BadRequest(c, 10001, "to 날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		return
	}
	if to.Before(from) {
		response.BadRequest(c, 18002, "to는 from보다 빠를 수 없습니다")
		return
	}

	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrExportNoStudents) {
			response.NotFound(c, 18001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	writeAttachment(c, xlsxContentType, filename, buf.Bytes())
}

// StudentSchedule 학생 주간 시간표 iCalendar 내보내기
// GET /api/v1/export/students/:id/schedule.ics
func (h *ExportHandler) StudentSchedule(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportStudentSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 12001, err.Error())
		case errors.Is(err, service.ErrExportNoSchedule):
			response.NotFound(c, 18003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	writeAttachment(c, "text/calendar; charset=utf-8", filename, buf.Bytes())
}
