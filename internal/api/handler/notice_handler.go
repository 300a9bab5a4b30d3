package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// NoticeHandler 공지사항 HTTP 처리기
type NoticeHandler struct {
	noticeSvc service.NoticeService
}

// NewNoticeHandler NoticeHandler 생성
func NewNoticeHandler(noticeSvc service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeSvc: noticeSvc}
}

// Create 공지 작성 — 작성자는 토큰의 본인 정보
// POST /api/v1/notices
func (h *NoticeHandler) Create(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}
	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.noticeSvc.Create(c.Request.Context(), uid, username, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// List 공지 목록 (최신순)
// GET /api/v1/notices
func (h *NoticeHandler) List(c *gin.Context) {
	result, err := h.noticeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete 공지 삭제 — 관리자 또는 작성자 본인만
// DELETE /api/v1/notices/:id
func (h *NoticeHandler) Delete(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}

	err := h.noticeSvc.Delete(c.Request.Context(), c.Param("id"), uid, GetIsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoticeNotFound):
			response.NotFound(c, 15001, err.Error())
		case errors.Is(err, service.ErrNoticePermission):
			response.Forbidden(c, 15002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
