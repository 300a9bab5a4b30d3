package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// MemoHandler 개인 메모 HTTP 처리기
type MemoHandler struct {
	memoSvc service.MemoService
}

// NewMemoHandler MemoHandler 생성
func NewMemoHandler(memoSvc service.MemoService) *MemoHandler {
	return &MemoHandler{memoSvc: memoSvc}
}

// writeMemoError 메모 모듈 공통 오류 매핑
func writeMemoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemoNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, service.ErrMemoPermission):
		response.Forbidden(c, 16002, err.Error())
	default:
		response.InternalError(c)
	}
}

// Create 메모 생성 (색상은 서버가 순환 배정)
// POST /api/v1/memos
func (h *MemoHandler) Create(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}

	var req dto.CreateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.memoSvc.Create(c.Request.Context(), uid, &req)
	if err != nil {
		writeMemoError(c, err)
		return
	}
	response.Created(c, result)
}

// List 본인 메모 목록
// GET /api/v1/memos
func (h *MemoHandler) List(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}

	result, err := h.memoSvc.List(c.Request.Context(), uid)
	if err != nil {
		writeMemoError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 메모 수정 (본인만, 색상 유지)
// PATCH /api/v1/memos/:id
func (h *MemoHandler) Update(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}

	var req dto.UpdateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.memoSvc.Update(c.Request.Context(), c.Param("id"), uid, &req)
	if err != nil {
		writeMemoError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 메모 삭제 (본인만)
// DELETE /api/v1/memos/:id
func (h *MemoHandler) Delete(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}

	if err := h.memoSvc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		writeMemoError(c, err)
		return
	}
	response.OK(c, nil)
}
