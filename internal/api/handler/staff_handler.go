package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// StaffHandler 교직원/권한 관리 HTTP 처리기 (관리자 전용 라우트에 묶인다)
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler StaffHandler 생성
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// Me 본인 계정 정보
// GET /api/v1/staff/me
func (h *StaffHandler) Me(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}

	result, err := h.staffSvc.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.NotFound(c, 17001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// List 교직원 목록 조회 (요청자 본인 제외)
// GET /api/v1/staff?search=&admin_only=&non_admin_only=
func (h *StaffHandler) List(c *gin.Context) {
	uid, ok := MustGetUID(c)
	if !ok {
		return
	}

	var req dto.StaffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.staffSvc.List(c.Request.Context(), uid, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// SetAdmin 관리자 권한 변경 — 목표 상태를 명시적으로 받는다
// PUT /api/v1/staff/:uid/admin
func (h *StaffHandler) SetAdmin(c *gin.Context) {
	actorUID, ok := MustGetUID(c)
	if !ok {
		return
	}

	var req dto.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAdmin == nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	err := h.staffSvc.SetAdmin(c.Request.Context(), actorUID, c.Param("uid"), *req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaffNotFound):
			response.NotFound(c, 17001, err.Error())
		case errors.Is(err, service.ErrSelfDemotion):
			response.Forbidden(c, 17002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// SetAllowLogin 로그인 허용 변경
// PUT /api/v1/staff/:uid/login
func (h *StaffHandler) SetAllowLogin(c *gin.Context) {
	var req dto.SetLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AllowLogin == nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	err := h.staffSvc.SetAllowLogin(c.Request.Context(), c.Param("uid"), *req.AllowLogin)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.NotFound(c, 17001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
