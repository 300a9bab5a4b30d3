package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/internal/dto"
	"github.com/sdasasqkim/edu-admin/internal/service"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// StudentHandler 학생 명부 HTTP 처리기
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler StudentHandler 생성
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// writeStudentError 학생 모듈 공통 오류 매핑
func writeStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrInvalidSlotKey),
		errors.Is(err, service.ErrInvalidSlotRange),
		errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 12002, err.Error())
	default:
		response.InternalError(c)
	}
}

// Create 학생 등록
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeStudentError(c, err)
		return
	}
	response.Created(c, result)
}

// Get 학생 단건 조회
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	result, err := h.studentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// List 학생 목록 조회 (시간표 포함)
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	result, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		writeStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 학생 필드 단위 수정
// PATCH /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// UpdateSchedule 학생 시간표 전체 교체
// PUT /api/v1/students/:id/schedule
func (h *StudentHandler) UpdateSchedule(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.studentSvc.UpdateSchedule(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 학생 삭제
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeStudentError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportLegacy 구 문서 저장소 학생 문서 일괄 가져오기 (관리자 전용)
// POST /api/v1/students/import-legacy
func (h *StudentHandler) ImportLegacy(c *gin.Context) {
	var req dto.ImportLegacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.studentSvc.ImportLegacy(c.Request.Context(), &req)
	if err != nil {
		writeStudentError(c, err)
		return
	}
	response.Created(c, result)
}
