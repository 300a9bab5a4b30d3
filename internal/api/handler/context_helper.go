package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// MustGetUID Gin 컨텍스트에서 uid 를 안전하게 꺼낸다.
// JWT 미들웨어가 주입하지 않았으면 401 응답을 쓰고 false 를 반환한다.
// 호출자는 ok=false 면 바로 return 해야 한다.
func MustGetUID(c *gin.Context) (string, bool) {
	v, exists := c.Get("uid")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}

// MustGetUsername Gin 컨텍스트에서 username 을 안전하게 꺼낸다.
func MustGetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get("username")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}

// GetIsAdmin Gin 컨텍스트에서 관리자 여부를 꺼낸다 (미주입 시 false)
func GetIsAdmin(c *gin.Context) bool {
	v, exists := c.Get("is_admin")
	if !exists {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
