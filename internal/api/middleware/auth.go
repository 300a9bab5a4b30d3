package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sdasasqkim/edu-admin/pkg/jwt"
	"github.com/sdasasqkim/edu-admin/pkg/redis"
	"github.com/sdasasqkim/edu-admin/pkg/response"
)

// JWTAuth JWT 인증 미들웨어
// Authorization: Bearer <token> 에서 Access Token을 추출·검증하고
// uid / username / is_admin 을 컨텍스트에 주입한다.
// rdb가 nil이면 블랙리스트 확인 없이 통과시킨다 (Redis 없는 개발 환경 지원)
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Token이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		if claims.TokenType != jwt.TokenTypeAccess {
			response.Unauthorized(c, 10002, "Token 종류가 올바르지 않습니다")
			c.Abort()
			return
		}

		// 로그아웃된 토큰인지 확인. Redis 오류 시에는 통과시킨다
		if rdb != nil {
			if revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && revoked {
				response.Unauthorized(c, 10002, "로그아웃된 Token입니다")
				c.Abort()
				return
			}
		}

		c.Set("uid", claims.UID)
		c.Set("username", claims.Username)
		c.Set("is_admin", claims.IsAdmin)

		c.Next()
	}
}

// AdminOnly 관리자 전용 미들웨어
// JWTAuth 뒤에 붙어 is_admin 클레임을 검사한다
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			response.Unauthorized(c, 10002, "인증되지 않았습니다")
			c.Abort()
			return
		}

		if admin, ok := isAdmin.(bool); !ok || !admin {
			response.Forbidden(c, 10003, "관리자 권한이 필요합니다")
			c.Abort()
			return
		}

		c.Next()
	}
}
