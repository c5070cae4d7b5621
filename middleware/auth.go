package middleware

import (
	"net/http"
	"strings"

	"smarttech/config"
	ctx "smarttech/pkg/context"
	"smarttech/pkg/jwt"
	"smarttech/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验JWT并注入用户信息
func Auth(conf *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少认证信息")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "认证格式错误")
			return
		}

		claims, err := jwt.ParseToken(parts[1], conf.Jwt.Secret)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "无效的token")
			return
		}

		c.Set(ctx.CtxUserEmail, claims.Email)
		c.Set(ctx.CtxUserName, claims.Name)
		c.Set(ctx.CtxUserRole, claims.Role)
		c.Next()
	}
}

// CartIdentity 购物车身份：登录用户走token，游客用 X-Guest-Key 维持匿名购物车
func CartIdentity(conf *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Abort(c, http.StatusUnauthorized, "认证格式错误")
				return
			}
			claims, err := jwt.ParseToken(parts[1], conf.Jwt.Secret)
			if err != nil {
				response.Abort(c, http.StatusUnauthorized, "无效的token")
				return
			}
			c.Set(ctx.CtxUserEmail, claims.Email)
			c.Set(ctx.CtxUserName, claims.Name)
			c.Set(ctx.CtxUserRole, claims.Role)
			c.Next()
			return
		}

		guestKey := c.GetHeader("X-Guest-Key")
		if guestKey == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少认证信息")
			return
		}
		c.Set(ctx.CtxUserEmail, "guest:"+guestKey)
		c.Next()
	}
}

// AdminOnly 管理员校验，必须在Auth之后
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ctx.CtxUserRole)
		if role != jwt.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "无权限访问")
			return
		}
		c.Next()
	}
}
