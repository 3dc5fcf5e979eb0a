package middleware

import (
	"strings"

	"website/models/ctypes"
	"website/utils"

	"github.com/gin-gonic/gin"
)

const sessionUserKey = "session_user"

// Session 中间件，尝试从Authorization头解析当前用户身份
// 没有令牌或令牌无效时按访客处理，主题页面对访客照常渲染
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Request.Header.Get("Authorization")
		if strings.HasPrefix(tokenString, "Bearer ") {
			claims, err := utils.ParseToken(tokenString[7:])
			if err == nil {
				c.Set(sessionUserKey, &ctypes.SessionUser{
					ID:   claims.UserID,
					Name: claims.Name,
					Role: claims.Role,
				})
			}
		}
		c.Next()
	}
}

// CurrentUser 取出会话用户，未登录返回nil
func CurrentUser(c *gin.Context) *ctypes.SessionUser {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*ctypes.SessionUser)
	if !ok {
		return nil
	}
	return user
}

// SetCurrentUser 测试辅助，直接注入会话用户
func SetCurrentUser(c *gin.Context, user *ctypes.SessionUser) {
	c.Set(sessionUserKey, user)
}
