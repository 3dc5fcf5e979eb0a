package utils

import (
	"net/http"

	"website/global"

	"github.com/gin-gonic/gin"
)

// Cors 跨域中间件
// 配置了allowed_origins时只认配置里的来源，未配置时对所有来源放开
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin(c.Request.Header.Get("Origin")))
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		// 预检请求直接返回204
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// allowOrigin 按配置挑选回显的来源，未命中时回落到配置的第一项
func allowOrigin(origin string) string {
	allowed := global.Config.System.AllowedOrigins
	if len(allowed) == 0 {
		return "*"
	}
	for _, o := range allowed {
		if o == origin {
			return origin
		}
	}
	return allowed[0]
}
