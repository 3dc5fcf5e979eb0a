package router

import (
	"net/http"
	"path/filepath"

	"website/core"
	"website/global"
	"website/middleware"
	"website/utils"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.Engine
}

func InitRouter() *gin.Engine {
	//设置gin模式
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	router.Use(utils.Cors())
	// 所有主题页面都带上会话身份
	router.Use(middleware.Session())
	// 加载主题模板
	if global.Config.Theme.Glob != "" {
		router.LoadHTMLGlob(global.Config.Theme.Glob)
	}
	// 主题静态资源
	router.StaticFS("static", http.Dir(filepath.Join(global.Config.Theme.Path, "static")))

	routerGroupApp := RouterGroup{router}
	routerGroupApp.ThemeRouter()
	return router
}
