package theme_ser

import (
	"context"
	"net/http"
	"time"

	"website/global"
	"website/middleware"
	"website/models"
	"website/pkg/cache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 站点设置的编译期默认值，持久化缺失的键回退到这里，保证页面不渲染空白
var defaultWebsiteSettings = map[string]string{
	"name":          "我的网站",
	"description":   "",
	"keywords":      "",
	"custom_header": "",
	"custom_footer": "",
	"timezone":      "Asia/Shanghai",
}

// Settings 站点设置，旁路缓存加载，持久化键覆盖默认值
func Settings(ctx context.Context) (map[string]string, error) {
	return cache.GetJSON(ctx, global.Cache, cache.KeyWebsiteSettings, func(ctx context.Context) (map[string]string, error) {
		return models.GetSettingsByDefaults("website", defaultWebsiteSettings)
	})
}

// Navigations 导航列表，旁路缓存加载
func Navigations(ctx context.Context) ([]models.NavigationModel, error) {
	return cache.GetJSON(ctx, global.Cache, cache.KeyNavigations, func(ctx context.Context) ([]models.NavigationModel, error) {
		return models.GetNavigations()
	})
}

// Signins 已启用的第三方登录方式标识
func Signins() []string {
	signins := make([]string, 0, len(global.Config.Oauth2))
	for key := range global.Config.Oauth2 {
		signins = append(signins, key)
	}
	return signins
}

// Render 主题渲染出口，所有主题页面最终都从这里出去
// 并行加载设置与导航，两者都成功才渲染；任一失败整个渲染失败，不出半成品页面
func Render(c *gin.Context, view string, model gin.H) {
	var (
		website     map[string]string
		navigations []models.NavigationModel
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		website, err = Settings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		navigations, err = Navigations(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		global.Log.Error("加载主题上下文失败",
			zap.String("view", view),
			zap.String("error", err.Error()),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	model["__website__"] = website
	model["__navigations__"] = navigations
	model["__signins__"] = Signins()
	if user := middleware.CurrentUser(c); user != nil {
		model["__user__"] = user
	}
	model["__time__"] = time.Now().UnixMilli()
	model["__request__"] = gin.H{"host": c.Request.Host}

	c.HTML(http.StatusOK, view, model)
}
