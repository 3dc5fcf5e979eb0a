package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"website/config"
	"website/global"
	"website/models"
	"website/pkg/cache"
	"website/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestEnv(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	gin.SetMode(gin.TestMode)

	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{}
	utils.Init("2024-01-01", 1)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	err = db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ArticleModel{},
		&models.WikiModel{},
		&models.WikiPageModel{},
		&models.BoardModel{},
		&models.TopicModel{},
		&models.ReplyModel{},
		&models.CommentModel{},
		&models.PageModel{},
		&models.NavigationModel{},
		&models.SettingModel{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	global.DB = db

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	global.Redis = rdb
	global.Cache = cache.NewStore(rdb)
	return mr
}

// newTestContext 构造一个带GET请求的测试上下文
func newTestContext(t *testing.T, path string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("构造请求失败: %v", err)
	}
	c.Request = req
	c.Params = params
	return c, w
}
