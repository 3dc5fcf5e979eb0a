package models

import (
	"testing"

	"website/global"
	"website/pkg/cache"
	"website/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestEnv 用内存数据库和内存redis替换全局依赖，测试之间互不串数据
func setupTestEnv(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	global.Log = zap.NewNop().Sugar()
	utils.Init("2024-01-01", 1)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	err = db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&ArticleModel{},
		&WikiModel{},
		&WikiPageModel{},
		&BoardModel{},
		&TopicModel{},
		&ReplyModel{},
		&CommentModel{},
		&PageModel{},
		&NavigationModel{},
		&SettingModel{},
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
