package corn_ser

import (
	"context"
	"strconv"

	"website/global"
	"website/models"
	"website/pkg/cache"

	"go.uber.org/zap"
)

// SyncReadCounts 把Redis阅读计数回写到数据库
// 计数服务始终是阅读数的权威来源，这里只是让持久化的近似值跟上，
// 供备份和不经过计数服务的报表使用
func SyncReadCounts() {
	ctx := context.Background()
	iter := global.Redis.Scan(ctx, 0, cache.CountKeyPrefix+"*", 0).Iterator()

	synced := 0
	for iter.Next(ctx) {
		key := iter.Val()
		id := cache.IDFromCountKey(key)
		if id == "" {
			continue
		}

		val, err := global.Redis.Get(ctx, key).Result()
		if err != nil {
			global.Log.Error("读取阅读计数失败",
				zap.String("key", key),
				zap.String("error", err.Error()),
			)
			continue
		}
		count, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}

		if syncOne(id, count) {
			synced++
		}
	}
	if err := iter.Err(); err != nil {
		global.Log.Error("遍历计数键失败", zap.String("error", err.Error()))
		return
	}
	if synced > 0 {
		global.Log.Info("阅读计数回写完成", zap.Int("synced", synced))
	}
}

// syncOne 计数键不区分实体类别，依次尝试三张表
func syncOne(id string, count int64) bool {
	tables := []interface{}{
		&models.ArticleModel{},
		&models.WikiModel{},
		&models.WikiPageModel{},
	}
	for _, table := range tables {
		result := global.DB.Model(table).
			Where("id = ?", id).
			Update("reads_sync", count)
		if result.Error != nil {
			global.Log.Error("回写阅读计数失败",
				zap.String("id", id),
				zap.String("error", result.Error.Error()),
			)
			return false
		}
		if result.RowsAffected > 0 {
			return true
		}
	}
	return false
}
