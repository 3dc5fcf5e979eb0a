package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CacheKey 缓存键名常量
const (
	// KeyWebsiteSettings 站点设置缓存键
	KeyWebsiteSettings = "website-settings"
	// KeyNavigations 导航列表缓存键
	KeyNavigations = "navigations"
)

// Store 旁路缓存服务，包装共享的Redis后端
// 缓存条目的生命周期全部由Store管理，其他组件只持有键或计算结果，
// 更新缓存的唯一方式是整值替换或删除
type Store struct {
	rdb *redis.Client
	sf  singleflight.Group
}

// NewStore 创建缓存服务实例
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// GetJSON 旁路缓存读取
// 命中时直接反序列化返回；未命中时在单飞组内计算一次、写回并返回，
// 并发未命中同一个键只会触发一次计算；计算失败不写缓存，下次调用重新计算
func GetJSON[T any](ctx context.Context, s *Store, key string, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		// 反序列化失败按未命中处理，重新计算后整值覆盖
	} else if !errors.Is(err, redis.Nil) {
		return zero, fmt.Errorf("读取缓存失败: %w", err)
	}

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// 排队期间可能已有别的请求写入，先复查一次
		if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				return v, nil
			}
		}

		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("序列化缓存值失败: %w", err)
		}
		if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
			return nil, fmt.Errorf("写入缓存失败: %w", err)
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Invalidate 删除缓存条目，下次读取时重新计算
func (s *Store) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}
