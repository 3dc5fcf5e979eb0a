package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// CountKeyPrefix 阅读计数键前缀
const CountKeyPrefix = "count:"

// CountKey 拼接实体的阅读计数键
func CountKey(id string) string {
	return CountKeyPrefix + id
}

// IDFromCountKey 从计数键中还原实体ID，非计数键返回空串
func IDFromCountKey(key string) string {
	if !strings.HasPrefix(key, CountKeyPrefix) {
		return ""
	}
	return strings.TrimPrefix(key, CountKeyPrefix)
}

// Incr 原子递增实体阅读计数并返回递增后的值
// INCR是Redis的单个原子操作，并发浏览同一实体不会丢失计数
func (s *Store) Incr(ctx context.Context, id string) (int64, error) {
	n, err := s.rdb.Incr(ctx, CountKey(id)).Result()
	if err != nil {
		return 0, fmt.Errorf("递增阅读计数失败: %w", err)
	}
	return n, nil
}

// Counts 批量读取阅读计数，结果与ids按下标一一对应
// 没有计数记录的实体读作0，单个缺失不会导致整批失败
func (s *Store) Counts(ctx context.Context, ids []string) ([]int64, error) {
	counts := make([]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = CountKey(id)
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("批量读取阅读计数失败: %w", err)
	}

	// MGET保证返回值与键的顺序一致，缺失的键返回nil
	for i, val := range vals {
		if val == nil {
			continue
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			continue
		}
		counts[i] = n
	}
	return counts, nil
}
