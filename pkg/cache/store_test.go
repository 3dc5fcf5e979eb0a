package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb), mr
}

type testSettings struct {
	Name string `json:"name"`
	Icp  string `json:"icp"`
}

func TestGetJSONComputeOnMiss(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	var calls int32
	compute := func(ctx context.Context) (testSettings, error) {
		atomic.AddInt32(&calls, 1)
		return testSettings{Name: "示例站点", Icp: "京ICP备0000001号"}, nil
	}

	got, err := GetJSON(ctx, store, KeyWebsiteSettings, compute)
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got.Name != "示例站点" {
		t.Fatalf("GetJSON() = %+v", got)
	}
	if !mr.Exists(KeyWebsiteSettings) {
		t.Fatal("未命中计算后应当写回缓存")
	}

	// 第二次读取走缓存，不再计算
	got, err = GetJSON(ctx, store, KeyWebsiteSettings, compute)
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got.Icp != "京ICP备0000001号" {
		t.Fatalf("GetJSON() = %+v", got)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("计算函数调用了 %d 次, 期望 1 次", n)
	}
}

func TestGetJSONComputeErrorNotCached(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	wantErr := errors.New("数据库不可用")
	var calls int32
	failing := func(ctx context.Context) (testSettings, error) {
		atomic.AddInt32(&calls, 1)
		return testSettings{}, wantErr
	}

	if _, err := GetJSON(ctx, store, KeyWebsiteSettings, failing); !errors.Is(err, wantErr) {
		t.Fatalf("GetJSON() error = %v, 期望 %v", err, wantErr)
	}
	if mr.Exists(KeyWebsiteSettings) {
		t.Fatal("计算失败不应写缓存")
	}

	// 失败不应污染缓存，下一次调用重新计算
	if _, err := GetJSON(ctx, store, KeyWebsiteSettings, failing); !errors.Is(err, wantErr) {
		t.Fatalf("GetJSON() error = %v, 期望 %v", err, wantErr)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("计算函数调用了 %d 次, 期望 2 次", n)
	}
}

func TestGetJSONSingleFlight(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	compute := func(ctx context.Context) (testSettings, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return testSettings{Name: "示例站点"}, nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]testSettings, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = GetJSON(ctx, store, KeyWebsiteSettings, compute)
		}(i)
	}
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("GetJSON() error = %v", errs[i])
		}
		if results[i].Name != "示例站点" {
			t.Fatalf("GetJSON() = %+v", results[i])
		}
	}
	// 单飞允许极端调度下出现少量重复计算，但绝不应是每个请求各算一次
	if n := atomic.LoadInt32(&calls); n >= workers {
		t.Fatalf("并发未命中计算了 %d 次", n)
	}
}

func TestGetJSONCorruptEntryRecomputed(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set(KeyWebsiteSettings, "{not-json")

	got, err := GetJSON(ctx, store, KeyWebsiteSettings, func(ctx context.Context) (testSettings, error) {
		return testSettings{Name: "修复后"}, nil
	})
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got.Name != "修复后" {
		t.Fatalf("GetJSON() = %+v", got)
	}
}

func TestInvalidate(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set(KeyWebsiteSettings, `{"name":"old"}`)
	mr.Set(KeyNavigations, `[]`)

	if err := store.Invalidate(ctx, KeyWebsiteSettings, KeyNavigations); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if mr.Exists(KeyWebsiteSettings) || mr.Exists(KeyNavigations) {
		t.Fatal("Invalidate() 后缓存条目仍然存在")
	}

	if err := store.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate() 空键列表 error = %v", err)
	}
}
