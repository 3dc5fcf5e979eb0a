package comment_ser

import (
	"testing"
	"time"

	"website/config"
	"website/global"
	"website/models"
	"website/models/ctypes"
	"website/models/res"
	"website/pkg/cache"
	"website/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestEnv(t *testing.T) {
	t.Helper()

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
		&models.ArticleModel{},
		&models.WikiModel{},
		&models.WikiPageModel{},
		&models.CommentModel{},
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
}

func TestFormatContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"普通内容", "写得不错", "写得不错"},
		{"压缩连续换行", "第一行\n\n\n第二行", "第一行\n第二行"},
		{"去掉script标签", "hello <script>alert(1)</script> world", "hello alert(1) world"},
		{"大小写混合的script", "a<SCRIPT>b</ScRiPt>c", "abc"},
		{"掐头去尾", "  留下来  ", "留下来"},
		{"只有空白", "  \n\n\n  ", ""},
		{"空串", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatContent(tt.in); got != tt.want {
				t.Fatalf("FormatContent(%q) = %q, 期望 %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateGuestDenied(t *testing.T) {
	setupTestEnv(t)

	for _, user := range []*ctypes.SessionUser{
		nil,
		{ID: "u1", Role: ctypes.RoleGuest},
		{ID: "u1"},
	} {
		_, err := Create(user, models.RefArticle, "a1", "想评论", "example.com")
		var e *res.Err
		if !asErr(err, &e) || e.Code != res.PermissionDenied {
			t.Fatalf("Create() 访客 error = %v, 期望权限错误", err)
		}
	}

	var count int64
	global.DB.Model(&models.CommentModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("访客评论不应落库, 行数 = %d", count)
	}
}

func TestCreateEmptyAfterFormat(t *testing.T) {
	setupTestEnv(t)

	user := &ctypes.SessionUser{ID: "u1", Name: "张三", Role: ctypes.RoleUser}
	_, err := Create(user, models.RefArticle, "a1", "  \n\n  ", "example.com")
	var e *res.Err
	if !asErr(err, &e) || e.Code != res.InvalidParameter || e.Field != "content" {
		t.Fatalf("Create() 空内容 error = %v", err)
	}
}

func TestCreateUnknownRef(t *testing.T) {
	setupTestEnv(t)

	user := &ctypes.SessionUser{ID: "u1", Name: "张三", Role: ctypes.RoleUser}

	// 目标实体不存在
	_, err := Create(user, models.RefArticle, "missing", "评论", "example.com")
	if !res.IsNotFound(err) {
		t.Fatalf("Create() 目标不存在 error = %v", err)
	}

	// 目标类型不认识
	_, err = Create(user, models.CommentRefType("video"), "a1", "评论", "example.com")
	var e *res.Err
	if !asErr(err, &e) || e.Code != res.InvalidParameter {
		t.Fatalf("Create() 未知类型 error = %v", err)
	}

	var count int64
	global.DB.Model(&models.CommentModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("失败的提交不应落库, 行数 = %d", count)
	}
}

func TestCreatePersists(t *testing.T) {
	setupTestEnv(t)

	article := models.ArticleModel{
		Title:     "一篇文章",
		PublishAt: ctypes.MyTime(time.Now().Add(-time.Hour)),
	}
	if err := global.DB.Create(&article).Error; err != nil {
		t.Fatalf("写入文章失败: %v", err)
	}

	user := &ctypes.SessionUser{ID: "u1", Name: "张三", Role: ctypes.RoleUser}
	comment, err := Create(user, models.RefArticle, article.ID, "写得不错\n\n\n顶一个", "example.com")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if comment.ID == "" {
		t.Fatal("评论未生成ID")
	}
	if comment.Content != "写得不错\n顶一个" {
		t.Fatalf("落库内容 = %q", comment.Content)
	}
	if comment.UserName != "张三" {
		t.Fatalf("落库用户名 = %q", comment.UserName)
	}

	got, err := models.GetCommentsByRef(article.ID)
	if err != nil {
		t.Fatalf("GetCommentsByRef() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != comment.ID {
		t.Fatalf("评论查询结果 = %+v", got)
	}
}

func asErr(err error, target **res.Err) bool {
	e, ok := err.(*res.Err)
	if !ok {
		return false
	}
	*target = e
	return true
}
