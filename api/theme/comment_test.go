package theme

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"website/global"
	"website/middleware"
	"website/models"
	"website/models/ctypes"

	"github.com/gin-gonic/gin"
)

func newCommentContext(t *testing.T, path, id, content string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader("content="+content))
	if err != nil {
		t.Fatalf("构造请求失败: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c, w
}

func TestArticleCommentGuestForbidden(t *testing.T) {
	setupTestEnv(t)

	var api Theme
	c, w := newCommentContext(t, "/article/a1/comment", "a1", "想评论")
	api.ArticleComment(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("状态码 = %d, 期望 403", w.Code)
	}
}

func TestArticleCommentPersists(t *testing.T) {
	setupTestEnv(t)

	article := models.ArticleModel{
		MODEL:     models.MODEL{ID: "a1"},
		Title:     "一篇文章",
		PublishAt: ctypes.MyTime(time.Now().Add(-time.Hour)),
	}
	if err := global.DB.Create(&article).Error; err != nil {
		t.Fatalf("写入文章失败: %v", err)
	}

	var api Theme
	c, w := newCommentContext(t, "/article/a1/comment", "a1", "写得不错")
	middleware.SetCurrentUser(c, &ctypes.SessionUser{ID: "u1", Name: "张三", Role: ctypes.RoleUser})
	api.ArticleComment(c)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 响应 = %s", w.Code, w.Body.String())
	}

	comments, err := models.GetCommentsByRef("a1")
	if err != nil {
		t.Fatalf("GetCommentsByRef() error = %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "写得不错" {
		t.Fatalf("落库评论 = %+v", comments)
	}
}

func TestArticleCommentMalformedBody(t *testing.T) {
	setupTestEnv(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/article/a1/comment", strings.NewReader("{不是JSON"))
	if err != nil {
		t.Fatalf("构造请求失败: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "a1"}}
	middleware.SetCurrentUser(c, &ctypes.SessionUser{ID: "u1", Name: "张三", Role: ctypes.RoleUser})

	var api Theme
	api.ArticleComment(c)

	// 参数解析失败按客户端错误处理，不能是200加错误包
	if w.Code != http.StatusBadRequest {
		t.Fatalf("状态码 = %d, 期望 400", w.Code)
	}
}
