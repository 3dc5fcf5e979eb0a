package theme

import (
	"fmt"
	"net/http"
	"testing"

	"website/global"
	"website/models"

	"github.com/gin-gonic/gin"
)

func TestTopicBoardMismatch(t *testing.T) {
	setupTestEnv(t)

	boards := []models.BoardModel{
		{MODEL: models.MODEL{ID: "b1"}, Name: "水区"},
		{MODEL: models.MODEL{ID: "b2"}, Name: "技术区"},
	}
	if err := global.DB.Create(&boards).Error; err != nil {
		t.Fatalf("写入板块失败: %v", err)
	}
	topic := models.TopicModel{
		MODEL:   models.MODEL{ID: "t1"},
		BoardID: "b1",
		UserID:  "u1",
		Title:   "一个主题",
	}
	if err := global.DB.Create(&topic).Error; err != nil {
		t.Fatalf("写入主题失败: %v", err)
	}

	var api Theme
	c, w := newTestContext(t, "/discuss/b2/t1", gin.Params{
		{Key: "bid", Value: "b2"},
		{Key: "tid", Value: "t1"},
	})
	api.Topic(c)

	// 用别的板块ID拼路径读不到这个主题
	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, 期望 404", w.Code)
	}
}

func TestBoardNotFound(t *testing.T) {
	setupTestEnv(t)

	var api Theme
	c, w := newTestContext(t, "/discuss/missing", gin.Params{{Key: "bid", Value: "missing"}})
	api.Board(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, 期望 404", w.Code)
	}
}

func TestReplyRedirect(t *testing.T) {
	setupTestEnv(t)

	topic := models.TopicModel{
		MODEL:   models.MODEL{ID: "t1"},
		BoardID: "b1",
		UserID:  "u1",
		Title:   "一个主题",
	}
	if err := global.DB.Create(&topic).Error; err != nil {
		t.Fatalf("写入主题失败: %v", err)
	}
	var replies []models.ReplyModel
	for i := 1; i <= 13; i++ {
		replies = append(replies, models.ReplyModel{
			MODEL:   models.MODEL{ID: fmt.Sprintf("r%02d", i)},
			TopicID: "t1",
			UserID:  "u1",
			Content: "回复",
		})
	}
	if err := global.DB.Create(&replies).Error; err != nil {
		t.Fatalf("写入回复失败: %v", err)
	}

	var api Theme
	// 第13条回复在每页10条下落在第2页
	c, w := newTestContext(t, "/discuss/topics/t1/find/r13", gin.Params{
		{Key: "tid", Value: "t1"},
		{Key: "rid", Value: "r13"},
	})
	api.ReplyRedirect(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("状态码 = %d, 期望 301", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/discuss/b1/t1?page=2" {
		t.Fatalf("Location = %q", loc)
	}

	// 第1条回复落在第1页
	c, w = newTestContext(t, "/discuss/topics/t1/find/r01", gin.Params{
		{Key: "tid", Value: "t1"},
		{Key: "rid", Value: "r01"},
	})
	api.ReplyRedirect(c)
	c.Writer.WriteHeaderNow()

	if loc := w.Header().Get("Location"); loc != "/discuss/b1/t1?page=1" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestReplyRedirectTopicMismatch(t *testing.T) {
	setupTestEnv(t)

	reply := models.ReplyModel{
		MODEL:   models.MODEL{ID: "r1"},
		TopicID: "t1",
		UserID:  "u1",
		Content: "回复",
	}
	if err := global.DB.Create(&reply).Error; err != nil {
		t.Fatalf("写入回复失败: %v", err)
	}

	var api Theme
	// 用别的主题ID拼路径读不到这条回复
	c, w := newTestContext(t, "/discuss/topics/t2/find/r1", gin.Params{
		{Key: "tid", Value: "t2"},
		{Key: "rid", Value: "r1"},
	})
	api.ReplyRedirect(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, 期望 404", w.Code)
	}
}
