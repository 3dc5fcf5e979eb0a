package theme

import (
	"testing"

	"website/models"
)

func TestGetHotArticles(t *testing.T) {
	articles := []models.ArticleModel{
		{MODEL: models.MODEL{ID: "a1"}, Reads: 5},
		{MODEL: models.MODEL{ID: "a2"}, Reads: 9},
		{MODEL: models.MODEL{ID: "a3"}, Reads: 1},
		{MODEL: models.MODEL{ID: "a4"}, Reads: 9},
		{MODEL: models.MODEL{ID: "a5"}, Reads: 3},
	}

	hot := getHotArticles(articles)
	if len(hot) != 3 {
		t.Fatalf("热门文章数 = %d, 期望 3", len(hot))
	}
	want := []int64{9, 9, 5}
	for i := range want {
		if hot[i].Reads != want[i] {
			t.Fatalf("hot[%d].Reads = %d, 期望 %d", i, hot[i].Reads, want[i])
		}
	}
	// 原列表顺序不受影响
	if articles[0].ID != "a1" || articles[0].Reads != 5 {
		t.Fatalf("原列表被修改: %+v", articles[0])
	}
}

func TestGetHotArticlesFewerThanThree(t *testing.T) {
	articles := []models.ArticleModel{
		{MODEL: models.MODEL{ID: "a1"}, Reads: 2},
		{MODEL: models.MODEL{ID: "a2"}, Reads: 7},
	}

	hot := getHotArticles(articles)
	if len(hot) != 2 {
		t.Fatalf("热门文章数 = %d, 期望 2", len(hot))
	}
	if hot[0].ID != "a2" || hot[1].ID != "a1" {
		t.Fatalf("热门排序 = [%s %s]", hot[0].ID, hot[1].ID)
	}
}

func TestGetHotArticlesEmpty(t *testing.T) {
	if hot := getHotArticles(nil); len(hot) != 0 {
		t.Fatalf("空列表热门文章数 = %d", len(hot))
	}
}
