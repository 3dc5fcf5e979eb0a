package router

import (
	"website/api"
)

func (router RouterGroup) ThemeRouter() {
	app := api.AppGroupApp.ThemeApi

	router.GET("/", app.Home)
	router.GET("/category/:id", app.Category)
	router.GET("/article/:id", app.Article)
	router.POST("/article/:id/comment", app.ArticleComment)

	router.GET("/wiki/:id", app.Wiki)
	router.GET("/wiki/:id/:pid", app.WikiPage)
	router.GET("/wikipage/:id", app.WikiPageRedirect)
	router.POST("/wiki/:id/comment", app.WikiComment)
	router.POST("/wikipage/:id/comment", app.WikiPageComment)

	router.GET("/discuss", app.Boards)
	router.GET("/discuss/:bid", app.Board)
	router.GET("/discuss/:bid/topics/create", app.TopicForm)
	router.GET("/discuss/:bid/:tid", app.Topic)
	router.GET("/discuss/topics/:tid/find/:rid", app.ReplyRedirect)

	router.GET("/page/:alias", app.Page)
	router.GET("/user/:id", app.User)
	router.GET("/search", app.Search)
}
