package theme

import (
	"fmt"
	"net/http"

	"website/models"
	"website/models/res"
	"website/service/theme_ser"

	"github.com/gin-gonic/gin"
)

// Boards 讨论区板块列表
func (t *Theme) Boards(c *gin.Context) {
	boards, err := models.GetBoards()
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "discuss/boards.html", gin.H{
		"boards": boards,
	})
}

// Board 板块主题列表页
// 解析板块 -> 分页取主题 -> 批量装配发帖人 -> 渲染
func (t *Theme) Board(c *gin.Context) {
	board, err := models.GetBoard(c.Param("bid"))
	if err != nil {
		res.HandleError(c, err)
		return
	}

	page := getPage(c)
	topics, err := models.GetTopics(board.ID, page)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	bound := make([]models.UserBound, len(topics))
	for i, topic := range topics {
		bound[i] = topic
	}
	if err := models.BindUsers(bound); err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "discuss/board.html", gin.H{
		"board":  board,
		"topics": topics,
		"page":   page,
	})
}

// TopicForm 发帖页，只需要板块信息
func (t *Theme) TopicForm(c *gin.Context) {
	board, err := models.GetBoard(c.Param("bid"))
	if err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "discuss/topic_form.html", gin.H{
		"board": board,
	})
}

// Topic 主题详情页
// 解析板块 -> 解析主题 -> 校验主题属于路径里的板块 -> 分页取回复 ->
// 主题和所有回复合在一起一次性装配作者 -> 渲染
func (t *Theme) Topic(c *gin.Context) {
	boardID := c.Param("bid")

	board, err := models.GetBoard(boardID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	topic, err := models.GetTopic(c.Param("tid"))
	if err != nil {
		res.HandleError(c, err)
		return
	}
	if topic.BoardID != boardID {
		res.HandleError(c, res.NotFoundErr("主题"))
		return
	}

	page := getPage(c)
	replies, err := models.GetReplies(topic.ID, page)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	// 回复加主题合并成一批，作者信息只查一次
	bound := make([]models.UserBound, 0, len(replies)+1)
	for _, reply := range replies {
		bound = append(bound, reply)
	}
	bound = append(bound, topic)
	if err := models.BindUsers(bound); err != nil {
		res.HandleError(c, err)
		return
	}

	theme_ser.Render(c, "discuss/topic.html", gin.H{
		"board":   board,
		"topic":   topic,
		"replies": replies,
		"page":    page,
	})
}

// ReplyRedirect 回复永久链接
// 解析回复 -> 校验回复属于路径里的主题 -> 计算回复落在第几页 -> 301到主题分页
func (t *Theme) ReplyRedirect(c *gin.Context) {
	reply, err := models.GetReply(c.Param("rid"))
	if err != nil {
		res.HandleError(c, err)
		return
	}
	if reply.TopicID != c.Param("tid") {
		res.HandleError(c, res.NotFoundErr("回复"))
		return
	}

	topic, err := models.GetTopic(reply.TopicID)
	if err != nil {
		res.HandleError(c, err)
		return
	}

	before, err := models.CountRepliesBefore(reply)
	if err != nil {
		res.HandleError(c, err)
		return
	}
	page := before/itemsPerPage + 1

	c.Redirect(http.StatusMovedPermanently,
		fmt.Sprintf("/discuss/%s/%s?page=%d", topic.BoardID, topic.ID, page))
}
