package comment_ser

import (
	"os"
	"regexp"
	"strings"
	"sync"

	"website/global"
	"website/models"
	"website/models/ctypes"
	"website/models/res"
	"website/service/sns_ser"
	"website/utils"

	"github.com/importcjj/sensitive"
	"go.uber.org/zap"
)

var (
	newlinePattern = regexp.MustCompile(`\n+`)
	scriptPattern  = regexp.MustCompile(`(?i)</?script>`)
)

// 敏感词文件可选，不存在时跳过该消毒环节
const sensitiveWordsFile = "sensitive_words.txt"

var (
	sensitiveFilter *sensitive.Filter
	sensitiveOnce   sync.Once
)

func getSensitiveFilter() *sensitive.Filter {
	sensitiveOnce.Do(func() {
		if _, err := os.Stat(sensitiveWordsFile); err != nil {
			return
		}
		filter := sensitive.New()
		if err := filter.LoadWordDict(sensitiveWordsFile); err != nil {
			global.Log.Warn("加载敏感词失败", zap.String("error", err.Error()))
			return
		}
		sensitiveFilter = filter
	})
	return sensitiveFilter
}

// FormatContent 评论内容消毒：连续换行压成一个、去掉script标签、掐头去尾，
// 然后过一遍敏感词替换
func FormatContent(s string) string {
	s = newlinePattern.ReplaceAllString(s, "\n")
	s = scriptPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if filter := getSensitiveFilter(); filter != nil {
		s = filter.Replace(s, '*')
	}
	return s
}

// resolveRef 解析评论目标，返回目标的规范路径
// 目标不存在时返回未找到错误，评论不会落库
func resolveRef(refType models.CommentRefType, refID string) (string, error) {
	switch refType {
	case models.RefArticle:
		article, err := models.GetArticle(refID)
		if err != nil {
			return "", err
		}
		return "/article/" + article.ID, nil
	case models.RefWiki:
		wiki, err := models.GetWiki(refID)
		if err != nil {
			return "", err
		}
		return "/wiki/" + wiki.ID, nil
	case models.RefWikiPage:
		page, err := models.GetWikiPage(refID)
		if err != nil {
			return "", err
		}
		return "/wiki/" + page.WikiID + "/" + page.ID, nil
	default:
		return "", res.InvalidParam("ref_type", "不支持的评论目标类型")
	}
}

// Create 评论提交管道
// 权限门 -> 消毒 -> 解析目标 -> 落库 -> 可选的异步外部同步
// 前四步任何一步失败立即终止并上抛；同步步骤永不影响请求结果
func Create(user *ctypes.SessionUser, refType models.CommentRefType, refID, content, host string) (*models.CommentModel, error) {
	// 权限门：访客不能评论，后续步骤一概不执行
	if user.IsGuest() {
		return nil, res.PermissionDeniedErr("")
	}

	content = FormatContent(content)
	if content == "" {
		return nil, res.InvalidParam("content", "评论内容不能为空")
	}

	path, err := resolveRef(refType, refID)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	comment := &models.CommentModel{
		RefType:  refType,
		RefID:    refID,
		UserID:   user.ID,
		UserName: user.Name,
		Content:  content,
	}
	comment.ID = id
	if err := models.CreateComment(comment); err != nil {
		return nil, err
	}

	// 响应决策已经做出，同步任务完全脱离请求路径
	if global.Config.Sns.SyncComments {
		sns_ser.Dispatch(user, content, "http://"+host+path)
	}

	return comment, nil
}
