package flags

import (
	"fmt"

	"website/global"
	"website/models"
	"website/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Token 为指定用户签发一个会话令牌，方便调试主题页面的登录态
func Token(c *cli.Context) error {
	user, err := models.GetUser(c.String("user_id"))
	if err != nil {
		global.Log.Error("查询用户失败", zap.String("error", err.Error()))
		return nil
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		global.Log.Error("签发令牌失败", zap.String("error", err.Error()))
		return nil
	}

	fmt.Println(token)
	return nil
}
