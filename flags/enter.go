package flags

import (
	"os"

	"website/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func Newflags() {
	var app = cli.NewApp()
	app.Name = "website"
	app.Usage = "内容发布站点服务"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "elasticsearch",
			Aliases: []string{"es"},
			Usage:   "创建搜索索引",
			Action:  EsIndexCreate,
		},
		{
			Name:    "reindex",
			Aliases: []string{"ri"},
			Usage:   "全量重建搜索索引",
			Action:  EsReindex,
		},
		{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "为用户签发会话令牌",
			Action:  Token,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "user_id",
					Aliases: []string{"u"},
					Usage:   "用户ID",
				},
			},
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)

	}
}
