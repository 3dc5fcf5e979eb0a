package flags

import (
	"context"

	"website/global"
	"website/service/search_ser"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func EsIndexCreate(c *cli.Context) error {
	if err := search_ser.IndexCreate(context.Background()); err != nil {
		global.Log.Error("创建索引失败", zap.String("error", err.Error()))
		return nil
	}
	return nil
}

func EsReindex(c *cli.Context) error {
	if err := search_ser.Reindex(context.Background()); err != nil {
		global.Log.Error("重建索引失败", zap.String("error", err.Error()))
		return nil
	}
	return nil
}
