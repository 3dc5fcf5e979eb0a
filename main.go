package main

import (
	"fmt"

	"website/core"
	"website/flags"
	"website/global"
	"website/pkg/cache"
	"website/router"
	"website/service/corn_ser"
	"website/utils"

	"go.uber.org/zap"
)

func main() {
	var err error
	// 初始化配置
	core.InitConf()
	// 初始化日志
	global.Log = core.NewLogManager(&global.Config.Log)
	// 初始化数据库
	global.DB = core.InitGorm()
	// 初始化redis
	global.Redis = core.InitRedis()
	// 初始化缓存层
	global.Cache = cache.NewStore(global.Redis)
	// 初始化es
	global.Es = core.InitEs()
	// 初始化雪花ID
	utils.Init(global.Config.System.StartTime, global.Config.System.MachineID)
	// 初始化命令行参数
	flags.Newflags()
	// 初始化corn
	corn_ser.CornInit()
	// 初始化路由
	router := router.InitRouter()
	// 启动服务
	err = router.Run(fmt.Sprintf(":%d", global.Config.System.Port))
	if err != nil {
		global.Log.Fatal("启动服务失败", zap.String("error", err.Error()))
	}
}
