package corn_ser

import (
	"github.com/robfig/cron/v3"
)

// CornInit 启动定时任务
// 每分钟把Redis中的阅读计数回写到数据库的近似列
func CornInit() {
	Cron := cron.New(cron.WithSeconds())
	Cron.AddFunc("0 */1 * * * *", SyncReadCounts)
	Cron.Start()
}
