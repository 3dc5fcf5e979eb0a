package sns_ser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"website/global"
	"website/models/ctypes"
	"website/utils"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
)

// 同步任务与请求生命周期完全解耦：请求方不等待、不观察同步结果，
// 调用方是否断开连接也不影响任务执行
const defaultTimeout = 10 * time.Second

type payload struct {
	User      string `json:"user"`
	Content   string `json:"content"`
	URL       string `json:"url"`
	CreatedAt int64  `json:"created_at"`
}

// Dispatch 异步把评论推送到外部平台，立即返回
func Dispatch(user *ctypes.SessionUser, content, canonicalURL string) {
	go func() {
		if err := send(user, content, canonicalURL); err != nil {
			// 失败只记日志，绝不影响评论请求本身
			global.Log.Error("评论同步失败",
				zap.String("url", canonicalURL),
				zap.String("error", err.Error()),
			)
		}
	}()
}

// send 执行推送，带有限次重试
func send(user *ctypes.SessionUser, content, canonicalURL string) error {
	cfg := global.Config.Sns

	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	name := ""
	if user != nil {
		name = user.Name
	}
	// 外部平台只收纯文本摘要，残留的HTML标签转回Markdown
	if text, err := utils.HTML2Markdown(content); err == nil {
		content = text
	}
	body, err := json.Marshal(payload{
		User:      name,
		Content:   content,
		URL:       canonicalURL,
		CreatedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("序列化同步内容失败: %w", err)
	}

	client := &http.Client{Timeout: timeout}

	return retry.Do(
		func() error {
			// 不挂在请求上下文上，请求结束后照常推送
			req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= http.StatusBadRequest {
				return fmt.Errorf("同步接口返回状态 %d", resp.StatusCode)
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
}
