package queue

import (
	"context"
	"time"

	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/logger"

	"github.com/hibiken/asynq"
)

// DefaultQueue 通知任务投递的队列
const DefaultQueue = constants.QueueDefault

// 通知邮件只尝试一次，单次最长执行时间
const notificationTimeout = 30 * time.Second

// Client 任务投递端；未启用队列时 inner 为空，投递静默跳过
type Client struct {
	inner *asynq.Client
}

// NewClient 创建投递端，queue.enabled=false 时返回禁用的客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{}, nil
	}
	return &Client{inner: asynq.NewClient(redisOpt(cfg))}, nil
}

// Enabled 是否会真正投递任务
func (c *Client) Enabled() bool {
	return c != nil && c.inner != nil
}

// Close 释放 Redis 连接
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.inner.Close()
}

// EnqueueContactNotification 投递联系表单通知任务，失败不重试
func (c *Client) EnqueueContactNotification(payload ContactNotificationPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewContactNotificationTask(payload)
	if err != nil {
		return err
	}
	options := append([]asynq.Option{
		asynq.Queue(DefaultQueue),
		asynq.MaxRetry(0),
		asynq.Timeout(notificationTimeout),
	}, opts...)
	info, err := c.inner.Enqueue(task, options...)
	if err != nil {
		return err
	}
	logger.Debugw("queue_task_enqueued", "type", task.Type(), "task_id", info.ID, "submission_id", payload.SubmissionID)
	return nil
}

// BuildServerConfig 消费端配置，日志统一走 zap
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	serverCfg := asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{DefaultQueue: 1},
		Logger:      logger.S(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			logger.Warnw("queue_task_failed", "type", task.Type(), "error", err)
		}),
	}
	if cfg == nil {
		return redisOpt(&config.QueueConfig{}), serverCfg
	}
	if cfg.Concurrency > 0 {
		serverCfg.Concurrency = cfg.Concurrency
	}
	if len(cfg.Queues) > 0 {
		serverCfg.Queues = cfg.Queues
	}
	return redisOpt(cfg), serverCfg
}

func redisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
