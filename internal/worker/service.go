package worker

import (
	"context"
	"errors"

	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/queue"

	"github.com/hibiken/asynq"
)

var (
	errQueueDisabled = errors.New("queue disabled")
	errNilConsumer   = errors.New("consumer is nil")
)

// Service 把 asynq 消费端包装成可由 app.Runner 管理的服务
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 仅在 queue.enabled 时可用
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	switch {
	case cfg == nil || !cfg.Enabled:
		return nil, errQueueDisabled
	case consumer == nil:
		return nil, errNilConsumer
	}
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{server: asynq.NewServer(queue.BuildServerConfig(cfg)), mux: mux}, nil
}

func (s *Service) Name() string { return "worker" }

// Start 阻塞直到 Stop 被调用
func (s *Service) Start(_ context.Context) error {
	return s.server.Run(s.mux)
}

// Stop 等待进行中的任务结束后退出
func (s *Service) Stop(_ context.Context) error {
	s.server.Shutdown()
	return nil
}
