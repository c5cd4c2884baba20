package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/David-iadg/consult-ia/internal/config"
)

type fakeService struct {
	name     string
	startErr error
	block    bool

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

func newFakeService(name string, block bool, startErr error) *fakeService {
	return &fakeService{name: name, block: block, startErr: startErr, done: make(chan struct{})}
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Start(ctx context.Context) error {
	if !f.block {
		return f.startErr
	}
	select {
	case <-ctx.Done():
	case <-f.done:
	}
	return nil
}

func (f *fakeService) Stop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.stopped {
		f.stopped = true
		close(f.done)
	}
	return nil
}

func (f *fakeService) wasStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func TestRunnerStopsAllServicesWhenOneFails(t *testing.T) {
	failing := newFakeService("failing", false, errors.New("boom"))
	blocking := newFakeService("blocking", true, nil)
	runner := NewRunner(failing, blocking)

	var order []string
	runner.OnShutdown(func() error { order = append(order, "first"); return nil })
	runner.OnShutdown(func() error { order = append(order, "second"); return nil })

	err := runner.Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected start error, got %v", err)
	}
	if !blocking.wasStopped() || !failing.wasStopped() {
		t.Fatalf("expected every service to be stopped")
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Fatalf("expected cleanups in reverse order, got %v", order)
	}
}

func TestRunnerCancelledContextIsCleanExit(t *testing.T) {
	blocking := newFakeService("blocking", true, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewRunner(blocking).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("expected nil on cancellation, got %v", err)
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("expected error without services")
	}
}

func TestBuildRunnerRejectsUnknownMode(t *testing.T) {
	if _, err := BuildRunner(nil, ModeAll); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := BuildRunner(&config.Config{}, "scheduler"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
