package xrun

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func TestSupervise_CleanExitNoRestart(t *testing.T) {
	var runs atomic.Int64

	svc := Supervise("clean", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	if err := svc(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if runs.Load() != 1 {
		t.Errorf("expected exactly 1 run, got %d", runs.Load())
	}
}

func TestSupervise_RestartsUntilSuccess(t *testing.T) {
	var runs atomic.Int64
	crashErr := errors.New("worker crashed")

	svc := Supervise("flaky",
		func(ctx context.Context) error {
			if runs.Add(1) < 3 {
				return crashErr
			}
			return nil
		},
		WithRestartDelay(time.Millisecond, 5*time.Millisecond),
		WithSuperviseLogger(slog.New(slog.DiscardHandler)),
	)

	if err := svc(context.Background()); err != nil {
		t.Errorf("expected nil error after restarts, got %v", err)
	}
	if runs.Load() != 3 {
		t.Errorf("expected 3 runs, got %d", runs.Load())
	}
}

func TestSupervise_MaxRestartsExceeded(t *testing.T) {
	var runs atomic.Int64
	crashErr := errors.New("always crashing")

	svc := Supervise("doomed",
		func(ctx context.Context) error {
			runs.Add(1)
			return crashErr
		},
		WithMaxRestarts(2),
		WithRestartDelay(time.Millisecond, 5*time.Millisecond),
		WithSuperviseLogger(slog.New(slog.DiscardHandler)),
	)

	if err := svc(context.Background()); !errors.Is(err, crashErr) {
		t.Errorf("expected %v, got %v", crashErr, err)
	}
	// 首次运行 + 2 次重启
	if runs.Load() != 3 {
		t.Errorf("expected 3 runs, got %d", runs.Load())
	}
}

func TestSupervise_CancellationNotRetried(t *testing.T) {
	var runs atomic.Int64

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := Supervise("cancelled",
		func(ctx context.Context) error {
			runs.Add(1)
			return ctx.Err()
		},
		WithRestartDelay(time.Millisecond, 5*time.Millisecond),
	)

	if err := svc(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if runs.Load() != 1 {
		t.Errorf("cancellation must not trigger restarts, got %d runs", runs.Load())
	}
}

func TestSupervise_NilFunc(t *testing.T) {
	if err := Supervise("nil", nil)(context.Background()); !errors.Is(err, ErrNilFunc) {
		t.Errorf("expected ErrNilFunc, got %v", err)
	}
}

func TestSupervise_NilOptionIgnored(t *testing.T) {
	svc := Supervise("svc", func(ctx context.Context) error { return nil }, nil)
	if err := svc(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestSupervise_InGroup(t *testing.T) {
	var runs atomic.Int64
	crashErr := errors.New("transient")

	g, _ := NewGroup(context.Background(),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	g.Go(Supervise("worker",
		func(ctx context.Context) error {
			if runs.Add(1) == 1 {
				return crashErr
			}
			return nil
		},
		WithRestartDelay(time.Millisecond, 5*time.Millisecond),
		WithSuperviseLogger(slog.New(slog.DiscardHandler)),
	))

	if err := g.Wait(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if runs.Load() != 2 {
		t.Errorf("expected 2 runs, got %d", runs.Load())
	}
}
