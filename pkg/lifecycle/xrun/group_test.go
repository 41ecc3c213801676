package xrun

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

func TestGroup_Empty(t *testing.T) {
	g, _ := NewGroup(context.Background())
	if err := g.Wait(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestGroup_SingleService(t *testing.T) {
	var executed atomic.Bool

	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		executed.Store(true)
		return nil
	})

	if err := g.Wait(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	if !executed.Load() {
		t.Error("service was not executed")
	}
}

func TestGroup_ServiceError(t *testing.T) {
	expectedErr := errors.New("test error")

	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		return expectedErr
	})

	if err := g.Wait(); !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
}

func TestGroup_ContextCancellation(t *testing.T) {
	var stopped atomic.Bool

	g, ctx := NewGroup(context.Background())

	// 服务 1：等待 context 取消
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Store(true)
		return ctx.Err()
	})

	// 服务 2：立即返回错误，触发取消
	g.Go(func(ctx context.Context) error {
		return errors.New("trigger")
	})

	if err := g.Wait(); err == nil || err.Error() != "trigger" {
		t.Errorf("expected 'trigger' error, got %v", err)
	}

	select {
	case <-ctx.Done():
	default:
		t.Error("context should be cancelled")
	}

	if !stopped.Load() {
		t.Error("service 1 should have observed cancellation")
	}
}

func TestGroup_NilContext(t *testing.T) {
	//nolint:staticcheck // 故意传 nil 验证归一化
	g, ctx := NewGroup(nil)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	g.Go(func(ctx context.Context) error { return nil })
	if err := g.Wait(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestGroup_NilFunc(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go(nil)
	if err := g.Wait(); !errors.Is(err, ErrNilFunc) {
		t.Errorf("expected ErrNilFunc, got %v", err)
	}
}

func TestGroup_CancelWithCause(t *testing.T) {
	cause := errors.New("shutdown requested")

	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	go func() {
		time.Sleep(20 * time.Millisecond)
		g.Cancel(cause)
	}()

	if err := g.Wait(); !errors.Is(err, cause) {
		t.Errorf("expected cause %v, got %v", cause, err)
	}
}

func TestGroup_CancelNilCause(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	go func() {
		time.Sleep(20 * time.Millisecond)
		g.Cancel(nil)
	}()

	// 无显式 cause 的主动取消应被过滤为 nil
	if err := g.Wait(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestGroup_InternalCanceledNotFiltered(t *testing.T) {
	// 服务内部自行返回 context.Canceled（非 Group 取消），不应被过滤
	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		return context.Canceled
	})

	if err := g.Wait(); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGroup_GoWithName(t *testing.T) {
	var executed atomic.Bool

	g, _ := NewGroup(context.Background(),
		WithName("test-group"),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	g.GoWithName("worker", func(ctx context.Context) error {
		executed.Store(true)
		return nil
	})

	if err := g.Wait(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if !executed.Load() {
		t.Error("named service was not executed")
	}
}

func TestGroup_Context(t *testing.T) {
	g, ctx := NewGroup(context.Background())
	if g.Context() != ctx {
		t.Error("Context() should return the derived context")
	}
	g.Cancel(nil)
	if err := g.Wait(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- RunWithOptions(ctx, []Option{WithoutSignalHandler()},
			func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		// 父 context 取消，无显式 cause，过滤为 nil
		if err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for Run to return")
	}
}

func TestRun_SignalError(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	ctx := withTestSigChan(context.Background(), sigCh)

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	// 模拟发送信号
	time.Sleep(50 * time.Millisecond)
	sigCh <- syscall.SIGTERM

	select {
	case err := <-done:
		var sigErr *SignalError
		if !errors.As(err, &sigErr) {
			t.Fatalf("expected SignalError, got %v", err)
		}
		if sigErr.Signal != syscall.SIGTERM {
			t.Errorf("expected SIGTERM, got %v", sigErr.Signal)
		}
		if !errors.Is(err, ErrSignal) {
			t.Error("error should match ErrSignal")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for Run to return")
	}
}

func TestRunWithOptions_ServiceError(t *testing.T) {
	wantErr := errors.New("boom")

	err := RunWithOptions(context.Background(),
		[]Option{WithoutSignalHandler(), WithName("failing")},
		func(ctx context.Context) error { return wantErr },
	)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestSignalError_Message(t *testing.T) {
	err := &SignalError{Signal: syscall.SIGINT}
	if got := err.Error(); got != "xrun: terminated by signal interrupt" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(err, ErrSignal) {
		t.Error("SignalError should match ErrSignal")
	}
	if errors.Unwrap(err) != ErrSignal {
		t.Error("Unwrap should return ErrSignal")
	}
}

func TestDefaultSignals(t *testing.T) {
	sigs := DefaultSignals()
	if len(sigs) != 4 {
		t.Fatalf("expected 4 signals, got %d", len(sigs))
	}

	// 每次调用返回独立切片
	sigs[0] = syscall.SIGUSR1
	if DefaultSignals()[0] != syscall.SIGHUP {
		t.Error("DefaultSignals should return a fresh slice")
	}
}

func TestTicker(t *testing.T) {
	var count atomic.Int64

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Ticker(10*time.Millisecond, true, func(ctx context.Context) error {
			if count.Add(1) >= 3 {
				cancel()
			}
			return nil
		})(ctx)
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for ticker to stop")
	}

	if count.Load() < 3 {
		t.Errorf("expected at least 3 ticks, got %d", count.Load())
	}
}

func TestTicker_InvalidInterval(t *testing.T) {
	err := Ticker(0, false, func(ctx context.Context) error { return nil })(context.Background())
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestTicker_NilFunc(t *testing.T) {
	err := Ticker(time.Second, false, nil)(context.Background())
	if !errors.Is(err, ErrNilFunc) {
		t.Errorf("expected ErrNilFunc, got %v", err)
	}
}

func TestTicker_FuncError(t *testing.T) {
	wantErr := errors.New("tick failed")
	err := Ticker(time.Millisecond, true, func(ctx context.Context) error {
		return wantErr
	})(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestWaitForDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitForDone()(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
