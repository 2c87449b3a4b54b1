package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaults(t *testing.T) {
	Reset()
	defer Reset()

	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want %v", Ping(), DefaultPing)
	}
	if Query() != DefaultQuery {
		t.Errorf("Query() = %v, want %v", Query(), DefaultQuery)
	}
	if Scan() != DefaultScan {
		t.Errorf("Scan() = %v, want %v", Scan(), DefaultScan)
	}
}

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Query: 3 * time.Second})

	cur := Current()
	if cur.Query != 3*time.Second {
		t.Errorf("Query = %v, want 3s", cur.Query)
	}
	if cur.Ping != DefaultPing {
		t.Errorf("Ping = %v, want default %v", cur.Ping, DefaultPing)
	}
	if cur.Scan != DefaultScan {
		t.Errorf("Scan = %v, want default %v", cur.Scan, DefaultScan)
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, log, "slow op")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("expected 1 warning, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "operation timed out" {
		t.Errorf("message = %q", entry.Message)
	}
	if got := entry.ContextMap()["operation"]; got != "slow op" {
		t.Errorf("operation field = %v, want %q", got, "slow op")
	}
}

func TestWithTimeout_NoLogWhenCanceledEarly(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	_, cancel := WithTimeout(context.Background(), time.Minute, log, "fast op")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("expected no warnings, got %d", logs.Len())
	}
}
