package clock

import (
	"context"
	"testing"
	"time"

	"go.uber.org/fx"
)

func TestSystemNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := System{}.Now()
	if now.Before(before) {
		t.Fatalf("expected current time, got %v", now)
	}
	if now.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", now.Location())
	}
	if now.Nanosecond()%int(time.Microsecond) != 0 {
		t.Fatalf("expected microsecond precision, got %v", now)
	}
}

func TestFixedNow(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := Fixed{At: at}
	if !c.Now().Equal(at) || !c.Now().Equal(c.Now()) {
		t.Fatalf("expected fixed time %v, got %v", at, c.Now())
	}
}

func TestModuleProvidesClock(t *testing.T) {
	var resolved Clock
	app := fx.New(fx.NopLogger, Module, fx.Populate(&resolved))
	t.Cleanup(func() { _ = app.Stop(context.Background()) })
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if _, ok := resolved.(System); !ok {
		t.Fatalf("expected system clock, got %T", resolved)
	}
}
