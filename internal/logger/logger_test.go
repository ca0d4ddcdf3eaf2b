package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_Environments(t *testing.T) {
	for _, env := range []string{EnvLocal, EnvProd} {
		l, err := NewLogger(env, "")
		if err != nil {
			t.Fatalf("env %s: unexpected error: %v", env, err)
		}
		if l == nil {
			t.Fatalf("env %s: nil logger", env)
		}
	}
}

func TestNewLogger_UnknownEnv(t *testing.T) {
	if _, err := NewLogger("docker", ""); err == nil {
		t.Fatal("expected error for unknown env")
	}
}

func TestNewLogger_ProfileDefaults(t *testing.T) {
	prod, err := NewLogger(EnvProd, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.Core().Enabled(zap.DebugLevel) {
		t.Error("prod should not log debug by default")
	}

	local, err := NewLogger(EnvLocal, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !local.Core().Enabled(zap.DebugLevel) {
		t.Error("local should log debug by default")
	}
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger(EnvProd, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	if _, err := NewLogger(EnvProd, "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}

	fallback := zap.NewExample()
	if FromContextOr(context.Background(), fallback) != fallback {
		t.Error("expected fallback logger")
	}

	stored := zap.NewExample()
	ctx := ContextWithLogger(context.Background(), stored)
	if FromContextOr(ctx, fallback) != stored {
		t.Error("expected stored logger")
	}
}
