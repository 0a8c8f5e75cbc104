package ctxutil

import (
	"context"
	"testing"
)

func TestUserIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if userID := GetUserID(context.Background()); userID != "" {
			t.Errorf("Expected empty string, got %s", userID)
		}
	})

	t.Run("with user ID", func(t *testing.T) {
		t.Parallel()
		ctx := WithUserID(context.Background(), "U024BE7LH")
		if userID := GetUserID(ctx); userID != "U024BE7LH" {
			t.Errorf("Expected userID U024BE7LH, got %s", userID)
		}
	})
}

func TestIntentContext(t *testing.T) {
	t.Parallel()

	if intent := GetIntent(context.Background()); intent != "" {
		t.Errorf("Expected empty string, got %s", intent)
	}

	ctx := WithIntent(context.Background(), "CreatePTORequest")
	if intent := GetIntent(ctx); intent != "CreatePTORequest" {
		t.Errorf("Expected CreatePTORequest, got %s", intent)
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		if _, ok := GetRequestID(context.Background()); ok {
			t.Error("Expected no request ID")
		}
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		ctx := WithRequestID(context.Background(), "req-123")
		requestID, ok := GetRequestID(ctx)
		if !ok || requestID != "req-123" {
			t.Errorf("Expected req-123, got %q (ok=%v)", requestID, ok)
		}
	})
}
