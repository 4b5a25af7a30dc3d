package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestWrapErrorPreservesChain(t *testing.T) {
	base := errors.New("boom")
	wrapped := WrapError(base, "insert property %s", "abc")
	if !errors.Is(wrapped, base) {
		t.Fatal("wrapped error lost its cause")
	}
	if wrapped.Error() != "insert property abc: boom" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}
	if WrapError(nil, "noop") != nil {
		t.Fatal("nil error must stay nil")
	}
}

func TestIsRetryableError(t *testing.T) {
	if !IsRetryableError(fmt.Errorf("query: %w", context.DeadlineExceeded)) {
		t.Error("deadline exceeded should be retryable")
	}
	if !IsRetryableError(errors.New("dial tcp: Connection refused")) {
		t.Error("connection errors should be retryable")
	}
	if IsRetryableError(errors.New("duplicate key")) {
		t.Error("constraint errors are not retryable")
	}
	if IsRetryableError(nil) {
		t.Error("nil is not retryable")
	}
}
