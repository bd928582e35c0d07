package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActor(t *testing.T) {
	assert.Equal(t, "unknown", Actor(context.Background()))
	assert.Equal(t, "admin-1", Actor(WithActor(context.Background(), "admin-1")))

	ctx := WithRequestID(WithActor(context.Background(), "admin-1"), "req-9")
	assert.Equal(t, "admin-1", Actor(ctx))
	assert.Equal(t, "req-9", RequestID(ctx))
}
