package loggers

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("loud")
	assert.Error(t, err)
}

func TestCtx_ReturnsLoggerStoredOnContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	ctx := logger.With().Str(FieldRequestID, "req-1").Logger().WithContext(context.Background())
	Ctx(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestCtx_WithoutLoggerDoesNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Ctx(context.Background()).Warn().Msg("dropped")
	})
}
