package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"ERROR", false},
		{"", false},
		{"verbose", true},
	}

	for _, tc := range tests {
		log, err := Setup(tc.level)
		if tc.wantErr {
			assert.Error(t, err, "level %q", tc.level)
			assert.Nil(t, log)
			continue
		}
		require.NoError(t, err, "level %q", tc.level)
		assert.NotNil(t, log)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestContextCarry(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
	assert.Same(t, log, FromContextOrDefault(ctx, nil))
}

func TestFromContextFallbacks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// Empty context falls back to the process default.
	assert.NotNil(t, FromContext(ctx))

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
	assert.NotNil(t, FromContextOrDefault(ctx, nil))
}
