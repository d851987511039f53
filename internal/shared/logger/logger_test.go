package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		env       string
		debugOn   bool
		infoOn    bool
		jsonLines bool
	}{
		{env: "prod", infoOn: true, jsonLines: true},
		{env: "production", infoOn: true, jsonLines: true},
		{env: "local", debugOn: true, infoOn: true},
		{env: "dev", debugOn: true, infoOn: true},
		{env: "test"},
		{env: "staging", infoOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(tt.env, &buf)
			ctx := context.Background()

			assert.Equal(t, tt.debugOn, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.infoOn, log.Enabled(ctx, slog.LevelInfo))
			assert.True(t, log.Enabled(ctx, slog.LevelWarn))

			log.Warn("hello")
			assert.Equal(t, tt.jsonLines, json.Valid(bytes.TrimSpace(buf.Bytes())))
		})
	}
}

func TestWith_BindsAttributes(t *testing.T) {
	// Given
	var buf bytes.Buffer
	ctx := logger.WithLogger(context.Background(), logger.New("prod", &buf))

	// When
	ctx = logger.With(ctx, "member_id", "7")
	logger.FromContext(ctx).Info("checked")

	// Then
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "7", entry["member_id"])
	assert.Equal(t, "checked", entry["msg"])
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
}
