package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env       string
		wantJSON  bool
		wantDebug bool
	}{
		{env: envLocal, wantJSON: false, wantDebug: true},
		{env: envDev, wantJSON: true, wantDebug: true},
		{env: envProd, wantJSON: true, wantDebug: false},
		{env: "unknown", wantJSON: false, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			logger := setupLogger(tt.env)

			_, isJSON := logger.Handler().(*slog.JSONHandler)
			assert.Equal(t, tt.wantJSON, isJSON)
			assert.Equal(t, tt.wantDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}
