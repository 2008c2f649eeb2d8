package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"github.com/natscamp/money-manager/common"
)

func TestWailsLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newWailsLogger(common.NewAppLogger(&buf, common.LevelDebug))

	tests := []struct {
		write func(string)
		level string
	}{
		{l.Print, "level=INFO"},
		{l.Trace, "level=DEBUG"},
		{l.Debug, "level=DEBUG"},
		{l.Info, "level=INFO"},
		{l.Warning, "level=WARN"},
		{l.Error, "level=ERROR"},
	}

	for _, tt := range tests {
		buf.Reset()
		tt.write("100% loaded")
		assert.Contains(t, buf.String(), tt.level)
		assert.Contains(t, buf.String(), "100% loaded")
	}
}

func TestWailsLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	l := newWailsLogger(common.NewAppLogger(&buf, common.LevelInfo))
	l.exit = func(c int) { code = c }

	l.Fatal("boom")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom")
}

func TestWailsLogLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, wailsLogLevel(common.LevelDebug))
	assert.Equal(t, logger.INFO, wailsLogLevel(common.LevelInfo))
	assert.Equal(t, logger.WARNING, wailsLogLevel(common.LevelWarn))
	assert.Equal(t, logger.ERROR, wailsLogLevel(common.LevelError))
}
