package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Debug("hidden")
	logger.Error("input file not found", zap.String("path", "missing.csv"))

	assert.Equal(t, "ERROR\tinput file not found\t{\"path\": \"missing.csv\"}\n", buf.String())
}

func TestNewWithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithLevel(&buf, zapcore.DebugLevel)

	logger.Debug("parsed input file")

	assert.Equal(t, "DEBUG\tparsed input file\n", buf.String())
}
