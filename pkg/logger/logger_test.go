package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	// None of these should panic
	logger.Info("info message: %s", "ok")
	logger.Warn("warn message: %d", 42)
	logger.Error("error message: %v", assert.AnError)
}

func TestLogger_MultipleCalls(t *testing.T) {
	logger := New()

	for i := 0; i < 3; i++ {
		logger.Info("Info %d", i)
		logger.Warn("Warn %d", i)
		logger.Error("Error %d", i)
	}
}
