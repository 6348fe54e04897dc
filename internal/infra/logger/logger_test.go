package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(&config.AppConfig{LogLevel: "info", Environment: "production"}, &buf)

	log.WithField("homework", "hw1").Info("Status notification sent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Status notification sent", entry["msg"])
	assert.Equal(t, "hw1", entry["homework"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(&config.AppConfig{LogLevel: "loud", Environment: "development"}, &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(&config.AppConfig{LogLevel: "debug", Environment: "development"}, &buf)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Logger initialized")
}
