package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/monibridge/core/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoggerFormatterAndFields(t *testing.T) {
	var buf bytes.Buffer
	InitForTest(config.ServerConfiguration{Environment: "local"}, &buf, "")
	SetLogLevel(logrus.InfoLevel)

	Infof("balance updated for %s", Fields{"AccountID": "acc-1"}, "acc-1")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "INFO "), "level prefix expected, got %q", out)
	assert.Contains(t, out, "balance updated for acc-1")
	assert.Contains(t, out, "AccountID=acc-1")
}

func TestLoggerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	InitForTest(config.ServerConfiguration{Environment: "local"}, &buf, "")
	SetLogLevel(logrus.WarnLevel)

	Infof("should not appear", nil)
	assert.Empty(t, buf.String())

	Debugf("should not appear either", nil)
	assert.Empty(t, buf.String())
}
