package log

import (
	"bytes"
	"fmt"
	"testing"

	"sweep/internal/errors"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), `msg="info message"`)
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithLevel(logrus.WarnLevel))

	l.Info("hidden")
	l.Infof("hidden %d", 1)
	assert.Empty(t, buf.String())

	l = NewLogger(WithOutput(&buf), WithLevel(logrus.DebugLevel))
	l.Infof("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))
	defer SetDebug(false)

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), `msg="debug message"`)
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestPackageLevelHelpers(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger
	Configure(WithOutput(&buf))
	defer func() { logger = originalLogger }()
	defer SetDebug(false)

	Infof("inventory has %d items", 3)
	assert.Contains(t, buf.String(), "inventory has 3 items")
	buf.Reset()

	SetDebug(false)
	Debugf("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debugf("exec: %s", "dpkg -l")
	assert.Contains(t, buf.String(), "exec: dpkg -l")
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger
	Configure(WithOutput(&buf))
	defer func() { logger = originalLogger }()
	defer SetDebug(false)
	SetDebug(true)

	LogWithError(fmt.Errorf("standard error")).Debug("error occurred")
	assert.Contains(t, buf.String(), `error="standard error"`)
	buf.Reset()

	configErr := errors.NewConfigError("invalid key binding", "keybindings.quit", errors.InvalidConfig, errors.NewParseError("F13"))
	LogWithError(configErr).Debug("config error occurred")
	output := buf.String()
	assert.Contains(t, output, "param=keybindings.quit")
	assert.Contains(t, output, fmt.Sprintf("error_kind=%d", int(errors.InvalidConfig)))
	buf.Reset()

	remErr := errors.NewRemovalError("cannot remove", "/tmp/x", errors.IoFailed, nil)
	LogWithError(remErr).Debug("removal failed")
	output = buf.String()
	assert.Contains(t, output, `msg="removal failed"`)
	assert.Contains(t, output, "target=/tmp/x")
	buf.Reset()

	discErr := errors.NewDiscoveryError("command failed", "dpkg", errors.DiscoveryFailed, nil)
	LogWithError(discErr).Debug("discovery")
	assert.Contains(t, buf.String(), "command=dpkg")
	buf.Reset()

	LogWithError(nil).Debug("nil error test")
	assert.Contains(t, buf.String(), `error="<nil>"`)
}
