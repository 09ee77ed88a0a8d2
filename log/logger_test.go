package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

func resetLogger(t *testing.T) {
	t.Helper()
	previousLogger, previousLevel := logger, currentLevel
	t.Cleanup(func() {
		logger, currentLevel = previousLogger, previousLevel
		debugLeveled, isDebugLeveled = nil, false
	})
}

// TestParseLevel tests the level names parsing.
func TestParseLevel(t *testing.T) {
	levels := map[string]interface{}{
		"debug3":   LDEBUG3,
		"DEBUG2":   LDEBUG2,
		"debug":    LDEBUG,
		"info":     LINFO,
		"warning":  LWARNING,
		"error":    LERROR,
		"critical": LCRITICAL,
		"verbose":  LUNKNOWN,
	}
	for name, level := range levels {
		assert.Equal(t, level, ParseLevel(name), name)
	}
}

// TestSetLevel tests setting the package level.
func TestSetLevel(t *testing.T) {
	resetLogger(t)

	err := SetLevel(LUNKNOWN)
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.CommonLoggerUnknownLevel))

	m := NewModuleLogger("level-test")
	require.NoError(t, SetLevel(LWARNING))
	assert.Equal(t, LWARNING, Level())
	assert.Equal(t, LWARNING, m.Level())
}

// TestModuleLogger tests the module logger prefixes and filtering.
func TestModuleLogger(t *testing.T) {
	resetLogger(t)

	buf := &bytes.Buffer{}
	New(buf, "", 0)
	require.NoError(t, SetLevel(LINFO))

	m := NewModuleLogger("test")
	m.Infof("hello %s", "world")
	assert.Contains(t, buf.String(), "[test] hello world")

	buf.Reset()
	m.Debugf("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	t.Run("NoLogger", func(t *testing.T) {
		logger = nil
		assert.False(t, m.IsLevelEnabled(LCRITICAL))
		assert.NotPanics(t, func() { m.Errorf("nothing") })
	})
}
