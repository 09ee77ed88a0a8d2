package log

import (
	"github.com/neuronlabs/uni-logger"
)

var modules = []*ModuleLogger{}

// ModuleLogger is the logger used by the specific modules. Its messages are
// prefixed with the module name and filtered by the module level.
type ModuleLogger struct {
	Name         string
	currentLevel unilogger.Level
}

// NewModuleLogger creates new module logger for given 'name' of the module.
func NewModuleLogger(name string) *ModuleLogger {
	m := &ModuleLogger{Name: name, currentLevel: currentLevel}
	modules = append(modules, m)
	return m
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return m.currentLevel
}

// SetLevel sets the module logger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.currentLevel = level
}

// IsLevelEnabled checks if the messages at 'level' would be written by the module.
func (m *ModuleLogger) IsLevelEnabled(level unilogger.Level) bool {
	return logger != nil && m.currentLevel <= level
}

// Debug3f writes the formatted debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	if m.IsLevelEnabled(LDEBUG3) {
		Debug3f(m.prefix(format), args...)
	}
}

// Debug2f writes the formatted debug2 log.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	if m.IsLevelEnabled(LDEBUG2) {
		Debug2f(m.prefix(format), args...)
	}
}

// Debugf writes the formatted debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	if m.IsLevelEnabled(LDEBUG) {
		Debugf(m.prefix(format), args...)
	}
}

// Infof writes the formatted info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	if m.IsLevelEnabled(LINFO) {
		Infof(m.prefix(format), args...)
	}
}

// Warningf writes the formatted warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	if m.IsLevelEnabled(LWARNING) {
		Warningf(m.prefix(format), args...)
	}
}

// Errorf writes the formatted error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	if m.IsLevelEnabled(LERROR) {
		Errorf(m.prefix(format), args...)
	}
}

func (m *ModuleLogger) prefix(format string) string {
	return "[" + m.Name + "] " + format
}
