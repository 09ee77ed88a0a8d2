// Package log contains the default jsonapi logger with its module subloggers.
// It is used by all packages to log their messages.
//
// The logger wraps any third-party logger implementing the uni-logger
// 'LeveledLogger' interface. When the logger implements 'DebugLeveledLogger'
// the Debug2 and Debug3 levels are forwarded, otherwise they fall back to Debug.
// No logger is set by default, which keeps the library silent.
package log
