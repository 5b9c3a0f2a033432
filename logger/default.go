package logger

import (
	"sync"

	"github.com/philipp01105/domainlog/core"
)

var (
	instance   *Logger
	instanceMu sync.Mutex
)

// GetInstance returns the process-wide Logger, creating it with opts on
// first use. Once an instance exists opts are ignored.
func GetInstance(opts ...Option) *Logger {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance = New(opts...)
	}
	return instance
}

// ResetInstance discards the process-wide Logger so the next
// GetInstance builds a fresh one. References to the old Logger stay
// usable.
func ResetInstance() {
	instanceMu.Lock()
	instance = nil
	instanceMu.Unlock()
}

// Package-level convenience functions using the process-wide logger

// Log logs a message at level using the process-wide logger
func Log(level core.Level, domain, message string, aux ...any) error {
	return GetInstance().Log(level, domain, message, aux...)
}

// Debug logs a debug message using the process-wide logger
func Debug(domain, message string, aux ...any) error {
	return GetInstance().Debug(domain, message, aux...)
}

// Info logs an info message using the process-wide logger
func Info(domain, message string, aux ...any) error {
	return GetInstance().Info(domain, message, aux...)
}

// Warn logs a warning message using the process-wide logger
func Warn(domain, message string, aux ...any) error {
	return GetInstance().Warn(domain, message, aux...)
}

// Error logs an error message using the process-wide logger
func Error(domain, message string, aux ...any) error {
	return GetInstance().Error(domain, message, aux...)
}
