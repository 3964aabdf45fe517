package spar

import (
	"errors"
	"sync"
)

// ExitCodeDefaults holds the codes used when no category mapping matches.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// exitCodeManager maps error categories to process exit codes for the fatal
// package-level surface. Malformed command lines map to the conventional
// misusage code; capacity exhaustion is a programming error and maps to the
// general code.
type exitCodeManager struct {
	mu       sync.Mutex
	codes    map[ErrorType]int
	defaults ExitCodeDefaults
}

func newExitCodeManager() *exitCodeManager {
	m := &exitCodeManager{
		codes:    make(map[ErrorType]int),
		defaults: defaultExitDefaults(),
	}
	m.codes[ErrorTypeParseFailure] = m.defaults.MisusageError
	m.codes[ErrorTypeStarvedValue] = m.defaults.MisusageError
	m.codes[ErrorTypeCapacityExceeded] = m.defaults.GeneralError
	m.codes[ErrorTypeInternal] = m.defaults.GeneralError
	return m
}

// resolve converts an error to an exit code according to its category.
func (m *exitCodeManager) resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		m.mu.Lock()
		code, ok := m.codes[pe.Type]
		m.mu.Unlock()
		if ok {
			return code
		}
	}
	return m.defaults.GeneralError
}

var exitCodes = newExitCodeManager()

// DefineExitCode overrides the exit code used for an error category by the
// fatal package-level surface (Parse and the package-level declare helpers).
// Safe to call from any goroutine.
func DefineExitCode(typ ErrorType, code int) {
	exitCodes.mu.Lock()
	exitCodes.codes[typ] = code
	exitCodes.mu.Unlock()
}
