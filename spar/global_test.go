package spar

import (
	"strconv"
	"testing"

	"github.com/sparlib/go-spar/termio"
)

// withFatalStub silences the ambient logger, swaps os.Exit for a recorder and
// resets the ambient registry around fn. It returns the exit codes captured.
func withFatalStub(t *testing.T, fn func()) []int {
	t.Helper()

	var codes []int
	origExit := osExit
	osExit = func(code int) { codes = append(codes, code) }
	termio.SetMinLevel(termio.LevelSilent)
	Default().Reset()
	defer func() {
		osExit = origExit
		termio.SetMinLevel(termio.LevelInfo)
		Default().Reset()
	}()

	fn()
	return codes
}

// TestGlobalDeclareAndParse drives the package-level surface end to end
func TestGlobalDeclareAndParse(t *testing.T) {
	codes := withFatalStub(t, func() {
		verbose := Bool("verbose", false)
		count := LongShort("count", "n", 0)
		label := String("label", "")

		Parse([]string{"--verbose", "-n", "5", "--label", "hi"})

		if !verbose.Bool() {
			t.Error("expected verbose=true")
		}
		if count.Long() != 5 {
			t.Errorf("expected count=5, got %d", count.Long())
		}
		if label.Str() != "hi" {
			t.Errorf("expected label=hi, got %q", label.Str())
		}
	})
	if len(codes) != 0 {
		t.Errorf("unexpected fatal exits: %v", codes)
	}
}

// TestGlobalParseFatal tests that an ambient parse error exits with the
// misusage code
func TestGlobalParseFatal(t *testing.T) {
	codes := withFatalStub(t, func() {
		Long("count", 0)
		Parse([]string{"--count", "abc"})
	})
	if len(codes) != 1 || codes[0] != 2 {
		t.Errorf("expected exit [2], got %v", codes)
	}
}

// TestGlobalStarvedValueFatal tests the exit code for a trailing match with
// no value token
func TestGlobalStarvedValueFatal(t *testing.T) {
	codes := withFatalStub(t, func() {
		Long("count", 0)
		Parse([]string{"--count"})
	})
	if len(codes) != 1 || codes[0] != 2 {
		t.Errorf("expected exit [2], got %v", codes)
	}
}

// TestGlobalCapacityFatal tests that overflowing the ambient registry exits
// with the general error code
func TestGlobalCapacityFatal(t *testing.T) {
	codes := withFatalStub(t, func() {
		for i := 0; i < MaxFlags+1; i++ {
			Bool("flag"+strconv.Itoa(i), false)
		}
	})
	if len(codes) != 1 || codes[0] != 1 {
		t.Errorf("expected exit [1], got %v", codes)
	}
}

// TestGlobalSetIgnoreMode tests the ambient ignore-mode toggle
func TestGlobalSetIgnoreMode(t *testing.T) {
	withFatalStub(t, func() {
		count := Long("count", 0)

		SetIgnoreMode(false)
		Parse([]string{"--/count", "7"})
		if count.Long() != 7 {
			t.Errorf("expected count=7 with ignore mode off, got %d", count.Long())
		}

		SetIgnoreMode(true)
		Parse([]string{"--/count", "3"})
		if count.Long() != 7 {
			t.Errorf("expected ignored occurrence to leave count=7, got %d", count.Long())
		}
	})
}

// TestDefineExitCode tests overriding the code mapped to an error category
func TestDefineExitCode(t *testing.T) {
	DefineExitCode(ErrorTypeParseFailure, 42)
	defer DefineExitCode(ErrorTypeParseFailure, defaultExitDefaults().MisusageError)

	codes := withFatalStub(t, func() {
		Long("count", 0)
		Parse([]string{"--count", "abc"})
	})
	if len(codes) != 1 || codes[0] != 42 {
		t.Errorf("expected exit [42], got %v", codes)
	}
}
