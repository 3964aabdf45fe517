package spar

import (
	"os"

	"github.com/sparlib/go-spar/termio"
)

// The package-level surface mirrors the ergonomics of single-file scripts:
// one ambient registry for the whole process, declaration helpers that
// cannot fail from the caller's point of view, and a Parse that terminates
// the process on malformed input. Library code that needs recoverable
// errors should create its own Context instead.

var defaultContext = NewContext()

// osExit is swapped out by tests exercising the fatal paths.
var osExit = os.Exit

// Default returns the ambient process-wide Context backing the package-level
// helpers. It is intentionally a single shared instance; all access to it is
// serialized by its internal lock.
func Default() *Context { return defaultContext }

// Parse runs the ambient Context's parser over args (by convention
// os.Args[1:]). Any parse error is fatal: it is logged and the process exits
// with the code mapped for the error category.
func Parse(args []string) {
	if err := defaultContext.Parse(args); err != nil {
		termio.Errorf("%v", err)
		osExit(exitCodes.resolve(err))
	}
}

// SetIgnoreMode toggles the `/` ignore marker on the ambient Context.
func SetIgnoreMode(enabled bool) { defaultContext.SetIgnoreMode(enabled) }

func mustDeclare(h *Handle, err error) *Handle {
	if err != nil {
		termio.Errorf("%v", err)
		osExit(exitCodes.resolve(err))
	}
	return h
}

// Bool declares a boolean toggle flag on the ambient Context.
func Bool(name string, def bool) *Handle {
	return mustDeclare(defaultContext.Bool(name, def))
}

// BoolShort declares a boolean toggle flag with an explicit short alias.
func BoolShort(name, short string, def bool) *Handle {
	return mustDeclare(defaultContext.BoolShort(name, short, def))
}

// Long declares a signed 64-bit integer flag on the ambient Context.
func Long(name string, def int64) *Handle {
	return mustDeclare(defaultContext.Long(name, def))
}

// LongShort declares a signed 64-bit integer flag with an explicit short alias.
func LongShort(name, short string, def int64) *Handle {
	return mustDeclare(defaultContext.LongShort(name, short, def))
}

// ULong declares an unsigned 64-bit integer flag on the ambient Context.
func ULong(name string, def uint64) *Handle {
	return mustDeclare(defaultContext.ULong(name, def))
}

// ULongShort declares an unsigned 64-bit integer flag with an explicit short alias.
func ULongShort(name, short string, def uint64) *Handle {
	return mustDeclare(defaultContext.ULongShort(name, short, def))
}

// Float declares a single-precision float flag on the ambient Context.
func Float(name string, def float32) *Handle {
	return mustDeclare(defaultContext.Float(name, def))
}

// FloatShort declares a single-precision float flag with an explicit short alias.
func FloatShort(name, short string, def float32) *Handle {
	return mustDeclare(defaultContext.FloatShort(name, short, def))
}

// Double declares a double-precision float flag on the ambient Context.
func Double(name string, def float64) *Handle {
	return mustDeclare(defaultContext.Double(name, def))
}

// DoubleShort declares a double-precision float flag with an explicit short alias.
func DoubleShort(name, short string, def float64) *Handle {
	return mustDeclare(defaultContext.DoubleShort(name, short, def))
}

// String declares a string flag on the ambient Context.
func String(name, def string) *Handle {
	return mustDeclare(defaultContext.String(name, def))
}

// StringShort declares a string flag with an explicit short alias.
func StringShort(name, short, def string) *Handle {
	return mustDeclare(defaultContext.StringShort(name, short, def))
}
