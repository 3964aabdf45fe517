package spar

import (
	"strconv"
	"sync"
)

// MaxFlags is the fixed capacity of a Context's flag arena.
const MaxFlags = 256

// Context owns the authoritative value of every declared flag. Flags are
// stored by value in an append-only arena; handles index into it.
//
// A Context mixes structural mutation (declaring) with value mutation
// (parsing), so a single mutex serializes every access, including reads
// through handles. The package-level surface in global.go shares one ambient
// Context for the whole process.
type Context struct {
	mu           sync.Mutex
	records      []flagRecord
	lookup       map[string]int // name or short -> earliest-registered record
	ignorePrefix bool
	onUnknown    func(name, suggestion string)
}

// NewContext creates an empty flag registry with ignore mode enabled.
func NewContext() *Context {
	return &Context{
		records:      make([]flagRecord, 0, 16),
		lookup:       make(map[string]int, 32),
		ignorePrefix: true,
	}
}

// SetIgnoreMode enables or disables the `/` ignore marker for subsequent
// parses. It is enabled by default. When disabled, a marker present in a
// token has no effect.
func (c *Context) SetIgnoreMode(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ignorePrefix = enabled
}

// OnUnknown installs a callback observing tokens that matched no declared
// flag. Unknown tokens are never an error; the callback exists so scripts
// can surface typos. suggestion is the closest declared name within edit
// distance 2, or empty. A nil fn removes the callback.
func (c *Context) OnUnknown(fn func(name, suggestion string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnknown = fn
}

// NumFlags returns the number of declared flags.
func (c *Context) NumFlags() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Reset discards every declared flag and restores the default ignore mode.
// Issued handles become invalid. Useful for tests sharing the ambient
// Context.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = c.records[:0]
	for k := range c.lookup {
		delete(c.lookup, k)
	}
	c.ignorePrefix = true
	c.onUnknown = nil
}

// declare appends a record to the arena and returns a handle to it. When
// short is empty it defaults to the first character of name. Duplicate names
// are permitted; the lookup map only ever records the earliest registration,
// which preserves first-registered-wins matching.
func (c *Context) declare(name, short string, value Value) (*Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.records) >= MaxFlags {
		return nil, &ParseError{
			Type:    ErrorTypeCapacityExceeded,
			Message: "flag capacity exceeded (max " + strconv.Itoa(MaxFlags) + "): " + name,
			Flag:    name,
		}
	}

	if short == "" && name != "" {
		short = name[:1]
	}

	c.records = append(c.records, flagRecord{name: name, short: short, value: value})
	index := len(c.records) - 1
	if _, taken := c.lookup[name]; !taken {
		c.lookup[name] = index
	}
	if _, taken := c.lookup[short]; !taken {
		c.lookup[short] = index
	}

	return &Handle{ctx: c, index: index}, nil
}

// Declaration surface. Each method registers one flag with the given default
// and returns a handle aliasing the registry-owned value. The only
// declaration error is capacity exhaustion.

// Bool declares a boolean flag. Boolean flags are toggles: each occurrence
// on the command line inverts the current value and consumes no value token.
func (c *Context) Bool(name string, def bool) (*Handle, error) {
	return c.declare(name, "", BoolValue(def))
}

// BoolShort declares a boolean flag with an explicit short alias.
func (c *Context) BoolShort(name, short string, def bool) (*Handle, error) {
	return c.declare(name, short, BoolValue(def))
}

// Long declares a signed 64-bit integer flag.
func (c *Context) Long(name string, def int64) (*Handle, error) {
	return c.declare(name, "", LongValue(def))
}

// LongShort declares a signed 64-bit integer flag with an explicit short alias.
func (c *Context) LongShort(name, short string, def int64) (*Handle, error) {
	return c.declare(name, short, LongValue(def))
}

// ULong declares an unsigned 64-bit integer flag.
func (c *Context) ULong(name string, def uint64) (*Handle, error) {
	return c.declare(name, "", ULongValue(def))
}

// ULongShort declares an unsigned 64-bit integer flag with an explicit short alias.
func (c *Context) ULongShort(name, short string, def uint64) (*Handle, error) {
	return c.declare(name, short, ULongValue(def))
}

// Float declares a single-precision float flag.
func (c *Context) Float(name string, def float32) (*Handle, error) {
	return c.declare(name, "", FloatValue(def))
}

// FloatShort declares a single-precision float flag with an explicit short alias.
func (c *Context) FloatShort(name, short string, def float32) (*Handle, error) {
	return c.declare(name, short, FloatValue(def))
}

// Double declares a double-precision float flag.
func (c *Context) Double(name string, def float64) (*Handle, error) {
	return c.declare(name, "", DoubleValue(def))
}

// DoubleShort declares a double-precision float flag with an explicit short alias.
func (c *Context) DoubleShort(name, short string, def float64) (*Handle, error) {
	return c.declare(name, short, DoubleValue(def))
}

// String declares a string flag. A parsed token that starts with a double
// quote is stored with its first and last byte removed.
func (c *Context) String(name, def string) (*Handle, error) {
	return c.declare(name, "", StringValue(def))
}

// StringShort declares a string flag with an explicit short alias.
func (c *Context) StringShort(name, short, def string) (*Handle, error) {
	return c.declare(name, short, StringValue(def))
}
