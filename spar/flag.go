package spar

// flagRecord is one registry entry. The name and short alias are fixed at
// declaration time; only the value mutates, and only during Parse.
type flagRecord struct {
	name  string
	short string
	value Value
}

// Handle is a caller-held reference into a Context's flag arena. A handle is
// a stable index rather than a pointer, so it stays valid while the arena
// grows. Handles remain usable for the lifetime of their Context; Reset
// invalidates them.
type Handle struct {
	ctx   *Context
	index int
}

// Name returns the flag's canonical name.
func (h *Handle) Name() string {
	h.ctx.mu.Lock()
	defer h.ctx.mu.Unlock()
	return h.ctx.records[h.index].name
}

// Short returns the flag's short alias.
func (h *Handle) Short() string {
	h.ctx.mu.Lock()
	defer h.ctx.mu.Unlock()
	return h.ctx.records[h.index].short
}

// Value returns a snapshot copy of the flag's current value.
func (h *Handle) Value() Value {
	h.ctx.mu.Lock()
	defer h.ctx.mu.Unlock()
	return h.ctx.records[h.index].value
}

// Typed snapshot readers, for callers that know the flag's kind.

func (h *Handle) Bool() bool      { return h.Value().Bool() }
func (h *Handle) Long() int64     { return h.Value().Long() }
func (h *Handle) ULong() uint64   { return h.Value().ULong() }
func (h *Handle) Float() float32  { return h.Value().Float() }
func (h *Handle) Double() float64 { return h.Value().Double() }
func (h *Handle) Str() string     { return h.Value().Str() }
