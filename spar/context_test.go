package spar

import (
	"strconv"
	"sync"
	"testing"
)

// TestDefaultShortAlias tests that the short alias defaults to the first
// character of the canonical name
func TestDefaultShortAlias(t *testing.T) {
	ctx := NewContext()
	count, _ := ctx.Long("count", 0)

	if count.Short() != "c" {
		t.Errorf("expected short=c, got %q", count.Short())
	}
	if err := ctx.Parse([]string{"-c", "4"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if count.Long() != 4 {
		t.Errorf("expected count=4 via default alias, got %d", count.Long())
	}
}

// TestExplicitShortAlias tests the *Short declaration variants
func TestExplicitShortAlias(t *testing.T) {
	ctx := NewContext()
	count, _ := ctx.LongShort("count", "n", 0)

	if count.Name() != "count" || count.Short() != "n" {
		t.Errorf("unexpected handle identity: %q/%q", count.Name(), count.Short())
	}
	if err := ctx.Parse([]string{"-n", "6"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if count.Long() != 6 {
		t.Errorf("expected count=6, got %d", count.Long())
	}
}

// TestCapacity tests that the 256th declaration succeeds and the 257th
// fails with the capacity category
func TestCapacity(t *testing.T) {
	ctx := NewContext()
	for i := 0; i < MaxFlags; i++ {
		if _, err := ctx.Long("flag"+strconv.Itoa(i), 0); err != nil {
			t.Fatalf("declaration %d failed: %v", i, err)
		}
	}
	if ctx.NumFlags() != MaxFlags {
		t.Fatalf("expected %d flags, got %d", MaxFlags, ctx.NumFlags())
	}

	_, err := ctx.Long("overflow", 0)
	if err == nil {
		t.Fatal("expected capacity error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Type != ErrorTypeCapacityExceeded {
		t.Errorf("expected %s, got %s", ErrorTypeCapacityExceeded, pe.Type)
	}
}

// TestHandleSnapshot tests that Value returns a copy detached from later
// mutation
func TestHandleSnapshot(t *testing.T) {
	ctx := NewContext()
	count, _ := ctx.Long("count", 1)

	before := count.Value()
	if err := ctx.Parse([]string{"--count", "9"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if before.Long() != 1 {
		t.Errorf("snapshot mutated: got %d, want 1", before.Long())
	}
	if count.Value().Long() != 9 {
		t.Errorf("fresh snapshot = %d, want 9", count.Value().Long())
	}
}

// TestHandleValidAcrossGrowth tests that handles stay valid while the arena
// reallocates under later declarations
func TestHandleValidAcrossGrowth(t *testing.T) {
	ctx := NewContext()
	first, _ := ctx.Long("first", 0)
	for i := 0; i < 64; i++ {
		_, _ = ctx.Long("filler"+strconv.Itoa(i), 0)
	}

	if err := ctx.Parse([]string{"--first", "5"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if first.Long() != 5 {
		t.Errorf("handle lost its record after growth: got %d", first.Long())
	}
}

// TestReset tests that Reset empties the registry and restores ignore mode
func TestReset(t *testing.T) {
	ctx := NewContext()
	_, _ = ctx.Bool("verbose", false)
	ctx.SetIgnoreMode(false)

	ctx.Reset()
	if ctx.NumFlags() != 0 {
		t.Errorf("expected empty registry, got %d flags", ctx.NumFlags())
	}

	// Same name is registrable again and ignore mode is back on.
	count, _ := ctx.Long("count", 0)
	if err := ctx.Parse([]string{"--/count", "7"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if count.Long() != 0 {
		t.Errorf("expected ignore mode restored after Reset, got count=%d", count.Long())
	}
}

// TestConcurrentHandleReads tests that handle reads are serialized against
// parsing (run with -race)
func TestConcurrentHandleReads(t *testing.T) {
	ctx := NewContext()
	count, _ := ctx.Long("count", 0)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = count.Value()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		if err := ctx.Parse([]string{"--count", "1"}); err != nil {
			t.Errorf("Parse failed: %v", err)
			break
		}
	}
	wg.Wait()
}
