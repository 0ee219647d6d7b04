package driver

import (
	"context"
	"errors"
	"math"
	"testing"

	"rpncalc/internal/token"
	"rpncalc/internal/vm"
)

func TestResultCacheRoundTrip(t *testing.T) {
	c, err := NewResultCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	tokens := []token.Token{{Kind: token.Number, Text: "1"}, {Kind: token.Plus, Text: "+"}}
	key := cacheKey(tokens)

	if _, ok := c.Lookup(key); ok {
		t.Fatal("empty cache reported a hit")
	}
	_, evalErr := (&vm.Machine{}).Run(tokens)
	if err := c.Store(key, 0, evalErr); err != nil {
		t.Fatalf("Store: %v", err)
	}

	out, ok := c.Lookup(key)
	if !ok {
		t.Fatal("expected hit after Store")
	}
	_, err = out.restore(tokens)
	var restored *vm.EvalError
	if !errors.As(err, &restored) || !errors.Is(err, vm.ErrArity) {
		t.Fatalf("restored error = %v", err)
	}
	if restored.Index != 1 || restored.Token.Text != "+" || restored.Depth != 1 {
		t.Fatalf("restored = %+v", restored)
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Fatalf("stats = %d/%d, want 1/1", hits, misses)
	}
}

func TestResultCacheKeysIgnoreSpacing(t *testing.T) {
	a := EvalString(context.Background(), "a", "1 2 +", Options{})
	b := EvalString(context.Background(), "b", "  1\t2   +\n", Options{})
	if cacheKey(a.Exprs[0].Tokens) != cacheKey(b.Exprs[0].Tokens) {
		t.Fatal("whitespace variants produced different keys")
	}
}

func TestResultCacheNonFinite(t *testing.T) {
	c, err := NewResultCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: c}

	first := EvalString(context.Background(), "x", "0 0 /", opts)
	second := EvalString(context.Background(), "x", "0 0 /", opts)
	if first.Exprs[0].Cached || !second.Exprs[0].Cached {
		t.Fatalf("cached flags = %v, %v", first.Exprs[0].Cached, second.Exprs[0].Cached)
	}
	if !math.IsNaN(second.Exprs[0].Value) {
		t.Fatalf("cached value = %v, want NaN", second.Exprs[0].Value)
	}
}

func TestResultCacheCachedErrorKeepsSpan(t *testing.T) {
	c, err := NewResultCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: c}
	EvalString(context.Background(), "x", "1 2 + q", opts)
	res := EvalString(context.Background(), "x", "1  2  +  q", opts)

	expr := res.Exprs[0]
	if !expr.Cached || !errors.Is(expr.Err, vm.ErrInvalidToken) {
		t.Fatalf("expr = %+v", expr)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Primary.Start != 9 || items[0].Primary.End != 10 {
		t.Fatalf("diagnostic span wrong: %+v", items)
	}
}

func TestResultCacheDropAll(t *testing.T) {
	c, err := NewResultCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey{1}
	if err := c.Store(key, 42, nil); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok := c.Lookup(key); ok {
		t.Fatal("entry survived DropAll")
	}
	if err := c.Store(key, 42, nil); err != nil {
		t.Fatalf("Store after DropAll: %v", err)
	}
}

func TestNilResultCache(t *testing.T) {
	var c *ResultCache
	if _, ok := c.Lookup(CacheKey{}); ok {
		t.Fatal("nil cache reported a hit")
	}
	if err := c.Store(CacheKey{}, 1, nil); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultCacheDir("rpncalc")
	if err != nil || dir != "/tmp/xdg/rpncalc" {
		t.Fatalf("DefaultCacheDir = %q, %v", dir, err)
	}
}
