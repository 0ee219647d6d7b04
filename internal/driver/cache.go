package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"rpncalc/internal/token"
	"rpncalc/internal/vm"
)

// Current schema version - increment when Outcome format changes
const resultCacheSchemaVersion uint16 = 1

// CacheKey is the SHA-256 of an expression's canonical text (token texts
// joined by single spaces), so whitespace variants share one entry.
type CacheKey [32]byte

func cacheKey(tokens []token.Token) CacheKey {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return sha256.Sum256([]byte(strings.Join(texts, " ")))
}

// outcome kinds stored on disk
const (
	outcomeValue uint8 = iota
	outcomeArity
	outcomeInvalidToken
)

// Outcome is a cached evaluation result.
type Outcome struct {
	Schema uint16
	Kind   uint8
	Value  float64
	Index  int // offending token, -1 for the final depth check
	Depth  int
}

func outcomeOf(value float64, err error) (Outcome, bool) {
	out := Outcome{Schema: resultCacheSchemaVersion, Value: value}
	if err == nil {
		return out, true
	}
	var evalErr *vm.EvalError
	if !errors.As(err, &evalErr) {
		return out, false
	}
	switch {
	case errors.Is(err, vm.ErrArity):
		out.Kind = outcomeArity
	case errors.Is(err, vm.ErrInvalidToken):
		out.Kind = outcomeInvalidToken
	default:
		return out, false
	}
	out.Value = 0
	out.Index = evalErr.Index
	out.Depth = evalErr.Depth
	return out, true
}

// restore rebuilds the evaluation outcome, re-attaching the offending token
// from the freshly lexed tokens so spans stay correct.
func (o Outcome) restore(tokens []token.Token) (float64, error) {
	var sentinel error
	switch o.Kind {
	case outcomeValue:
		return o.Value, nil
	case outcomeArity:
		sentinel = vm.ErrArity
	default:
		sentinel = vm.ErrInvalidToken
	}
	evalErr := &vm.EvalError{Err: sentinel, Index: o.Index, Depth: o.Depth}
	if o.Index >= 0 && o.Index < len(tokens) {
		evalErr.Token = tokens[o.Index]
	}
	return 0, evalErr
}

// ResultCache stores evaluation outcomes on disk, one msgpack file per key.
// A nil *ResultCache is a valid, disabled cache. Thread-safe.
type ResultCache struct {
	mu  sync.RWMutex
	dir string

	hits   atomic.Int64
	misses atomic.Int64
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenResultCache opens (creating if needed) the cache under DefaultCacheDir.
func OpenResultCache(app string) (*ResultCache, error) {
	dir, err := DefaultCacheDir(app)
	if err != nil {
		return nil, err
	}
	return NewResultCache(dir)
}

// NewResultCache opens a cache rooted at dir.
func NewResultCache(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

func (c *ResultCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *ResultCache) pathFor(key CacheKey) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не складывать всё в одну папку
	return filepath.Join(c.dir, "results", hexKey[:2], hexKey+".mp")
}

// Lookup returns the stored outcome for key. Unreadable or stale entries
// count as misses.
func (c *ResultCache) Lookup(key CacheKey) (Outcome, bool) {
	if c == nil {
		return Outcome{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		c.misses.Add(1)
		return Outcome{}, false
	}
	var out Outcome
	if err := msgpack.Unmarshal(data, &out); err != nil || out.Schema != resultCacheSchemaVersion {
		c.misses.Add(1)
		return Outcome{}, false
	}
	c.hits.Add(1)
	return out, true
}

// Store records the outcome of an evaluation. Errors that are not
// *vm.EvalError are not cached.
func (c *ResultCache) Store(key CacheKey, value float64, evalErr error) error {
	if c == nil {
		return nil
	}
	out, ok := outcomeOf(value, evalErr)
	if !ok {
		return nil
	}
	data, err := msgpack.Marshal(&out)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

// Stats returns hit and miss counts since the cache was opened.
func (c *ResultCache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// DropAll removes every cached entry.
func (c *ResultCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем, чтобы параллельные читатели не видели полуудалённый каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
