// Package formula is the engine's public entry point: a single
// asynchronous-flavored Evaluate call over a source expression, a
// parameter map, and an optional custom function registry (spec.md §6).
package formula

import (
	"github.com/cwbudde/go-formula/internal/builtins"
	"github.com/cwbudde/go-formula/internal/cache"
	"github.com/cwbudde/go-formula/internal/evaluator"
	"github.com/cwbudde/go-formula/internal/paramenv"
	"github.com/cwbudde/go-formula/internal/parser"
	"github.com/cwbudde/go-formula/internal/safety"
	"github.com/cwbudde/go-formula/internal/values"
)

// Value is the result type every evaluation produces.
type Value = values.Value

// ErrorKind re-exports the engine's closed error taxonomy so callers can
// branch on spreadsheet error codes without importing internal/values.
type ErrorKind = values.ErrorKind

// FormulaError re-exports the engine's single error type.
type FormulaError = values.FormulaError

const (
	KindValueErr      = values.KindValueErr
	KindRefErr        = values.KindRefErr
	KindNameErr       = values.KindNameErr
	KindNumErr        = values.KindNumErr
	KindDivByZeroErr  = values.KindDivByZeroErr
	KindNAErr         = values.KindNAErr
	KindUnsafeErr     = values.KindUnsafeErr
	KindCompileErr    = values.KindCompileErr
	KindExpressionErr = values.KindExpressionErr
)

// AsFormulaError reports whether err is (or wraps) a *FormulaError.
func AsFormulaError(err error) (*FormulaError, bool) { return values.AsFormulaError(err) }

// Engine holds a configured evaluator: its function registry, its
// compiled-AST cache, and the safety gate applied before every parse.
// An Engine is safe for concurrent use.
type Engine struct {
	registry *builtins.Registry
	cache    *cache.Cache
	gate     func(string) error
}

// Option configures an Engine at construction, mirroring the teacher's
// lexer.LexerOption / lexer.New(input, opts...) pattern.
type Option func(*Engine)

// WithMaxCacheSize sets the compiled-AST cache's entry bound (spec.md §5;
// default cache.DefaultMaxSize).
func WithMaxCacheSize(n int) Option {
	return func(e *Engine) { e.cache.SetMaxSize(n) }
}

// WithRegistry replaces the engine's default standard-library function
// registry with reg. Use builtins.NewRegistry() plus builtins.RegisterAll
// (optionally followed by additional Register calls) to extend rather
// than replace the standard library.
func WithRegistry(reg *builtins.Registry) Option {
	return func(e *Engine) { e.registry = reg }
}

// WithSafetyGate replaces the pre-parse textual safety check (default
// safety.Check). A nil gate disables the check entirely; callers embedding
// this engine in an already-sandboxed host may want that.
func WithSafetyGate(gate func(string) error) Option {
	return func(e *Engine) { e.gate = gate }
}

// New builds an Engine with the standard built-in library, the default
// safety gate, and a cache.DefaultMaxSize-entry compiled-AST cache.
func New(opts ...Option) *Engine {
	reg := builtins.NewRegistry()
	builtins.RegisterAll(reg)

	e := &Engine{
		registry: reg,
		cache:    cache.New(cache.DefaultMaxSize),
		gate:     safety.Check,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultEngine is used by the package-level Evaluate convenience function.
var defaultEngine = New()

// Evaluate is a convenience wrapper around defaultEngine.Evaluate, matching
// spec.md §6's free-function entry point for callers that don't need a
// configured Engine.
func Evaluate(expression string, parameters map[string]Value, customRegistry *builtins.Registry) (Value, error) {
	return defaultEngine.Evaluate(expression, parameters, customRegistry)
}

// Evaluate parses (or retrieves from cache) expression, then evaluates it
// against parameters. customRegistry, if non-nil, is used in place of the
// engine's configured registry for this call only — spec.md §6's "opaque
// host-provided bundle that augments the function registry"; here it is a
// full substitute registry rather than an augmentation, since this engine
// exposes no registry-merge operation. Pass nil to use e's own registry.
//
// Evaluation has no mandated suspension points (spec.md §5) and always
// completes synchronously; the signature is plain Go rather than
// goroutine/channel-based because nothing here blocks.
func (e *Engine) Evaluate(expression string, parameters map[string]Value, customRegistry *builtins.Registry) (Value, error) {
	if e.gate != nil {
		if err := e.gate(expression); err != nil {
			return nil, err
		}
	}

	expr, ok := e.cache.Get(expression)
	if !ok {
		var err error
		expr, err = parser.Parse(expression)
		if err != nil {
			return nil, err
		}
		e.cache.Store(expression, expr)
	}

	reg := e.registry
	if customRegistry != nil {
		reg = customRegistry
	}
	ev := evaluator.New(paramenv.New(parameters), reg)
	return ev.Eval(expr)
}

// MaxCacheSize returns the engine's current compiled-AST cache bound.
func (e *Engine) MaxCacheSize() int { return e.cache.MaxSize() }

// SetMaxCacheSize updates the engine's compiled-AST cache bound.
func (e *Engine) SetMaxCacheSize(n int) { e.cache.SetMaxSize(n) }

// ClearCache empties the engine's compiled-AST cache.
func (e *Engine) ClearCache() { e.cache.Clear() }

// CacheStats returns (compiled_scripts, options_cache) per spec.md §6;
// options_cache is always 0 (see internal/cache.Stats).
func (e *Engine) CacheStats() (compiledScripts int, optionsCache int) {
	return e.cache.Stats()
}

// Registry returns the engine's configured function registry, so a
// caller can introspect it (List, Categories) or build a customRegistry
// that extends it.
func (e *Engine) Registry() *builtins.Registry { return e.registry }
