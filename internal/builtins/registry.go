// Package builtins implements the spreadsheet-compatible function library
// described in spec.md §4.G: a name-indexed registry of 30+ functions,
// each with a precise coercion/flatten/null-handling/error contract.
package builtins

import (
	"sort"
	"strings"
	"sync"

	"github.com/cwbudde/go-formula/internal/values"
)

// Value is the shared value type built-ins operate on.
type Value = values.Value

// Func is the signature every built-in function implements.
type Func func(args []Value) (Value, error)

// Category groups related functions for introspection (registry.List, the
// CLI's --list flag).
type Category string

const (
	CategoryAggregate            Category = "aggregate"
	CategoryMath                 Category = "math"
	CategoryLogical              Category = "logical"
	CategoryConditional          Category = "conditional"
	CategoryText                 Category = "text"
	CategoryData                 Category = "data"
	CategoryPredicate            Category = "predicate"
	CategoryConditionalAggregate Category = "conditional-aggregate"
)

// FunctionInfo holds metadata about a registered built-in.
type FunctionInfo struct {
	Name        string
	Function    Func
	Category    Category
	Description string
}

// Registry is a case-insensitive name -> built-in function table.
// Concurrent lookups and registrations are safe.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*FunctionInfo
	categories map[Category][]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:  make(map[string]*FunctionInfo),
		categories: make(map[Category][]string),
	}
}

// Register adds (or replaces) a built-in function under name. Function
// name lookup is case-insensitive, per spec.md §6's dispatch guidance,
// but the canonical Name recorded in FunctionInfo preserves the casing
// this call was registered with.
func (r *Registry) Register(name string, fn Func, category Category, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.functions[key]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.functions[key] = &FunctionInfo{
		Name:        name,
		Function:    fn,
		Category:    category,
		Description: description,
	}
}

// Lookup returns the function registered under name (case-insensitive)
// and whether it was found.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.functions[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return info.Function, true
}

// List returns every registered function's metadata, sorted by name.
func (r *Registry) List() []FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]FunctionInfo, 0, len(r.functions))
	for _, info := range r.functions {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Categories returns the set of categories with at least one registered
// function, sorted alphabetically.
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, 0, len(r.categories))
	for c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
