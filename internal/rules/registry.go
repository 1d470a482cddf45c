// Package rules manages registration of lint rules.
package rules

import (
	"sort"
	"sync"

	"github.com/donaldgifford/colonlint/internal/lint"
)

var (
	mu       sync.RWMutex
	registry = map[string]lint.Rule{}
)

// Register adds a rule to the registry. A later rule with the same name
// replaces the earlier one.
func Register(r lint.Rule) {
	mu.Lock()
	defer mu.Unlock()
	registry[r.Name()] = r
}

// Lookup returns the rule registered under name.
func Lookup(name string) (lint.Rule, bool) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	return r, ok
}

// All returns every registered rule sorted by name.
func All() []lint.Rule {
	mu.RLock()
	defer mu.RUnlock()

	all := make([]lint.Rule, 0, len(registry))
	for _, r := range registry {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}
