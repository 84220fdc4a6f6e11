// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schema

import (
	"strings"
	"sync"
)

// =============================================================================
// VALUE KINDS
// =============================================================================

// Kind describes what sort of value an option holds. It is display metadata
// only: values are always stored as strings and never checked against it.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindFloat
	KindText
	KindPath
	KindAddress
)

// String returns the lower-case display name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "bool"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindPath:
		return "path"
	case KindAddress:
		return "address"
	default:
		return "unknown"
	}
}

// =============================================================================
// CATEGORIES
// =============================================================================

// Category groups options by the daemon subsystem they configure.
type Category int

const (
	CategoryCore Category = iota
	CategoryNetwork
	CategoryRPC
	CategoryWallet
	CategoryDebugging
	CategoryMining
	CategoryRelay
	CategoryZMQ
)

var categoryNames = [...]string{
	CategoryCore:      "Core",
	CategoryNetwork:   "Network",
	CategoryRPC:       "RPC",
	CategoryWallet:    "Wallet",
	CategoryDebugging: "Debugging",
	CategoryMining:    "Mining",
	CategoryRelay:     "Relay",
	CategoryZMQ:       "ZMQ",
}

// String returns the category's display name, e.g. "RPC".
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories returns every category in serialization order.
func Categories() []Category {
	return []Category{
		CategoryCore,
		CategoryNetwork,
		CategoryRPC,
		CategoryWallet,
		CategoryDebugging,
		CategoryMining,
		CategoryRelay,
		CategoryZMQ,
	}
}

// ParseCategory resolves a category by name, ignoring case.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return 0, false
}

// =============================================================================
// OPTIONS
// =============================================================================

// Option is the catalog record for one recognized configuration key.
type Option struct {
	Key         string
	Default     string
	Kind        Kind
	Category    Category
	Description string
}

// IsBoolean reports whether the option is toggled rather than edited.
func (o *Option) IsBoolean() bool {
	return o.Kind == KindBoolean
}

var (
	indexOnce sync.Once
	index     map[string]*Option
)

// All returns the catalog in its fixed order. The returned slice is a copy;
// callers may reorder it freely.
func All() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog[:])
	return out
}

// Len returns the number of options in the catalog.
func Len() int {
	return len(catalog)
}

// Lookup returns the catalog record for key. The pointer refers to the
// shared, read-only catalog and must not be modified.
func Lookup(key string) (*Option, bool) {
	indexOnce.Do(func() {
		index = make(map[string]*Option, len(catalog))
		for i := range catalog {
			index[catalog[i].Key] = &catalog[i]
		}
	})
	opt, ok := index[key]
	return opt, ok
}

// ByCategory returns the options of one category in catalog order.
func ByCategory(c Category) []Option {
	var out []Option
	for _, opt := range catalog {
		if opt.Category == c {
			out = append(out, opt)
		}
	}
	return out
}
