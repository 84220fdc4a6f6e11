// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nodeconf

import (
	"path/filepath"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/jeranaias/pdm-tui/internal/schema"
)

func enabledMap(doc *Document) map[string]string {
	m := make(map[string]string)
	for _, e := range doc.EnabledEntries() {
		m[e.Key] = e.Value
	}
	return m
}

func sameMap(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// typedValue generates what an operator can type into the edit box: printable
// ASCII or letters of any script, with optional surrounding spaces and the
// openers the parser gives a quoting meaning.
func typedValue() gopter.Gen {
	text := gen.OneGenOf(
		gen.SliceOf(gen.RuneRange(' ', '~')).Map(func(r []rune) string { return string(r) }),
		gen.UnicodeString(unicode.L),
	)
	return gopter.CombineGens(
		gen.OneConstOf("", "", "", " ", "  ", "`", `"""`, " `"),
		text,
		gen.OneConstOf("", "", " ", "  "),
	).Map(func(v []interface{}) string {
		return v[0].(string) + v[1].(string) + v[2].(string)
	})
}

func TestRoundTrip_Property(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitcoin.conf")
	opts := schema.All()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("enabled entries survive save and reload", prop.ForAll(
		func(picks []int, values []string, customs []string) bool {
			doc := NewDocument(path, defaultEntries())
			for i, idx := range picks {
				value := ""
				if len(values) > 0 {
					value = values[i%len(values)]
				}
				doc.Set(opts[idx].Key, value)
			}
			for i, name := range customs {
				value := name
				if len(values) > 0 {
					value = values[(i+1)%len(values)]
				}
				doc.AddCustom("zz"+name, value)
			}

			if validateEntries(doc.entries) != nil {
				return doc.Save() != nil
			}
			if err := doc.Save(); err != nil {
				return false
			}
			reloaded, err := Load(path)
			if err != nil {
				return false
			}
			return sameMap(enabledMap(doc), enabledMap(reloaded))
		},
		gen.SliceOf(gen.IntRange(0, len(opts)-1)),
		gen.SliceOf(typedValue()),
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("stored values are already clean", prop.ForAll(
		func(value string) bool {
			doc := NewDocument(path, defaultEntries())
			doc.Set("rpcuser", value)
			e, _ := doc.Get("rpcuser")
			return e.Value == CleanValue(e.Value)
		},
		typedValue(),
	))

	properties.Property("disabled catalog entries reload at their default", prop.ForAll(
		func(picks []int) bool {
			doc := NewDocument(path, defaultEntries())
			for _, idx := range picks {
				doc.Set(opts[idx].Key, "x")
				doc.Disable(opts[idx].Key)
			}
			if err := doc.Save(); err != nil {
				return false
			}
			reloaded, err := Load(path)
			if err != nil {
				return false
			}
			for _, idx := range picks {
				e, ok := reloaded.Get(opts[idx].Key)
				if !ok || e.Enabled || e.Value != opts[idx].Default {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(opts)-1)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
