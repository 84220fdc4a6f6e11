// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nodeconf

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"

	"github.com/jeranaias/pdm-tui/internal/schema"
)

// ProbeSections lists the file sections consulted for every key, in order.
// "" is the top-level section before any [header].
var ProbeSections = []string{"", "main", "test", "signet", "regtest"}

// ErrNotRegularFile is returned when the path names a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// OpenError reports a file that exists but could not be read.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Result is the outcome of parsing one file.
type Result struct {
	// Entries holds one entry per catalog key in catalog order, followed by
	// custom entries sorted by key.
	Entries []*Entry

	// Defaulted is set when the file was missing or malformed and every
	// entry carries its catalog default.
	Defaulted bool
	Reason    string

	// Shadowed lists keys present in more than one probed section or
	// repeated within the section that supplied the value.
	Shadowed []string
}

// Parser reconciles configuration files against the option catalog.
type Parser struct {
	log zerolog.Logger
}

// NewParser creates a parser logging through log.
func NewParser(log zerolog.Logger) *Parser {
	return &Parser{log: log.With().Str("component", "parser").Logger()}
}

// Load parses the file at path with a silent parser.
func Load(path string) (*Document, error) {
	return NewParser(zerolog.Nop()).Load(path)
}

// Load parses the file at path into a Document.
func (p *Parser) Load(path string) (*Document, error) {
	res, err := p.Parse(path)
	if err != nil {
		return nil, err
	}
	return NewDocument(path, res.Entries), nil
}

// Parse reads the file at path.
//
// A missing or malformed file is not an error: the result carries every
// catalog default, disabled, with Defaulted set. Only an existing path that
// cannot be read returns an *OpenError.
func (p *Parser) Parse(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.log.Debug().Str("path", path).Msg("config file missing, using defaults")
			return defaultedResult("file does not exist"), nil
		}
		return nil, &OpenError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &OpenError{Path: path, Err: ErrNotRegularFile}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	res := p.parseBytes(data)
	if res.Defaulted {
		p.log.Warn().Str("path", path).Str("reason", res.Reason).Msg("config file unparseable, using defaults")
	}
	return res, nil
}

// ParseBytes reconciles raw file contents against the catalog.
func (p *Parser) ParseBytes(data []byte) *Result {
	return p.parseBytes(data)
}

func (p *Parser) parseBytes(data []byte) *Result {
	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:         "=",
		IgnoreInlineComment:        true,
		IgnoreContinuation:         true,
		PreserveSurroundedQuote:    true,
		AllowShadows:               true,
		AllowDuplicateShadowValues: true,
	}, data)
	if err != nil {
		return defaultedResult(err.Error())
	}

	tables := sectionTables(f)
	res := &Result{}

	for _, entry := range defaultEntries() {
		if value, section, ok := probe(tables, entry.Key); ok {
			entry.Value = value
			entry.Enabled = true
			p.noteShadowed(res, tables, entry.Key, section)
		}
		res.Entries = append(res.Entries, entry)
	}

	for _, key := range unknownKeys(tables) {
		value, section, _ := probe(tables, key)
		p.noteShadowed(res, tables, key, section)
		res.Entries = append(res.Entries, &Entry{Key: key, Value: value, Enabled: true})
	}

	return res
}

func (p *Parser) noteShadowed(res *Result, tables []sectionTable, key, winner string) {
	var others []string
	repeats := 0
	for _, t := range tables {
		k, ok := t.keys[key]
		if !ok {
			continue
		}
		if t.name == winner {
			repeats = len(k.ValueWithShadows())
			continue
		}
		others = append(others, displaySection(t.name))
	}
	if len(others) == 0 && repeats < 2 {
		return
	}
	res.Shadowed = append(res.Shadowed, key)
	if len(others) > 0 {
		p.log.Warn().
			Str("key", key).
			Str("section", displaySection(winner)).
			Strs("ignored", others).
			Msg("key set in several sections, first probed section wins")
	}
	if repeats > 1 {
		p.log.Warn().
			Str("key", key).
			Str("section", displaySection(winner)).
			Int("count", repeats).
			Msg("key repeated in one section, last value wins")
	}
}

func defaultedResult(reason string) *Result {
	return &Result{
		Entries:   defaultEntries(),
		Defaulted: true,
		Reason:    reason,
	}
}

// =============================================================================
// SECTION PROBING
// =============================================================================

type sectionTable struct {
	name string
	keys map[string]*ini.Key
}

// sectionTables returns the probed sections present in the file, in probe
// order.
func sectionTables(f *ini.File) []sectionTable {
	var tables []sectionTable
	for _, name := range ProbeSections {
		sec, err := f.GetSection(name)
		if err != nil {
			continue
		}
		keys := make(map[string]*ini.Key)
		for _, k := range sec.Keys() {
			keys[k.Name()] = k
		}
		tables = append(tables, sectionTable{name: name, keys: keys})
	}
	return tables
}

// probe returns the value of key from the first section holding it.
func probe(tables []sectionTable, key string) (value, section string, ok bool) {
	for _, t := range tables {
		k, found := t.keys[key]
		if !found {
			continue
		}
		if v, ok := decode(k); ok {
			return v, t.name, true
		}
	}
	return "", "", false
}

// unknownKeys returns every key in the probed sections that the catalog does
// not know, sorted.
func unknownKeys(tables []sectionTable) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, t := range tables {
		for key := range t.keys {
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, known := schema.Lookup(key); !known {
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func displaySection(name string) string {
	if name == "" {
		return "top-level"
	}
	return name
}

// =============================================================================
// VALUE DECODING
// =============================================================================

// decoder turns a raw key into its stored string form.
type decoder func(k *ini.Key) (string, bool)

// decoders run in order and the first success wins. Text never fails, so
// stored values are the file's literal text; the typed decoders only apply to
// sources that cannot produce text.
var decoders = []decoder{decodeText, decodeBool, decodeInt, decodeFloat}

func decode(k *ini.Key) (string, bool) {
	for _, d := range decoders {
		if v, ok := d(k); ok {
			return v, true
		}
	}
	return "", false
}

// decodeText returns the raw text of the last occurrence of k, without
// ini.v1's %(name)s interpolation. Empty repeats are skipped.
func decodeText(k *ini.Key) (string, bool) {
	values := k.ValueWithShadows()
	if len(values) == 0 {
		return "", true
	}
	return values[len(values)-1], true
}

func decodeBool(k *ini.Key) (string, bool) {
	b, err := k.Bool()
	if err != nil {
		return "", false
	}
	if b {
		return "1", true
	}
	return "0", true
}

func decodeInt(k *ini.Key) (string, bool) {
	n, err := k.Int64()
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(n, 10), true
}

func decodeFloat(k *ini.Key) (string, bool) {
	f, err := k.Float64()
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(f, 'g', -1, 64), true
}
