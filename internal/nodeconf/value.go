// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nodeconf

import (
	"errors"
	"fmt"
	"strings"
)

// Value errors. A value that triggers one would be written in a form the
// parser reads back differently, or not at all.
var (
	ErrQuotedValue    = errors.New("value must not start with a backtick or \"\"\"")
	ErrMultilineValue = errors.New("value must not contain a line break")
)

// CleanValue returns value as a reload would see it: surrounding white space
// is dropped.
func CleanValue(value string) string {
	return strings.TrimSpace(value)
}

// ValidateValue reports whether the cleaned value survives save and reload
// unchanged.
func ValidateValue(value string) error {
	v := CleanValue(value)
	if strings.ContainsAny(v, "\r\n") {
		return ErrMultilineValue
	}
	if strings.HasPrefix(v, "`") || strings.HasPrefix(v, `"""`) {
		return ErrQuotedValue
	}
	return nil
}

// validateEntries checks every enabled value before a save.
func validateEntries(entries []*Entry) error {
	for _, e := range entries {
		if !e.Enabled {
			continue
		}
		if err := ValidateValue(e.Value); err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}
	}
	return nil
}
