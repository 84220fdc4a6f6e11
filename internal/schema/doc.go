// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package schema holds the catalog of bitcoind configuration options.
//
// The catalog is a fixed, hand-maintained table. Each record names the key,
// its default value, the kind of value it takes, the category it belongs to
// and a one-line description. The table is read-only and shared by the whole
// process.
//
// # Usage
//
//	for _, opt := range schema.All() {
//	    fmt.Println(opt.Category, opt.Key, opt.Default)
//	}
//
//	if opt, ok := schema.Lookup("rpcport"); ok {
//	    fmt.Println(opt.Description)
//	}
package schema
