// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nodeconf loads, edits and writes bitcoind configuration files.
//
// A file is reconciled against the option catalog in package schema: every
// catalog key becomes exactly one Entry, found keys are enabled and missing
// keys fall back to their default and stay disabled. Keys the catalog does
// not know become custom entries.
//
// # Probe Order
//
// bitcoin.conf may split options into chain sections. The parser probes the
// top-level section, then [main], [test], [signet] and [regtest], always in
// that order, and the first section holding a key wins. The order does not
// depend on which chain the daemon will run; keys set in several sections are
// reported in Result.Shadowed.
//
// # Saving
//
// Only enabled entries are written. Output is flat (no section headers) and
// grouped under "# <Category>" comment lines.
//
//	doc, err := nodeconf.Load("/home/btc/.bitcoin/bitcoin.conf")
//	if err != nil {
//	    return err
//	}
//	doc.Set("rpcport", "18332")
//	doc.Disable("txindex")
//	if err := doc.Save(); err != nil {
//	    return err
//	}
package nodeconf
