// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schema

// catalog is every option bitcoind recognizes, in display order.
// Entries are grouped by category; keep new options inside their group.
var catalog = [...]Option{
	// Core
	{Key: "datadir", Default: "", Kind: KindPath, Category: CategoryCore, Description: "Specify data directory"},
	{Key: "blocksdir", Default: "", Kind: KindPath, Category: CategoryCore, Description: "Specify blocks directory"},
	{Key: "pid", Default: "", Kind: KindPath, Category: CategoryCore, Description: "Specify pid file"},
	{Key: "debuglogfile", Default: "", Kind: KindPath, Category: CategoryCore, Description: "Specify debug log file"},
	{Key: "settings", Default: "", Kind: KindPath, Category: CategoryCore, Description: "Specify settings file"},
	{Key: "includeconf", Default: "", Kind: KindPath, Category: CategoryCore, Description: "Include additional config file"},
	{Key: "loadblock", Default: "", Kind: KindPath, Category: CategoryCore, Description: "Import blocks from external file"},
	{Key: "txindex", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Maintain full transaction index"},
	{Key: "blockfilterindex", Default: "", Kind: KindText, Category: CategoryCore, Description: "Maintain compact block filter index"},
	{Key: "coinstatsindex", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Maintain coinstats index"},
	{Key: "prune", Default: "0", Kind: KindInteger, Category: CategoryCore, Description: "Reduce storage by pruning old blocks"},
	{Key: "dbcache", Default: "450", Kind: KindInteger, Category: CategoryCore, Description: "Database cache size in MiB"},
	{Key: "maxmempool", Default: "300", Kind: KindInteger, Category: CategoryCore, Description: "Maximum mempool size in MiB"},
	{Key: "maxorphantx", Default: "100", Kind: KindInteger, Category: CategoryCore, Description: "Maximum orphan transactions"},
	{Key: "mempoolexpiry", Default: "336", Kind: KindInteger, Category: CategoryCore, Description: "Mempool expiry in hours"},
	{Key: "par", Default: "0", Kind: KindInteger, Category: CategoryCore, Description: "Script verification threads"},
	{Key: "blockreconstructionextratxn", Default: "100", Kind: KindInteger, Category: CategoryCore, Description: "Extra transactions for block reconstruction"},
	{Key: "blocksonly", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Reject transactions from network peers"},
	{Key: "persistmempool", Default: "1", Kind: KindBoolean, Category: CategoryCore, Description: "Save mempool on shutdown"},
	{Key: "reindex", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Rebuild chain state and block index"},
	{Key: "reindex-chainstate", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Rebuild chain state from blocks"},
	{Key: "sysperms", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Create files with system default permissions"},
	{Key: "daemon", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Run in background as daemon"},
	{Key: "daemonwait", Default: "0", Kind: KindBoolean, Category: CategoryCore, Description: "Wait for initialization before backgrounding"},
	{Key: "alertnotify", Default: "", Kind: KindText, Category: CategoryCore, Description: "Command to execute on alert"},
	{Key: "blocknotify", Default: "", Kind: KindText, Category: CategoryCore, Description: "Command to execute on new block"},
	{Key: "startupnotify", Default: "", Kind: KindText, Category: CategoryCore, Description: "Command to execute on startup"},
	{Key: "assumevalid", Default: "", Kind: KindText, Category: CategoryCore, Description: "Assume blocks are valid up to this hash"},

	// Network
	{Key: "chain", Default: "main", Kind: KindText, Category: CategoryNetwork, Description: "Chain to use (main, test, signet, regtest)"},
	{Key: "testnet", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "Use testnet"},
	{Key: "regtest", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "Use regtest"},
	{Key: "signet", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "Use signet"},
	{Key: "signetchallenge", Default: "", Kind: KindText, Category: CategoryNetwork, Description: "Signet challenge script"},
	{Key: "signetseednode", Default: "", Kind: KindText, Category: CategoryNetwork, Description: "Signet seed node"},
	{Key: "listen", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Accept incoming connections"},
	{Key: "bind", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "Bind to address"},
	{Key: "whitebind", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "Bind with whitelist permissions"},
	{Key: "port", Default: "8333", Kind: KindInteger, Category: CategoryNetwork, Description: "Listen on port"},
	{Key: "maxconnections", Default: "125", Kind: KindInteger, Category: CategoryNetwork, Description: "Maximum peer connections"},
	{Key: "maxreceivebuffer", Default: "5000", Kind: KindInteger, Category: CategoryNetwork, Description: "Maximum receive buffer per connection"},
	{Key: "maxsendbuffer", Default: "1000", Kind: KindInteger, Category: CategoryNetwork, Description: "Maximum send buffer per connection"},
	{Key: "maxuploadtarget", Default: "0", Kind: KindInteger, Category: CategoryNetwork, Description: "Maximum upload target in MiB per day"},
	{Key: "timeout", Default: "5000", Kind: KindInteger, Category: CategoryNetwork, Description: "Connection timeout in milliseconds"},
	{Key: "maxtimeadjustment", Default: "4200", Kind: KindInteger, Category: CategoryNetwork, Description: "Maximum time adjustment in seconds"},
	{Key: "bantime", Default: "86400", Kind: KindInteger, Category: CategoryNetwork, Description: "Ban duration in seconds"},
	{Key: "discover", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Discover own IP address"},
	{Key: "dns", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Allow DNS lookups"},
	{Key: "dnsseed", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Query DNS seeds"},
	{Key: "fixedseeds", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Use fixed seeds if DNS fails"},
	{Key: "forcednsseed", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "Always query DNS seeds"},
	{Key: "seednode", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "Connect to seed node for addresses"},
	{Key: "addnode", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "Add node to connect to"},
	{Key: "connect", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "Connect only to specified node"},
	{Key: "onlynet", Default: "", Kind: KindText, Category: CategoryNetwork, Description: "Only connect to network type"},
	{Key: "networkactive", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Enable network activity"},
	{Key: "proxy", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "SOCKS5 proxy"},
	{Key: "proxyrandomize", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Randomize proxy credentials"},
	{Key: "onion", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "SOCKS5 proxy for Tor"},
	{Key: "listenonion", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Create Tor onion service"},
	{Key: "torcontrol", Default: "127.0.0.1:9051", Kind: KindAddress, Category: CategoryNetwork, Description: "Tor control port"},
	{Key: "torpassword", Default: "", Kind: KindText, Category: CategoryNetwork, Description: "Tor control password"},
	{Key: "i2psam", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "I2P SAM proxy"},
	{Key: "i2pacceptincoming", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Accept incoming I2P connections"},
	{Key: "cjdnsreachable", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "CJDNS reachable"},
	{Key: "whitelist", Default: "", Kind: KindText, Category: CategoryNetwork, Description: "Whitelist peers"},
	{Key: "peerblockfilters", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "Serve compact block filters"},
	{Key: "peerbloomfilters", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "Support bloom filters"},
	{Key: "permitbaremultisig", Default: "1", Kind: KindBoolean, Category: CategoryNetwork, Description: "Relay bare multisig"},
	{Key: "externalip", Default: "", Kind: KindAddress, Category: CategoryNetwork, Description: "Specify external IP"},
	{Key: "upnp", Default: "0", Kind: KindBoolean, Category: CategoryNetwork, Description: "Use UPnP for port mapping"},
	{Key: "asmap", Default: "", Kind: KindPath, Category: CategoryNetwork, Description: "ASN mapping file"},

	// RPC
	{Key: "server", Default: "0", Kind: KindBoolean, Category: CategoryRPC, Description: "Accept RPC commands"},
	{Key: "rpcuser", Default: "", Kind: KindText, Category: CategoryRPC, Description: "RPC username"},
	{Key: "rpcpassword", Default: "", Kind: KindText, Category: CategoryRPC, Description: "RPC password"},
	{Key: "rpcauth", Default: "", Kind: KindText, Category: CategoryRPC, Description: "RPC auth credentials"},
	{Key: "rpccookiefile", Default: "", Kind: KindPath, Category: CategoryRPC, Description: "RPC cookie file location"},
	{Key: "rpcport", Default: "8332", Kind: KindInteger, Category: CategoryRPC, Description: "RPC port"},
	{Key: "rpcbind", Default: "", Kind: KindAddress, Category: CategoryRPC, Description: "RPC bind address"},
	{Key: "rpcallowip", Default: "", Kind: KindText, Category: CategoryRPC, Description: "Allow RPC from IP"},
	{Key: "rpcthreads", Default: "4", Kind: KindInteger, Category: CategoryRPC, Description: "RPC worker threads"},
	{Key: "rpcserialversion", Default: "1", Kind: KindInteger, Category: CategoryRPC, Description: "RPC serialization version"},
	{Key: "rpcwhitelist", Default: "", Kind: KindText, Category: CategoryRPC, Description: "RPC method whitelist"},
	{Key: "rpcwhitelistdefault", Default: "1", Kind: KindBoolean, Category: CategoryRPC, Description: "Default RPC whitelist behavior"},
	{Key: "rest", Default: "0", Kind: KindBoolean, Category: CategoryRPC, Description: "Enable REST interface"},

	// Wallet
	{Key: "disablewallet", Default: "0", Kind: KindBoolean, Category: CategoryWallet, Description: "Disable wallet"},
	{Key: "wallet", Default: "", Kind: KindPath, Category: CategoryWallet, Description: "Wallet to load"},
	{Key: "walletdir", Default: "", Kind: KindPath, Category: CategoryWallet, Description: "Wallet directory"},
	{Key: "addresstype", Default: "bech32", Kind: KindText, Category: CategoryWallet, Description: "Default address type"},
	{Key: "changetype", Default: "", Kind: KindText, Category: CategoryWallet, Description: "Change address type"},
	{Key: "fallbackfee", Default: "0.00", Kind: KindFloat, Category: CategoryWallet, Description: "Fallback fee rate"},
	{Key: "discardfee", Default: "0.0001", Kind: KindFloat, Category: CategoryWallet, Description: "Discard fee threshold"},
	{Key: "mintxfee", Default: "0.00001", Kind: KindFloat, Category: CategoryWallet, Description: "Minimum transaction fee"},
	{Key: "paytxfee", Default: "0.00", Kind: KindFloat, Category: CategoryWallet, Description: "Transaction fee rate"},
	{Key: "consolidatefeerate", Default: "0.0001", Kind: KindFloat, Category: CategoryWallet, Description: "Consolidation fee rate"},
	{Key: "maxapsfee", Default: "0.00", Kind: KindFloat, Category: CategoryWallet, Description: "Max fee for partial spend avoidance"},
	{Key: "txconfirmtarget", Default: "6", Kind: KindInteger, Category: CategoryWallet, Description: "Confirmation target blocks"},
	{Key: "spendzeroconfchange", Default: "1", Kind: KindBoolean, Category: CategoryWallet, Description: "Spend unconfirmed change"},
	{Key: "walletrbf", Default: "0", Kind: KindBoolean, Category: CategoryWallet, Description: "Enable wallet RBF"},
	{Key: "avoidpartialspends", Default: "0", Kind: KindBoolean, Category: CategoryWallet, Description: "Avoid partial spends"},
	{Key: "keypool", Default: "1000", Kind: KindInteger, Category: CategoryWallet, Description: "Keypool size"},
	{Key: "signer", Default: "", Kind: KindText, Category: CategoryWallet, Description: "External signer command"},
	{Key: "walletbroadcast", Default: "1", Kind: KindBoolean, Category: CategoryWallet, Description: "Broadcast wallet transactions"},
	{Key: "walletnotify", Default: "", Kind: KindText, Category: CategoryWallet, Description: "Command on wallet transaction"},

	// Debugging
	{Key: "debug", Default: "", Kind: KindText, Category: CategoryDebugging, Description: "Debug categories"},
	{Key: "debugexclude", Default: "", Kind: KindText, Category: CategoryDebugging, Description: "Exclude debug categories"},
	{Key: "logips", Default: "0", Kind: KindBoolean, Category: CategoryDebugging, Description: "Log IP addresses"},
	{Key: "logsourcelocations", Default: "0", Kind: KindBoolean, Category: CategoryDebugging, Description: "Log source locations"},
	{Key: "logthreadnames", Default: "0", Kind: KindBoolean, Category: CategoryDebugging, Description: "Log thread names"},
	{Key: "logtimestamps", Default: "1", Kind: KindBoolean, Category: CategoryDebugging, Description: "Log timestamps"},
	{Key: "shrinkdebugfile", Default: "1", Kind: KindBoolean, Category: CategoryDebugging, Description: "Shrink debug.log on startup"},
	{Key: "printtoconsole", Default: "0", Kind: KindBoolean, Category: CategoryDebugging, Description: "Print to console"},
	{Key: "uacomment", Default: "", Kind: KindText, Category: CategoryDebugging, Description: "User agent comment"},
	{Key: "maxtxfee", Default: "0.10", Kind: KindFloat, Category: CategoryDebugging, Description: "Maximum transaction fee"},

	// Mining
	{Key: "blockmaxweight", Default: "3996000", Kind: KindInteger, Category: CategoryMining, Description: "Maximum block weight"},
	{Key: "blockmintxfee", Default: "0.00001", Kind: KindFloat, Category: CategoryMining, Description: "Minimum block transaction fee"},

	// Relay
	{Key: "minrelaytxfee", Default: "0.00001", Kind: KindFloat, Category: CategoryRelay, Description: "Minimum relay fee"},
	{Key: "datacarrier", Default: "1", Kind: KindBoolean, Category: CategoryRelay, Description: "Relay OP_RETURN transactions"},
	{Key: "datacarriersize", Default: "83", Kind: KindInteger, Category: CategoryRelay, Description: "Maximum OP_RETURN size"},
	{Key: "bytespersigop", Default: "20", Kind: KindInteger, Category: CategoryRelay, Description: "Bytes per sigop"},
	{Key: "whitelistforcerelay", Default: "0", Kind: KindBoolean, Category: CategoryRelay, Description: "Force relay from whitelist"},
	{Key: "whitelistrelay", Default: "1", Kind: KindBoolean, Category: CategoryRelay, Description: "Relay from whitelist"},

	// ZMQ
	{Key: "zmqpubhashblock", Default: "", Kind: KindAddress, Category: CategoryZMQ, Description: "ZMQ hash block publisher"},
	{Key: "zmqpubhashtx", Default: "", Kind: KindAddress, Category: CategoryZMQ, Description: "ZMQ hash tx publisher"},
	{Key: "zmqpubrawblock", Default: "", Kind: KindAddress, Category: CategoryZMQ, Description: "ZMQ raw block publisher"},
	{Key: "zmqpubrawtx", Default: "", Kind: KindAddress, Category: CategoryZMQ, Description: "ZMQ raw tx publisher"},
	{Key: "zmqpubsequence", Default: "", Kind: KindAddress, Category: CategoryZMQ, Description: "ZMQ sequence publisher"},
}
