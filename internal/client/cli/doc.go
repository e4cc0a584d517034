// Package cli provides the interactive LocAgri command-line client.
//
// It wires configuration, the local session cache, the remote store client
// and an interactive REPL. The available commands follow the router's
// current flow:
//
//	auth flow:  login, register
//	main flow:  list, search <text>, refresh, show <cin>, map [cin], back, logout
//
// help and exit are always available. The REPL is started via App.Run,
// which blocks until the user exits.
package cli
