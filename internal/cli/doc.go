// Package cli wires up the cobra command tree. Each command lives in its
// own file and delegates the real work to the internal packages.
package cli
