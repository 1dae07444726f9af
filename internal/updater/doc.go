// Package updater checks GitHub for newer releases of the CLI itself.
// Checks are cached on disk and refreshed in the background so normal
// command invocations never wait on the network.
package updater
