// Package layout resolves where generated and deployed scripts live. Three
// tiers exist: the current working directory for project-local scripts, a
// flat managed bin directory for infrastructure scripts, and per-script
// project directories with a launcher symlink for standalone tools. Base
// directories come from PAI_BIN_DIR and PAI_SCRIPTS_DIR, then the user
// config file, then defaults under ~/.pai.
package layout
