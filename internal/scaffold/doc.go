// Package scaffold generates Typer + Rich command-line scripts from embedded
// templates. It powers the "cli new" command, producing the script file for
// project and bin tiers, and the full project layout (script, requirements,
// README, gitignore) for the standalone tier.
package scaffold
