package scaffold

import "embed"

// scaffoldFS holds the template files rendered by this package.
//
//go:embed templates
var scaffoldFS embed.FS
