package site

import "embed"

//go:embed templates static
var assetsFS embed.FS
