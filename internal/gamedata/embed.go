// Package gamedata holds the embedded race and item definition files
// and the registries built from them.
package gamedata

import "embed"

//go:embed races.json items.json
var dataFS embed.FS
