// Package assets holds the default frontend compiled into the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Frontend returns the embedded frontend rooted at its static directory.
func Frontend() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // path is fixed at compile time
	}
	return sub
}
