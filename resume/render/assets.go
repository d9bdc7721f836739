package render

import (
	"embed"
	"io/fs"
)

//go:embed assets/app.js assets/styles.css
var assetFS embed.FS

// Assets returns the static files referenced by the layout, rooted so that
// app.js and styles.css are at the top level.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
