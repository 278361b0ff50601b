package assets

import (
	"embed"
	"io/fs"
)

//go:embed messages/*.yaml
var FS embed.FS

// Catalog returns the raw YAML message catalog for lang.
// The error wraps fs.ErrNotExist when no catalog ships for lang.
func Catalog(lang string) ([]byte, error) {
	return fs.ReadFile(FS, "messages/"+lang+".yaml")
}
