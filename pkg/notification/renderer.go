package notification

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
)

//go:embed templates/email
var templateFiles embed.FS

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Renderer loads named HTML templates from an asset store and substitutes
// {{name}} placeholders.
type Renderer struct {
	assets fs.FS
}

// NewRenderer creates a renderer over the given asset store. Templates are
// addressed as "<name>.html" relative to the store root.
func NewRenderer(assets fs.FS) *Renderer {
	return &Renderer{
		assets: assets,
	}
}

// NewBuiltinRenderer creates a renderer over the templates embedded in this
// package.
func NewBuiltinRenderer() *Renderer {
	sub, err := fs.Sub(templateFiles, "templates/email")
	if err != nil {
		// The embedded directory is part of the build; Sub only fails on
		// an invalid path.
		panic(err)
	}
	return NewRenderer(sub)
}

// Render loads the named template and replaces every {{key}} occurrence for
// each key in vars with its value. Substitution is a single pass over the
// template text: values are never re-scanned for placeholder syntax, and
// placeholders with no matching key are left verbatim.
func (r *Renderer) Render(name string, vars map[string]string) (string, error) {
	content, err := fs.ReadFile(r.assets, name+".html")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateMissing, name)
	}

	html := placeholderPattern.ReplaceAllStringFunc(string(content), func(match string) string {
		key := match[2 : len(match)-2]
		if value, ok := vars[key]; ok {
			return value
		}
		return match
	})
	return html, nil
}
