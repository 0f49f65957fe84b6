// Package prompttemplate implements the TemplateRenderer interface with text/template.
package prompttemplate

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/bnema/zerowrap"

	"github.com/platelens/platelens/internal/domain"
)

const templateExt = ".tmpl"

//go:embed templates/*.tmpl
var builtin embed.FS

// Builtin returns the templates shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer implements the TemplateRenderer interface.
// Templates are parsed once at construction; Render never touches the filesystem.
type Renderer struct {
	templates map[string]*template.Template
	log       zerowrap.Logger
}

// New parses every *.tmpl file at the root of fsys. A template is addressed by
// its file name without extension. Parse failures are wrapped in domain.ErrTemplate.
func New(fsys fs.FS, log zerowrap.Logger) (*Renderer, error) {
	matches, err := fs.Glob(fsys, "*"+templateExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTemplate, err)
	}

	r := &Renderer{
		templates: make(map[string]*template.Template, len(matches)),
		log:       log,
	}

	for _, file := range matches {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrTemplate, file, err)
		}

		name := strings.TrimSuffix(path.Base(file), templateExt)
		tmpl, err := template.New(name).
			Option("missingkey=error").
			Funcs(funcs()).
			Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrTemplate, file, err)
		}
		r.templates[name] = tmpl
	}

	log.Debug().Int("count", len(r.templates)).Msg("prompt templates loaded")
	return r, nil
}

// Has reports whether a template with that name was loaded.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// Render executes the named template with vars.
func (r *Renderer) Render(name string, vars map[string]any) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: template %q not found", domain.ErrTemplate, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTemplate, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"healthTags": func() string {
			tags := make([]string, len(domain.HealthTags))
			for i, t := range domain.HealthTags {
				tags[i] = string(t)
			}
			return strings.Join(tags, ", ")
		},
	}
}
