package out

// TemplateRenderer renders named text templates.
type TemplateRenderer interface {
	// Render renders the template with the given variables.
	// Fails with domain.ErrTemplate if the template cannot be located or executed.
	Render(name string, vars map[string]any) (string, error)

	// Has reports whether a template with that name is loaded.
	Has(name string) bool
}
