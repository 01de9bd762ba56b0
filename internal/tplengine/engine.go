// Package tplengine renders the variable references inside a task's code
// before the code is handed to its execution collaborator. References use
// Go template syntax ({{ .name }}) over a flat map of model attributes
// overlaid by the owning group's variables; sprig supplies the usual helper
// functions. An unresolved reference is a render error, never an empty
// substitution.
package tplengine

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// HasTemplate reports whether the code contains template markers at all.
// Plain code skips the render entirely so a script full of shell braces
// is never misparsed.
func HasTemplate(code string) bool {
	return strings.Contains(code, "{{")
}

// Render substitutes every reference in code against data. Missing keys
// and syntax errors are returned as errors.
func Render(code string, data map[string]any) (string, error) {
	if !HasTemplate(code) {
		return code, nil
	}

	tmpl, err := template.New("code").Option("missingkey=error").Funcs(sprig.FuncMap()).Parse(code)
	if err != nil {
		return "", fmt.Errorf("failed to parse code template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to resolve variable references: %w", err)
	}
	return buf.String(), nil
}
