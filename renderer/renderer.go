// Package renderer turns personas, plans, questions and products into
// markdown, from templates embedded in the package.
//
// Assembly templates (persona.md, plan.md...) include partials named after
// them (plan_allocation.md...), declared by each Render function.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fundora"
)

//go:embed *.md
var templates embed.FS

// RenderPersona renders the outcome of the quiz for the user called name.
func RenderPersona(r fundora.PersonaResult, name string, maxScore int) string {
	return renderTemplate("persona", "persona.md", nil, NewPersona(r, name, maxScore))
}

// RenderPlan renders an allocation and its projection.
func RenderPlan(p *fundora.Plan, rates func(fundora.Category) fundora.Percent) string {
	partials := map[string]string{
		"plan_allocation": "plan_allocation.md",
		"plan_projection": "plan_projection.md",
	}
	return renderTemplate("plan", "plan.md", partials, NewPlan(p, rates))
}

// RenderQuestion renders a quiz question and its options.
func RenderQuestion(q *Question) string {
	return renderTemplate("question", "question.md", nil, q)
}

// RenderProducts renders catalog entries, with their share of an allocation
// when a is not nil.
func RenderProducts(entries []fundora.Products, a *fundora.Allocation) string {
	return renderTemplate("products", "products.md", nil, NewProducts(entries, a))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
