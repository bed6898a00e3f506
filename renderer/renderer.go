package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// EvaluationRenderOptions holds configuration for rendering an evaluation report.
type EvaluationRenderOptions struct {
	SkipDecision bool // Do not render the stock type, action and reasoning.
}

// RenderEvaluation renders the evaluation of a snapshot to a markdown string.
func RenderEvaluation(e *Evaluation, opts EvaluationRenderOptions) string {
	partials := map[string]string{
		"evaluation_title":   "evaluation_title.md",
		"evaluation_figures": "evaluation_figures.md",
	}
	// An empty file name results in an empty template.
	if !opts.SkipDecision {
		partials["evaluation_decision"] = "evaluation_decision.md"
	} else {
		partials["evaluation_decision"] = ""
	}
	return renderTemplate("evaluation", "evaluation.md", partials, e)
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
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
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
