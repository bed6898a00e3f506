package renderer

import (
	"bytes"
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"
	"text/template"
)

//go:embed testdata/*.json
var testcasesFS embed.FS

var fixPartials = flag.Bool("fix-partials", false, "if true, update failing partial test case .md files with the received output")

func TestFixPartialsIsOff(t *testing.T) {
	if *fixPartials {
		t.Fatal("-fix-partials is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// readEvaluation loads an evaluation view from testdata.
func readEvaluation(t *testing.T, file string) *Evaluation {
	t.Helper()
	data, err := testcasesFS.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read struct file %q: %v", file, err)
	}
	e := new(Evaluation)
	if err := json.Unmarshal(data, e); err != nil {
		t.Fatalf("failed to unmarshal struct data from %q: %v", file, err)
	}
	return e
}

// checkGolden compares got with the golden file, or rewrites it in fix mode.
func checkGolden(t *testing.T, goldenFile, got string) {
	t.Helper()
	golden, err := os.ReadFile(goldenFile)
	if err != nil {
		if !os.IsNotExist(err) || !*fixPartials {
			t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
		}
	}
	want := string(golden)
	if got == want {
		return
	}
	if *fixPartials {
		if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write updated golden file %q: %v", goldenFile, err)
		}
		t.Logf("updated golden file %s", goldenFile)
		return
	}
	t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", goldenFile, createDiff(want, got))
}

func TestTemplatePartials(t *testing.T) {
	testCases := []struct {
		name       string
		structFile string
		goldenFile string
	}{
		{
			name:       "evaluation_title",
			structFile: "testdata/evaluation.json",
			goldenFile: "testdata/evaluation_title.md",
		},
		{
			name:       "evaluation_figures",
			structFile: "testdata/evaluation.json",
			goldenFile: "testdata/evaluation_figures.md",
		},
		{
			name:       "evaluation_decision",
			structFile: "testdata/evaluation.json",
			goldenFile: "testdata/evaluation_decision.md",
		},
	}

	// Every partial template must have a test case.
	tested := make(map[string]bool)
	for _, tc := range testCases {
		tested[tc.name+".md"] = true
	}
	files, err := fs.Glob(templates, "*_*.md")
	if err != nil {
		t.Fatalf("failed to list templates: %v", err)
	}
	for _, f := range files {
		if !tested[f] {
			t.Errorf("untested template partial found: %s. Please add a test case to TestTemplatePartials.", f)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := readEvaluation(t, tc.structFile)

			content, err := fs.ReadFile(templates, tc.name+".md")
			if err != nil {
				t.Fatalf("failed to read template file: %v", err)
			}
			tmpl, err := template.New(tc.name).Parse(string(content))
			if err != nil {
				t.Fatalf("failed to parse template %q: %v", tc.name, err)
			}
			var out bytes.Buffer
			if err := tmpl.Execute(&out, data); err != nil {
				t.Fatalf("failed to execute template %q: %v", tc.name, err)
			}
			checkGolden(t, tc.goldenFile, out.String())
		})
	}
}

func TestRenderEvaluation(t *testing.T) {
	testCases := []struct {
		name       string
		opts       EvaluationRenderOptions
		goldenFile string
	}{
		{
			name:       "full",
			goldenFile: "testdata/evaluation_assembly.md",
		},
		{
			name:       "skip_decision",
			opts:       EvaluationRenderOptions{SkipDecision: true},
			goldenFile: "testdata/evaluation_skip_decision_assembly.md",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := readEvaluation(t, "testdata/evaluation.json")
			checkGolden(t, tc.goldenFile, RenderEvaluation(e, tc.opts))
		})
	}
}

func TestRenderEvaluation_NoStock(t *testing.T) {
	e := readEvaluation(t, "testdata/evaluation.json")
	e.Stock = ""
	got := RenderEvaluation(e, EvaluationRenderOptions{SkipDecision: true})
	if !strings.HasPrefix(got, "# Investment Evaluation\n") {
		t.Errorf("RenderEvaluation() title = %q, want no stock name", strings.SplitN(got, "\n", 2)[0])
	}
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}
