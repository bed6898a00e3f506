package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/docs"
	"github.com/etnz/fundamentals/renderer"
	"google.golang.org/genai"
)

// Workbook is everything the analyst can read about a stock.
type Workbook struct {
	Stock    string
	Table    *fundamentals.Table
	Snapshot *fundamentals.InvestmentSnapshot // nil when no snapshot has been entered
	Format   renderer.Formatter
}

// Functions returns the tools reading the workbook.
func (w *Workbook) Functions() []Function {
	return []Function{
		&Func{Decl: listMetricsDecl, Func: w.listMetrics},
		&Func{Decl: financialTableDecl, Func: w.financialTable},
		&Func{Decl: metricTrendDecl, Func: w.metricTrend},
		&Func{Decl: evaluationDecl, Func: w.evaluation},
	}
}

var listMetricsDecl = &genai.FunctionDeclaration{
	Name:        "ListMetrics",
	Description: `ListMetrics lists all the metrics of the financial statements: their name, label, statement section and formula for derived ones.`,
	Response: &genai.Schema{
		Type:        genai.TypeString,
		Description: "A markdown list of metrics.",
	},
}

func (w *Workbook) listMetrics(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	var b strings.Builder
	for _, m := range fundamentals.AllMetrics() {
		fmt.Fprintf(&b, "- %s (%s, %s)", m.Name(), m.Label(), m.Group())
		if m.IsDerived() {
			fmt.Fprintf(&b, ": %s", m.Description())
		}
		b.WriteString("\n")
	}
	return outputResponse(id, listMetricsDecl.Name, b.String())
}

var financialTableDecl = &genai.FunctionDeclaration{
	Name:        "FinancialTable",
	Description: `FinancialTable returns the financial statements of the stock, one column per fiscal year, with the percentage change of each figure.`,
	Parameters: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"section": {
				Type:        genai.TypeString,
				Description: "Restrict the table to a statement section. All sections by default.",
				Enum:        sectionNames(),
			},
		},
	},
	Response: &genai.Schema{
		Type:        genai.TypeString,
		Description: "A markdown table per statement section.",
	},
}

func sectionNames() []string {
	var names []string
	for _, g := range fundamentals.Groups() {
		names = append(names, g.String())
	}
	return names
}

func (w *Workbook) financialTable(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	opts := renderer.TableOptions{Title: w.Stock, Trends: true, HideEmpty: true}
	if v, ok := args["section"]; ok {
		name, ok := v.(string)
		if !ok {
			return errorResponse(id, financialTableDecl.Name, fmt.Errorf("argument 'section' is not a string as expected but %T", v))
		}
		g, err := fundamentals.ParseGroup(name)
		if err != nil {
			return errorResponse(id, financialTableDecl.Name, err)
		}
		opts.Groups = []fundamentals.Group{g}
		opts.HideEmpty = false
	}
	return outputResponse(id, financialTableDecl.Name, renderer.TableMarkdown(w.Table, w.Format, opts))
}

var metricTrendDecl = &genai.FunctionDeclaration{
	Name: "MetricTrend",
	Description: `MetricTrend returns the value of a single metric for every fiscal year, its percentage changes, average and range.

	` + must(docs.GetTopic("trends")),
	Parameters: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"metric": {
				Type:        genai.TypeString,
				Description: "The metric name as returned by ListMetrics, for instance 'revenue' or 'gross_margin'.",
			},
		},
		Required: []string{"metric"},
	},
	Response: &genai.Schema{
		Type:        genai.TypeString,
		Description: "A markdown table of the metric trend.",
	},
}

func (w *Workbook) metricTrend(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	v := args["metric"]
	name, ok := v.(string)
	if !ok {
		return errorResponse(id, metricTrendDecl.Name, fmt.Errorf("argument 'metric' is not a string as expected but %T", v))
	}
	m, err := fundamentals.ParseMetric(name)
	if err != nil {
		return errorResponse(id, metricTrendDecl.Name, fmt.Errorf("%w, use ListMetrics to get valid names", err))
	}
	return outputResponse(id, metricTrendDecl.Name, renderer.TrendMarkdown(w.Table, m, w.Format))
}

var evaluationDecl = &genai.FunctionDeclaration{
	Name: "Evaluation",
	Description: `Evaluation compares the current share price and trailing figures entered by the user with the financial history.

	` + must(docs.GetTopic("evaluation")),
	Response: &genai.Schema{
		Type:        genai.TypeString,
		Description: "A markdown evaluation report.",
	},
}

func (w *Workbook) evaluation(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	if w.Snapshot == nil || w.Snapshot.IsEmpty() {
		return errorResponse(id, evaluationDecl.Name, fmt.Errorf("no investment snapshot has been entered for %s", w.Stock))
	}
	e := fundamentals.Evaluate(*w.Snapshot, w.Table)
	view := renderer.NewEvaluation(w.Stock, *w.Snapshot, e, w.Format)
	return outputResponse(id, evaluationDecl.Name, renderer.RenderEvaluation(view, renderer.EvaluationRenderOptions{}))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
