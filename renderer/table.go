package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/fundamentals"
	md "github.com/nao1215/markdown"
)

// TableOptions configures the financial table.
type TableOptions struct {
	Title string
	// Groups restricts the table to some statement sections, all when empty.
	Groups []fundamentals.Group
	// Trends adds the percentage change of each year next to its value.
	Trends bool
	// HideEmpty skips sections where no raw fact has been entered.
	HideEmpty bool
}

func (o TableOptions) wants(g fundamentals.Group) bool {
	if len(o.Groups) == 0 {
		return true
	}
	for _, x := range o.Groups {
		if x == g {
			return true
		}
	}
	return false
}

// TableMarkdown renders the financial table: one section per statement group, one row per
// metric and one column per year. Derived metrics are in italic.
func TableMarkdown(t *fundamentals.Table, f Formatter, opts TableOptions) string {
	var buf bytes.Buffer
	title := opts.Title
	if title == "" {
		title = "Financial Statements"
	}
	md.NewMarkdown(&buf).H1(title).Build()

	if t.Len() == 0 {
		buf.WriteString("\nNo fiscal year yet.\n")
		return buf.String()
	}

	header := []string{"Metric"}
	alignment := []md.TableAlignment{md.AlignLeft}
	for _, y := range t.Years() {
		header = append(header, y)
		alignment = append(alignment, md.AlignRight)
		if opts.Trends {
			header = append(header, "Δ")
			alignment = append(alignment, md.AlignRight)
		}
	}

	var group fundamentals.Group = -1
	var rows [][]string
	var entered bool
	flush := func() {
		if rows == nil {
			return
		}
		ConditionalBlock(&buf, func(w io.Writer) bool {
			doc := md.NewMarkdown(w)
			doc.PlainText("")
			doc.H2(group.String())
			doc.Table(md.TableSet{Header: header, Rows: rows, Alignment: alignment})
			doc.Build()
			return entered || !opts.HideEmpty
		})
		rows, entered = nil, false
	}

	for _, m := range fundamentals.AllMetrics() {
		if !opts.wants(m.Group()) {
			continue
		}
		if m.Group() != group {
			flush()
			group = m.Group()
		}
		label := m.Label()
		if m.IsDerived() {
			label = "_" + label + "_"
		}
		row := []string{label}
		changes := t.Changes(m)
		for i, y := range t.Rows() {
			v := y.Value(m)
			if !m.IsDerived() && v.IsSet() {
				entered = true
			}
			row = append(row, f.Value(m, v))
			if opts.Trends {
				row = append(row, changes[i].String())
			}
		}
		rows = append(rows, row)
	}
	flush()
	return buf.String()
}

// TrendMarkdown renders the history of a single metric with its changes.
func TrendMarkdown(t *fundamentals.Table, m fundamentals.Metric, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s trend", m.Label()))
	if d := m.Description(); d != "" {
		doc.PlainText(fmt.Sprintf("%s = %s", m.Label(), d))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", m.Label(), "Change"},
		Rows:      [][]string{},
	}
	changes := t.Changes(m)
	for i, y := range t.Rows() {
		table.Rows = append(table.Rows, []string{y.Label, f.Value(m, y.Value(m)), changes[i].String()})
	}
	doc.Table(table)

	mean, r := t.Mean(m), t.Range(m)
	doc.PlainText(fmt.Sprintf("Average: %s, range: %s", f.Value(m, mean), f.Range(r, func(n fundamentals.Number) string { return f.Value(m, n) })))
	doc.Build()
	return buf.String()
}
