package fundamentals

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	testCases := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "keeps insertion order",
			build: func(w *jsonObjectWriter) {
				w.Append("revenue", N(1000))
				w.Append("cash", N(5))
			},
			want: `{"revenue":1000,"cash":5}`,
		},
		{
			name: "optional skips absent numbers",
			build: func(w *jsonObjectWriter) {
				w.Optional("revenue", Absent)
				w.Optional("cash", N(0)) // an entered zero is kept
				w.Optional("label", "")
			},
			want: `{"cash":0}`,
		},
		{
			name: "embed object",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.Embed(json.RawMessage(`{"c":3,"d":4}`))
				w.Append("b", 2)
			},
			want: `{"a":1,"c":3,"d":4,"b":2}`,
		},
		{
			name: "embed empty object",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.Embed(json.RawMessage(`{}`))
			},
			want: `{"a":1}`,
		},
		{
			name: "embed from",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.EmbedFrom(YearlyRawFacts{Revenue: N(10)})
			},
			want: `{"a":1,"revenue":10}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
