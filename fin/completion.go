package main

import (
	"flag"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion, it is a no-op unless the shell
// asks for completions (COMP_LINE set).
func completion(commands []subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	for _, c := range commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: flags(f)}
		switch c.Name() {
		case "trend", "set":
			sub.Args = metricNames()
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func flags(f *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			m[fl.Name] = predict.Files("*.html")
		case "data-dir", "cache-dir":
			m[fl.Name] = predict.Dirs("*")
		case "sections":
			var names []string
			for _, g := range fundamentals.Groups() {
				names = append(names, g.String())
			}
			m[fl.Name] = predict.Set(names)
		default:
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				m[fl.Name] = predict.Nothing
			} else {
				m[fl.Name] = predict.Something
			}
		}
	})
	return m
}

// metricNames predicts metric names.
func metricNames() complete.Predictor {
	var names []string
	for _, m := range fundamentals.AllMetrics() {
		names = append(names, m.Name())
	}
	return predict.Set(names)
}
