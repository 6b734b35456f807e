package cmd

import (
	"flag"

	"github.com/etnz/backoffice/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictor is implemented by commands predicting some of their flags or
// arguments ("" is the name of the arguments). A nil Predictor means the
// default prediction.
type predictor interface {
	Predict(name string) complete.Predictor
}

// Completion describes the commands of c, and the global flags, for shell
// completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine, globalPredictor{}),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs, cmd)}
		if p, ok := cmd.(predictor); ok {
			sub.Args = p.Predict("")
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagPredictors(fs *flag.FlagSet, cmd any) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	p, _ := cmd.(predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p != nil {
			if pred := p.Predict(f.Name); pred != nil {
				res[f.Name] = pred
				return
			}
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			res[f.Name] = predict.Nothing
			return
		}
		res[f.Name] = predict.Something
	})
	return res
}

type globalPredictor struct{}

func (globalPredictor) Predict(name string) complete.Predictor {
	switch name {
	case "config":
		return predict.Files("*.yaml")
	case "seed-dir":
		return predict.Dirs("*")
	case "style":
		return predict.Set{"auto", "dark", "light", "notty", "pink", "dracula", "tokyo-night", "ascii"}
	}
	return nil
}

var periods = predict.Set{"day", "week", "month", "quarter", "year"}

func (c *listCmd) Predict(name string) complete.Predictor {
	if name == "p" {
		return periods
	}
	if _, ok := c.selected[name]; !ok {
		return nil
	}
	// values come from the data, not from the page structure.
	return complete.PredictFunc(func(prefix string) []string {
		cat, err := Catalog()
		if err != nil {
			return nil
		}
		l, err := cat.Page(c.page.Name())
		if err != nil {
			return nil
		}
		for _, s := range l.Selectors() {
			if s.Name == name {
				return append([]string{s.All}, s.Values...)
			}
		}
		return nil
	})
}

func (*summaryCmd) Predict(name string) complete.Predictor {
	if name == "p" {
		return periods
	}
	return nil
}

func (*tableCmd) Predict(name string) complete.Predictor {
	if name == "f" {
		return predict.Files("*.jsonl")
	}
	return nil
}

func (*topicCmd) Predict(name string) complete.Predictor {
	if name != "" {
		return nil
	}
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return predict.Set(topics)
}
