package cmd

import (
	"github.com/etnz/pocket"
	"github.com/etnz/pocket/docs"
	"github.com/etnz/pocket/store"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the pkt command line for shell completion.
//
// Install it with "COMP_INSTALL=1 pkt".
func Completion(tree *pocket.Tree) *complete.Command {
	categories := predict.Set(tree.Names())
	markdown := map[string]complete.Predictor{"md": predict.Nothing}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"shell": {},
			"init": {
				Flags: map[string]complete.Predictor{
					"balance": predict.Something,
					"force":   predict.Nothing,
				},
			},
			"add":  {Args: categories},
			"view": {Flags: markdown},
			"delete": {
				Flags: map[string]complete.Predictor{"line": predict.Something},
				Args:  categories,
			},
			"find":       {Flags: markdown, Args: categories},
			"categories": {Flags: markdown},
			"topic":      {Args: complete.PredictFunc(predictTopics)},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*"),
			"backend":     predict.Set(store.Backends),
			"v":           predict.Nothing,
		},
	}
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme", "*")
}
