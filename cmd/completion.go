package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictWindow = predict.Set{"YTD", "1Y", "2Y", "5Y", "all"}
	predictPeriod = predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"}
	predictDate   = predict.Set{"0d", "-1d", "-1w", "-1m", "-1y"}
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"balances": predict.Files("*.csv"),
			"accounts": predict.Files("*.csv"),
		},
		Sub: map[string]*complete.Command{
			"summary":  {},
			"accounts": {},
			"topic":    {Args: predict.Set{"inputs", "dates", "windows", "composition", "server", "configuration"}},
			"totals": {Flags: map[string]complete.Predictor{
				"w": predictWindow,
				"p": predictPeriod,
			}},
			"types": {Flags: map[string]complete.Predictor{
				"w": predictWindow,
				"p": predictPeriod,
			}},
			"composition": {Flags: map[string]complete.Predictor{
				"d":    predictDate,
				"area": predictDate,
			}},
			"balances": {Flags: map[string]complete.Predictor{
				"a": predict.Something,
				"w": predictWindow,
			}},
			"serve": {Flags: map[string]complete.Predictor{
				"port": predict.Something,
			}},
		},
	}
}
