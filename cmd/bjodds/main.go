// Command bjodds is the CLI front-end for the Blackjack odds engine: it
// wires a Config to an OddsCalculator and dispatches to a single-cell
// printout, a full table sweep, or a Monte Carlo cross-check.
package main

import (
	"flag"
	"fmt"
	"os"

	"blackjackodds/internal/application"
	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/odds"
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/rules"
	"blackjackodds/internal/infrastructure/history"
	"blackjackodds/internal/infrastructure/render"
	"blackjackodds/internal/infrastructure/telemetry"
)

func main() {
	var (
		mode           = flag.String("mode", "table", "table | cell | crosscheck")
		ruleName       = flag.String("rule", "BJ", "BJ | BJS | BJV")
		counting       = flag.String("counting", "null", "null | total | partial-ajhl")
		decks          = flag.Int("decks", 0, "deck count override (0 = rule default)")
		approx2h       = flag.Bool("approx2h", false, "use the bounded two-hit lookahead instead of a single hit then stand")
		exact          = flag.Bool("exact", false, "use the exact big.Rat backend instead of float64 (table/cell modes only)")
		spaceTolerance = flag.Float64("spaceTolerance", 0, "PROB_SPACE_TOLERANCE (0 = backend default: exact for -exact, a small non-zero value otherwise)")
		eventTolerance = flag.Float64("eventTolerance", 0, "PROB_EVENT_TOLERANCE (0 = backend default)")
		pc0            = flag.Int("pc0", cards.Ten, "player's first card (cell/crosscheck mode)")
		pc1            = flag.Int("pc1", cards.Ten, "player's second card (cell/crosscheck mode)")
		houseUp        = flag.Int("house", cards.Ace, "house up-card (cell/crosscheck mode)")
		action         = flag.String("action", "S", "action to cross-check: S | H | D | P | U")
		trials         = flag.Int("trials", 20000, "crosscheck mode: number of Monte Carlo trials")
		epsilon        = flag.Float64("epsilon", 0.01, "crosscheck mode: pass/fail tolerance")
		historyCSV     = flag.String("history", "", "path to a CSV run-history log (empty disables it)")
		verbose        = flag.Bool("verbose", false, "emit structured per-cell debug logging to stderr")
	)
	flag.Parse()

	cfg := application.Config{
		Rule:           application.RuleName(*ruleName),
		Counting:       application.CountingModel(*counting),
		Decks:          *decks,
		Approx2h:       *approx2h,
		SpaceTolerance: *spaceTolerance,
		EventTolerance: *eventTolerance,
	}

	if *exact {
		if *mode == "crosscheck" {
			fmt.Fprintln(os.Stderr, "bjodds: crosscheck mode always samples against the float64 backend; drop -exact")
			os.Exit(1)
		}
		oc, err := application.BuildRational(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bjodds:", err)
			os.Exit(1)
		}
		cleanup := attachLoggers(oc, *verbose, *historyCSV, string(cfg.Counting))
		defer cleanup()
		dispatch(*mode, oc, *pc0, *houseUp, *pc1)
		return
	}

	oc, err := application.BuildFloat64(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bjodds:", err)
		os.Exit(1)
	}
	cleanup := attachLoggers(oc, *verbose, *historyCSV, string(cfg.Counting))
	defer cleanup()

	if *mode == "crosscheck" {
		runCrossCheck(cfg, *pc0, *houseUp, *pc1, rules.Action(*action), *trials, *epsilon)
		return
	}
	dispatch(*mode, oc, *pc0, *houseUp, *pc1)
}

// attachLoggers wires the optional structured-debug or CSV run-history
// logger onto oc, returning a cleanup func to defer. oc holds a single
// logger: when both are requested, the CSV run-history logger replaces the
// debug logger.
func attachLoggers[T probdist.Numeric[T]](oc *odds.OddsCalculator[T], verbose bool, historyCSV, counting string) func() {
	if verbose {
		oc.SetLogger(telemetry.New(os.Stderr))
	}
	if historyCSV == "" {
		return func() {}
	}
	logger, err := history.NewCSVLogger(historyCSV, counting)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bjodds:", err)
		os.Exit(1)
	}
	oc.SetLogger(logger)
	return logger.Close
}

func dispatch[T probdist.Numeric[T]](mode string, oc *odds.OddsCalculator[T], pc0, houseUp, pc1 int) {
	switch mode {
	case "cell":
		runCell(oc, pc0, houseUp, pc1)
	case "table":
		runTable(oc)
	default:
		fmt.Fprintf(os.Stderr, "bjodds: unknown mode %q\n", mode)
		os.Exit(1)
	}
}

func runCell[T probdist.Numeric[T]](oc *odds.OddsCalculator[T], pc0, houseUp, pc1 int) {
	results, err := oc.CalculateOdds(pc0, houseUp, &pc1)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bjodds:", err)
		os.Exit(1)
	}
	for _, r := range results {
		fmt.Printf("%-2s  %+.4f\n", r.Action, r.Value.Float64())
	}
}

func runTable[T probdist.Numeric[T]](oc *odds.OddsCalculator[T]) {
	cells, err := application.TableSweep(oc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bjodds:", err)
		os.Exit(1)
	}
	r := render.New(os.Stdout)
	r.Render(odds.Catalog(), odds.HouseUpCards(), cells)
}

func runCrossCheck(cfg application.Config, pc0, houseUp, pc1 int, action rules.Action, trials int, epsilon float64) {
	result, err := application.MonteCarloCrossCheck(cfg, pc0, houseUp, &pc1, action, trials, epsilon)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bjodds:", err)
		os.Exit(1)
	}
	status := "FAIL"
	if result.Pass {
		status = "PASS"
	}
	fmt.Printf("%s  exact=%.4f sampled=%.4f (+/-%.4f, n=%d)\n",
		status, result.ExactValue, result.SampledMean, result.CIHalfWidth, result.Trials)
}
