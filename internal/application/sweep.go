package application

import (
	"runtime"
	"sync"

	"blackjackodds/internal/domain/odds"
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/infrastructure/render"
)

type sweepJob struct {
	row     odds.OpeningHand
	houseUp int
}

type sweepOutcome struct {
	job  sweepJob
	cell render.Cell
	err  error
}

// TableSweep runs oc.CalculateOdds over the full opening-hand x
// house-up-card catalog, fanning the work out across a bounded pool of
// runtime.NumCPU() workers, and reduces every cell to its display form.
// The returned map is keyed the way render.TableRenderer.Render expects.
func TableSweep[T probdist.Numeric[T]](oc *odds.OddsCalculator[T]) (map[string]render.Cell, error) {
	rows := odds.Catalog()
	houseUp := odds.HouseUpCards()

	jobs := make(chan sweepJob, len(rows)*len(houseUp))
	for _, row := range rows {
		for _, hc := range houseUp {
			jobs <- sweepJob{row: row, houseUp: hc}
		}
	}
	close(jobs)

	outcomes := make(chan sweepOutcome, len(rows)*len(houseUp))
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				pc1 := job.row.PC1
				results, err := oc.CalculateOdds(job.row.PC0, job.houseUp, &pc1)
				if err != nil {
					outcomes <- sweepOutcome{job: job, err: err}
					continue
				}
				outcomes <- sweepOutcome{job: job, cell: render.EvaluateCell(job.row, job.houseUp, results)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	cells := make(map[string]render.Cell, len(rows)*len(houseUp))
	for o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		cells[render.CellKey(o.job.row, o.job.houseUp)] = o.cell
	}
	return cells, nil
}
