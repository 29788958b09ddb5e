// Package render draws the opening-hand-by-house-up-card grid to a
// terminal, colorizing each cell by its best action via
// github.com/fatih/color.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"blackjackodds/internal/domain/odds"
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/rules"
)

// TieEpsilon is the margin within which the top two actions in a cell are
// considered tied and left uncolorized, per §4.7's table-iteration rule.
const TieEpsilon = 1e-4

var actionColor = map[rules.Action]*color.Color{
	rules.ActionHit:       color.New(color.BgGreen),
	rules.ActionStand:     color.New(color.BgRed),
	rules.ActionSurrender: color.New(color.BgMagenta),
	rules.ActionDouble:    color.New(color.BgCyan, color.FgBlack),
	rules.ActionSplit:     color.New(color.BgYellow, color.FgBlack),
}

// Cell is the reduced, float64-evaluated form of one table cell's best
// action(s), ready for display regardless of the numeric backend that
// produced it.
type Cell struct {
	Row      odds.OpeningHand
	HouseUp  int
	Best     rules.Action
	BestVal  float64
	Tied     bool
	SecondOK bool
	Second   rules.Action
}

// EvaluateCell reduces one calculateOdds call to a display Cell, applying
// the tie-epsilon rule: when the top two actions are within TieEpsilon,
// neither is colorized as definitively best.
func EvaluateCell[T probdist.Numeric[T]](row odds.OpeningHand, houseUp int, results []odds.ActionValue[T]) Cell {
	c := Cell{Row: row, HouseUp: houseUp}
	if len(results) == 0 {
		return c
	}
	c.Best = results[0].Action
	c.BestVal = results[0].Value.Float64()
	if len(results) > 1 {
		c.Second = results[1].Action
		c.SecondOK = true
		if c.BestVal-results[1].Value.Float64() < TieEpsilon {
			c.Tied = true
		}
	}
	return c
}

// TableRenderer writes the opening-hand x house-up-card grid to a sink.
type TableRenderer struct {
	Out io.Writer
}

// New builds a TableRenderer writing to out.
func New(out io.Writer) *TableRenderer {
	return &TableRenderer{Out: out}
}

func rowLabel(h odds.OpeningHand) string {
	return h.Label
}

func houseLabel(face int) string {
	switch face {
	case 0:
		return "J"
	case 1:
		return "A"
	default:
		return fmt.Sprintf("%d", face)
	}
}

// Render writes the full grid: one header row of house up-cards, then one
// row per opening hand, each cell colorized by its best action (uncolored
// when EvaluateCell marked it tied).
func (r *TableRenderer) Render(rows []odds.OpeningHand, houseUp []int, cells map[string]Cell) {
	fmt.Fprintf(r.Out, "%-6s", "")
	for _, hc := range houseUp {
		fmt.Fprintf(r.Out, "%4s", houseLabel(hc))
	}
	fmt.Fprintln(r.Out)

	for _, row := range rows {
		fmt.Fprintf(r.Out, "%-6s", rowLabel(row))
		for _, hc := range houseUp {
			key := CellKey(row, hc)
			cell, ok := cells[key]
			if !ok {
				fmt.Fprintf(r.Out, "%4s", "-")
				continue
			}
			r.renderCell(cell)
		}
		fmt.Fprintln(r.Out)
	}
}

func (r *TableRenderer) renderCell(c Cell) {
	label := fmt.Sprintf(" %-2s ", c.Best)
	if c.Tied {
		fmt.Fprint(r.Out, label)
		return
	}
	if paint, ok := actionColor[c.Best]; ok {
		fmt.Fprint(r.Out, paint.Sprint(label))
		return
	}
	fmt.Fprint(r.Out, label)
}

// CellKey builds the map key Render and any upstream producer of a cells
// map (such as a table sweep) must agree on.
func CellKey(row odds.OpeningHand, houseUp int) string {
	return fmt.Sprintf("%s|%d", row.Label, houseUp)
}

func cellKey(row odds.OpeningHand, houseUp int) string {
	return CellKey(row, houseUp)
}
