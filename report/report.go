// SPDX-License-Identifier: MIT

// Package report renders a solver.Result as the human-readable console
// report: crowd statistics, the consensus tour in input identifiers, its
// distance against the projection and the best expert, the two agreement
// percentages and the elapsed time.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/katalvlaran/crowdtsp/solver"
	"github.com/katalvlaran/crowdtsp/tsp"
)

// Options configures Write.
type Options struct {
	// Color enables ANSI styling of headings and key figures.
	Color bool
	// Precision is the number of decimals for distances. Zero means 6.
	Precision int
}

const defaultPrecision = 6

var (
	styleHeading = color.Style{color.FgCyan, color.OpBold}
	styleFigure  = color.Style{color.FgGreen}
	styleWarn    = color.Style{color.FgYellow}
)

// printer formats with optional styling and remembers the first write error.
type printer struct {
	w     io.Writer
	color bool
	prec  int
	err   error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) style(s color.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Sprint(text)
}

func (p *printer) num(v float64) string {
	return p.style(styleFigure, strconv.FormatFloat(v, 'f', p.prec, 64))
}

func (p *printer) pct(v float64) string {
	return p.style(styleFigure, strconv.FormatFloat(100*v, 'f', 2, 64)+"%")
}

// Write renders res for table t to w.
func Write(w io.Writer, t *tsp.DistanceTable, res *solver.Result, opts Options) error {
	p := &printer{w: w, color: opts.Color, prec: opts.Precision}
	if p.prec <= 0 {
		p.prec = defaultPrecision
	}

	p.printf("%s\n\n", p.style(styleHeading, "Genetic Algorithm - Wisdom of Crowds TSP solver"))

	p.printf("This crowd has %s members over %d cities. The min is %s and the max is %s.\n",
		p.style(styleFigure, strconv.Itoa(res.Size)), res.Cities, p.num(res.Min), p.num(res.Max))
	p.printf("The crowd believes the optimum tour should be around %s in length.\n\n", p.num(res.Mean))

	p.printf("%s\n\n\t%s\n\n", p.style(styleHeading, "The crowd believes the optimum tour to be:"), tourLine(t, res.Tour.Order))

	p.printf("The actual distance of this tour is %s, %s less than originally projected,\n",
		p.num(res.Tour.Distance), p.num(res.DeltaFromMean))
	switch {
	case int64(res.Tour.Distance) == int64(res.Best.Distance):
		p.printf("and equal to the best expert path, %s.\n\n", p.num(res.Best.Distance))
	case res.Tour.Distance > res.Best.Distance:
		p.printf("and %s more than the best expert path, %s.\n\n",
			p.style(styleWarn, strconv.FormatFloat(res.DeltaFromBest, 'f', p.prec, 64)), p.num(res.Best.Distance))
	default:
		p.printf("and %s less than the best expert path, %s.\n\n", p.num(-res.DeltaFromBest), p.num(res.Best.Distance))
	}

	p.printf("%s of the crowd believed this would be the actual distance,\n", p.pct(res.DistanceAgreement))
	p.printf("and %s of them had both this distance and the final path (%d voting rounds).\n\n",
		p.pct(res.PathAgreement), res.Rounds)

	if res.Optimum != nil {
		p.printf("The exact optimum is %s, a gap of %s.\n\n",
			p.num(res.Optimum.Distance), p.num(res.Tour.Distance-res.Optimum.Distance))
	}

	p.printf("Seed %d, run %s. Execution took %s.\n", res.Seed, res.RunID, res.Elapsed.Round(time.Millisecond))

	return p.err
}

// tourLine prints the tour in input identifiers, returning to the start.
func tourLine(t *tsp.DistanceTable, order []int) string {
	if len(order) == 0 {
		return ""
	}
	ids := t.IDs(order)
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.Itoa(id))
		b.WriteString(" -> ")
	}
	b.WriteString(strconv.Itoa(ids[0]))

	return b.String()
}
