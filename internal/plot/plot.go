// Package plot renders the per-benchmark PNG charts: ECDFs of regret,
// cumulative overhead, evaluated fidelities over time, and cross-fidelity
// rank correlation.
package plot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hpostats/optarena/internal/analysis"
)

var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
}

func optColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

func faint(c color.RGBA) color.RGBA {
	c.A = 60
	return c
}

func sortedOptimizers(series map[string]analysis.Series) []string {
	opts := make([]string, 0, len(series))
	for opt := range series {
		opts = append(opts, opt)
	}
	sort.Strings(opts)
	return opts
}

func toXYs(xs, ys []float64, positiveOnly bool) plotter.XYs {
	var out plotter.XYs
	for i := range xs {
		if positiveOnly && (xs[i] <= 0 || ys[i] <= 0) {
			continue
		}
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		out = append(out, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return out
}

func logAxis(a *plot.Axis) {
	a.Scale = plot.LogScale{}
	a.Tick.Marker = plot.LogTicks{Prec: -1}
}

// ECDF draws the empirical CDF of regret per optimizer: one bold line for
// the pooled values and one faint line per seed.
func ECDF(path string, series map[string]analysis.Series, displayName func(string) string, xscale string) error {
	p := plot.New()
	p.X.Label.Text = "Optimization regret"
	p.Y.Label.Text = "P(x < X)"
	logX := xscale == "log"
	if logX {
		logAxis(&p.X)
	}

	for i, opt := range sortedOptimizers(series) {
		s := series[opt]
		c := optColor(i)

		xs, ys := analysis.ECDF(s.FunctionValues())
		pooled, err := plotter.NewLine(toXYs(xs, ys, logX))
		if err != nil {
			return fmt.Errorf("ecdf line for %s: %w", opt, err)
		}
		pooled.LineStyle.Color = c
		pooled.LineStyle.Width = vg.Points(2)
		p.Add(pooled)
		p.Legend.Add(displayName(opt), pooled)

		for _, id := range s.SeedIDs() {
			xs, ys := analysis.ECDF(s.Seed(id).FunctionValues())
			line, err := plotter.NewLine(toXYs(xs, ys, logX))
			if err != nil {
				return fmt.Errorf("ecdf seed line for %s: %w", opt, err)
			}
			line.LineStyle.Color = faint(c)
			p.Add(line)
		}
	}
	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}

// Overhead draws, per optimizer and seed, the cumulative benchmark cost,
// the cumulative scheduling gap and the overall elapsed time on a log-log
// scale.
func Overhead(path string, series map[string]analysis.Series, displayName func(string) string) error {
	p := plot.New()
	p.X.Label.Text = "Runtime in seconds"
	p.Y.Label.Text = "Cumulated overhead in seconds"
	logAxis(&p.X)
	logAxis(&p.Y)

	for i, opt := range sortedOptimizers(series) {
		s := series[opt]
		c := optColor(i)
		for seedIdx, id := range s.SeedIDs() {
			oh := analysis.Overhead(s.Seed(id))

			cost, err := plotter.NewLine(toXYs(oh.Steps, oh.BenchmarkCost, true))
			if err != nil {
				return fmt.Errorf("overhead cost line for %s: %w", opt, err)
			}
			cost.LineStyle.Color = color.RGBA{A: 120}
			p.Add(cost)

			gap, err := plotter.NewLine(toXYs(oh.Steps, oh.SchedulingGap, true))
			if err != nil {
				return fmt.Errorf("overhead gap line for %s: %w", opt, err)
			}
			gap.LineStyle.Color = c
			gap.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(gap)

			overall, err := plotter.NewLine(toXYs(oh.Steps, oh.Overall, true))
			if err != nil {
				return fmt.Errorf("overhead overall line for %s: %w", opt, err)
			}
			overall.LineStyle.Color = faint(c)
			p.Add(overall)

			if seedIdx == 0 {
				p.Legend.Add(displayName(opt), gap)
			}
		}
	}
	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}

// Fidelities scatters the fidelity level of every evaluation against its
// time step, one color per optimizer, annotated with the average number of
// evaluations per seed.
func Fidelities(path string, series map[string]analysis.Series, displayName func(string) string) error {
	p := plot.New()
	p.X.Label.Text = "Runtime in seconds"
	p.Y.Label.Text = "Fidelity"
	logAxis(&p.X)

	for i, opt := range sortedOptimizers(series) {
		s := series[opt]
		var pts plotter.XYs
		evals := 0
		for _, r := range s {
			if r.TotalTimeUsed > 0 {
				pts = append(pts, plotter.XY{X: r.TotalTimeUsed, Y: r.FidelValue})
			}
			evals++
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("fidelity scatter for %s: %w", opt, err)
		}
		c := optColor(i)
		c.A = 140
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)

		seeds := len(s.SeedIDs())
		label := displayName(opt)
		if seeds > 0 {
			label = fmt.Sprintf("%s (%g evals avg)", label, float64(evals)/float64(seeds))
		}
		p.Legend.Add(label, scatter)
	}
	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}

// CorrelationScatter draws one point series per lower fidelity: the
// Spearman coefficient against every higher fidelity.
func CorrelationScatter(path string, table *analysis.CorrelationTable) error {
	p := plot.New()
	p.X.Label.Text = "Fidelity"
	p.Y.Label.Text = "Spearman correlation coefficient"

	for i, f1 := range table.Fidelities {
		var pts plotter.XYs
		for _, f2 := range table.Fidelities[i+1:] {
			c, ok := table.At(f1, f2)
			if !ok || math.IsNaN(c.Rho) {
				continue
			}
			pts = append(pts, plotter.XY{X: f2, Y: c.Rho})
		}
		if len(pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("correlation scatter for fidelity %g: %w", f1, err)
		}
		scatter.GlyphStyle.Color = optColor(i)
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("%g", f1), scatter)
	}
	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}
