package sim

import (
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

var lang = language.English

// Summary describes the distribution of one per-episode quantity.
type Summary struct {
	Mean   float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	Max    float64
}

// summarize computes a Summary over xs. xs must not be empty.
func summarize(xs []float64) Summary {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	var s Summary
	if len(sorted) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	} else {
		s.Mean = sorted[0]
	}
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	s.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	s.Max = sorted[len(sorted)-1]
	return s
}

// Report is the outcome of a simulation run.
type Report struct {
	Config   puzzle.Config
	Seed     int64
	Workers  int
	Episodes int

	Damage   Summary
	Combos   Summary
	Cascades Summary

	TotalDamage int
	TotalCombos int
	ZeroCombo   int // episodes that erased nothing
	Truncated   int // episodes stopped by the cascade limit

	Elapsed time.Duration
}

func newReport(opts Options, workers int, samples []sample) *Report {
	r := &Report{
		Config:   opts.Config,
		Seed:     opts.Seed,
		Workers:  workers,
		Episodes: len(samples),
	}

	damage := make([]float64, len(samples))
	combos := make([]float64, len(samples))
	cascades := make([]float64, len(samples))
	for i, s := range samples {
		damage[i] = float64(s.damage)
		combos[i] = float64(s.combos)
		cascades[i] = float64(s.cascades)
		r.TotalDamage += s.damage
		r.TotalCombos += s.combos
		if s.combos == 0 {
			r.ZeroCombo++
		}
		if s.truncated {
			r.Truncated++
		}
	}
	if len(samples) > 0 {
		r.Damage = summarize(damage)
		r.Combos = summarize(combos)
		r.Cascades = summarize(cascades)
	}
	return r
}

// HitRate is the share of episodes that erased at least one combo.
func (r *Report) HitRate() float64 {
	if r.Episodes == 0 {
		return 0
	}
	return float64(r.Episodes-r.ZeroCombo) / float64(r.Episodes)
}

// Table renders the report as a bordered two-column table.
func (r *Report) Table() string {
	p := message.NewPrinter(lang)
	c := r.Config

	keys := []string{
		"Board", "Block types", "Min run", "Seed", "Workers", "Episodes",
		"Total damage", "Total combos", "Hit rate", "Truncated",
		"Damage mean", "Damage std", "Damage p50/p90/p99", "Damage max",
		"Combos mean", "Combos p90", "Combos max",
		"Cascades mean", "Cascades max",
		"Elapsed",
	}
	msg := map[string]string{
		"Board":              p.Sprintf("%dx%d", c.Width, c.Height),
		"Block types":        p.Sprintf("%d", c.BlockTypes),
		"Min run":            p.Sprintf("%d", c.MinRun),
		"Seed":               p.Sprintf("%d", r.Seed),
		"Workers":            p.Sprintf("%d", r.Workers),
		"Episodes":           p.Sprintf("%d", r.Episodes),
		"Total damage":       p.Sprintf("%d", r.TotalDamage),
		"Total combos":       p.Sprintf("%d", r.TotalCombos),
		"Hit rate":           p.Sprintf("%.2f%%", r.HitRate()*100),
		"Truncated":          p.Sprintf("%d", r.Truncated),
		"Damage mean":        p.Sprintf("%.2f", r.Damage.Mean),
		"Damage std":         p.Sprintf("%.2f", r.Damage.StdDev),
		"Damage p50/p90/p99": p.Sprintf("%.0f / %.0f / %.0f", r.Damage.P50, r.Damage.P90, r.Damage.P99),
		"Damage max":         p.Sprintf("%.0f", r.Damage.Max),
		"Combos mean":        p.Sprintf("%.3f", r.Combos.Mean),
		"Combos p90":         p.Sprintf("%.0f", r.Combos.P90),
		"Combos max":         p.Sprintf("%.0f", r.Combos.Max),
		"Cascades mean":      p.Sprintf("%.3f", r.Cascades.Mean),
		"Cascades max":       p.Sprintf("%.0f", r.Cascades.Max),
		"Elapsed":            r.Elapsed.Round(time.Millisecond).String(),
	}
	return fmtTable("Puzzle Simulation", keys, msg)
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := runewidth.StringWidth(title)
	maxValLen := 0
	for _, k := range keys {
		maxKeyLen = max(maxKeyLen, runewidth.StringWidth(k))
		maxValLen = max(maxValLen, runewidth.StringWidth(msg[k]))
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	b.WriteString(divider)
	for _, k := range keys {
		v := msg[k]
		b.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) +
			" | " + v + blank(maxValLen-2-runewidth.StringWidth(v)) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
