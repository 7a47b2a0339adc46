package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"jobShop/internal/jssp"
)

type Case struct {
	Jobs         int
	Machines     int
	InstanceSeed int64
}

type Record struct {
	Rule     string
	Jobs     int
	Machines int
	Runs     int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest float64
	MakespanMean float64
	MakespanStd  float64
}

type Runner struct {
	Runs        int
	MinDuration float64
	MaxDuration float64
}

// RunCase solves Runs freshly generated instances of the case's dimensions
// with the given rule. The greedy pass itself is deterministic, so the
// spread comes from varying the instance seed per run.
func (r Runner) RunCase(c Case, rule jssp.Rule) (Record, error) {
	makespans := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		rng := randForSeed(c.InstanceSeed + int64(i))
		inst := jssp.RandomInstance(c.Jobs, c.Machines, r.MinDuration, r.MaxDuration, rng)

		s, err := jssp.NewScheduler(inst.Jobs, inst.Machines)
		if err != nil {
			return Record{}, fmt.Errorf("run %d: %w", i, err)
		}
		s.Rule = rule

		start := time.Now()
		schedule := s.Solve()
		dur := time.Since(start)

		if len(schedule) != inst.TotalOperations() {
			return Record{}, fmt.Errorf("run %d: schedule has %d operations (want %d)", i, len(schedule), inst.TotalOperations())
		}

		makespans = append(makespans, s.Makespan(schedule))
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	msStats := CalcFloatStats(makespans)
	tStats := CalcFloatStats(timesMs)

	return Record{
		Rule:     rule.Name(),
		Jobs:     c.Jobs,
		Machines: c.Machines,
		Runs:     r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: msStats.Best,
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"rule", "jobs", "machines", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"makespan_best", "makespan_mean", "makespan_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Rule,
			itoa(r.Jobs),
			itoa(r.Machines),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.MakespanBest),
			ftoa(r.MakespanMean),
			ftoa(r.MakespanStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
