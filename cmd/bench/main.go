package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"jobShop/internal/bench"
	"jobShop/internal/jssp"
)

func main() {
	var (
		out          = flag.String("out", "artifacts/results.csv", "path of the output CSV file")
		pairs        = flag.String("pairs", "20x5,50x10,100x20", "case dimensions as jobs x machines, comma separated")
		rules        = flag.String("rules", strings.Join(jssp.RuleNames(), ","), "priority rules to compare, comma separated")
		runs         = flag.Int("runs", 30, "number of instances generated per case")
		instanceSeed = flag.Int64("instance_seed", 777, "base seed for instance generation (fixed per case)")
		minDur       = flag.Float64("min_dur", 1.0, "minimum operation duration")
		maxDur       = flag.Float64("max_dur", 99.0, "maximum operation duration")
	)
	flag.Parse()

	cases, err := parsePairs(*pairs, *instanceSeed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	var selected []jssp.Rule
	for _, name := range splitCSV(*rules) {
		rule, err := jssp.NewRule(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v; available: %v\n", err, jssp.RuleNames())
			os.Exit(2)
		}
		selected = append(selected, rule)
	}

	runner := bench.Runner{
		Runs:        *runs,
		MinDuration: *minDur,
		MaxDuration: *maxDur,
	}

	var records []bench.Record
	for _, c := range cases {
		for _, rule := range selected {
			fmt.Printf("Running rule %s on %d jobs x %d machines (%d instances)...\n",
				rule.Name(), c.Jobs, c.Machines, runner.Runs)

			rec, err := runner.RunCase(c, rule)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			records = append(records, rec)

			fmt.Printf("  Makespan: best=%.2f mean=%.2f std=%.2f | Time: mean=%.3fms std=%.3fms\n",
				rec.MakespanBest, rec.MakespanMean, rec.MakespanStd,
				rec.TimeMeanMs, rec.TimeStdMs,
			)
		}
	}

	if err := bench.WriteCSV(*out, records); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing CSV:", err)
		os.Exit(1)
	}
	fmt.Println("Saved:", *out)
}

// helpers

func parsePairs(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		jm := strings.Split(p, "x")
		if len(jm) != 2 {
			return nil, fmt.Errorf("pair %q is malformed, expected jobs x machines like 50x10", p)
		}
		jobs, err := atoiStrict(jm[0])
		if err != nil {
			return nil, fmt.Errorf("pair %q: bad job count: %w", p, err)
		}
		machines, err := atoiStrict(jm[1])
		if err != nil {
			return nil, fmt.Errorf("pair %q: bad machine count: %w", p, err)
		}
		if jobs <= 0 || machines <= 0 {
			return nil, fmt.Errorf("pair %q: jobs and machines must be > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(jobs)*100 + int64(machines)

		cases = append(cases, bench.Case{
			Jobs:         jobs,
			Machines:     machines,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
