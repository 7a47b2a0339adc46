package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"jobShop/internal/config"
	"jobShop/internal/export"
	"jobShop/internal/jssp"
	"jobShop/internal/store"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file; flags set explicitly override it")

		jobs     = flag.Int("jobs", 5, "number of jobs to generate")
		machines = flag.Int("machines", 3, "number of machines")
		minDur   = flag.Float64("min_dur", 1.0, "minimum operation duration")
		maxDur   = flag.Float64("max_dur", 10.0, "maximum operation duration")
		seed     = flag.Int64("seed", 777, "seed for instance generation")
		rule     = flag.String("rule", jssp.RuleInOrder, "dispatch priority rule (INORDER, SPT, LPT, MWR)")

		doExport  = flag.Bool("export", false, "write the solution files")
		exportDir = flag.String("export_dir", "artifacts", "directory for exported solution files")

		dbDSN = flag.String("db", "", "sqlite DSN for the run history; empty disables recording")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	// flags the user actually passed win over the config file
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["jobs"] {
		cfg.Generator.Jobs = *jobs
	}
	if set["machines"] {
		cfg.Generator.Machines = *machines
	}
	if set["min_dur"] {
		cfg.Generator.MinDuration = *minDur
	}
	if set["max_dur"] {
		cfg.Generator.MaxDuration = *maxDur
	}
	if set["seed"] {
		cfg.Generator.Seed = *seed
	}
	if set["rule"] {
		cfg.Generator.Rule = *rule
	}
	if set["export"] {
		cfg.Export.Enabled = *doExport
	}
	if set["export_dir"] {
		cfg.Export.Dir = *exportDir
	}
	if set["db"] {
		cfg.Database.Enabled = *dbDSN != ""
		cfg.Database.DSN = *dbDSN
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	rng := rand.New(rand.NewSource(cfg.Generator.Seed))
	inst := jssp.RandomInstance(
		cfg.Generator.Jobs,
		cfg.Generator.Machines,
		cfg.Generator.MinDuration,
		cfg.Generator.MaxDuration,
		rng,
	)

	dispatch, err := jssp.NewRule(cfg.Generator.Rule)
	if err != nil {
		return err
	}

	s, err := jssp.NewScheduler(inst.Jobs, inst.Machines)
	if err != nil {
		return err
	}
	s.Rule = dispatch

	start := time.Now()
	schedule := s.Solve()
	elapsed := time.Since(start)
	makespan := s.Makespan(schedule)

	fmt.Printf("Problem: %d jobs, %d machines, %d operations (seed=%d, rule=%s)\n",
		len(inst.Jobs), inst.Machines, inst.TotalOperations(), cfg.Generator.Seed, dispatch.Name())

	fmt.Println()
	fmt.Println("Job | Op | Machine | Start  | End    | Duration")
	fmt.Println("----+----+---------+--------+--------+---------")
	for _, op := range schedule {
		fmt.Printf("%3d | %2d | %7d | %6.2f | %6.2f | %6.2f\n",
			op.JobID, op.Index, op.Machine, op.Start, op.End, op.Duration)
	}
	fmt.Println()
	fmt.Printf("Makespan: %.2f (solved in %s)\n", makespan, elapsed)

	sol, err := export.NewSolution(schedule, len(inst.Jobs), inst.Machines, makespan)
	if err != nil {
		return err
	}

	if cfg.Export.Enabled {
		ts := sol.Meta.Timestamp.Format("20060102_150405")
		for _, format := range cfg.Export.Formats {
			var path string
			switch format {
			case "json":
				path = filepath.Join(cfg.Export.Dir, fmt.Sprintf("jssp_solution_%s.json", ts))
				err = sol.WriteJSON(path)
			case "csv":
				path = filepath.Join(cfg.Export.Dir, fmt.Sprintf("jssp_solution_%s.csv", ts))
				err = sol.WriteCSV(path)
			case "txt":
				path = filepath.Join(cfg.Export.Dir, fmt.Sprintf("jssp_summary_%s.txt", ts))
				err = sol.WriteReport(path)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}
			fmt.Println("Saved:", path)
		}
	}

	if cfg.Database.Enabled {
		db, err := store.Open(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open run history: %w", err)
		}
		defer db.Close()

		runRec := &store.Run{
			RunID:         sol.Meta.RunID,
			CreatedAt:     sol.Meta.Timestamp,
			NumJobs:       sol.Meta.NumJobs,
			NumMachines:   sol.Meta.NumMachines,
			NumOperations: sol.Meta.TotalOperations,
			Algorithm:     sol.Meta.Algorithm,
			Rule:          dispatch.Name(),
			Makespan:      makespan,
			SolveMs:       float64(elapsed.Microseconds()) / 1000.0,
		}
		if err := db.SaveRun(runRec); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Printf("Recorded run %s in %s\n", runRec.RunID, cfg.Database.DSN)
	}

	return nil
}
