// Command yasat is the batch driver: it runs all three search strategies
// plus the k-CNF to 3-CNF reducer and the witness verifier over every CNF
// file in a directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rhartert/yasat/config"
	"github.com/rhartert/yasat/dimacs"
	"github.com/rhartert/yasat/reduce"
	"github.com/rhartert/yasat/sat"
	"github.com/rhartert/yasat/verify"
)

var (
	flagDir          = flag.String("dir", ".", "directory of .cnf files to process")
	flagTimeoutNaive = flag.Duration("timeout_naive", config.DefaultNaiveOptions.Timeout, "deadline for the naive DPLL strategy")
	flagTimeoutMOMS  = flag.Duration("timeout_moms", config.DefaultMOMSOptions.Timeout, "deadline for the MOMS DPLL strategy")
	flagTimeoutCDCL  = flag.Duration("timeout_cdcl", config.DefaultCDCLOptions.Timeout, "deadline for the CDCL-lite strategy")
	flagVarDecay     = flag.Float64("var_decay", config.DefaultCDCLOptions.VarDecay, "multiplicative activity decay in (0,1)")
	flagMaxDecisions = flag.Int64("max_decisions", config.DefaultCDCLOptions.MaxDecisions, "hard cap on CDCL decisions")
	flagRestartBase  = flag.Int("restart_base", config.DefaultCDCLOptions.RestartBase, "conflict threshold triggering a restart")
	flagDecayStride  = flag.Int("decay_stride", config.DefaultCDCLOptions.DecayStride, "conflicts between activity decay epochs")
)

type driverConfig struct {
	naive config.NaiveOptions
	moms  config.MOMSOptions
	cdcl  config.CDCLOptions
}

func main() {
	flag.Parse()
	cfg := driverConfig{
		naive: config.NaiveOptions{Timeout: *flagTimeoutNaive},
		moms:  config.MOMSOptions{Timeout: *flagTimeoutMOMS},
		cdcl: config.CDCLOptions{
			Timeout:      *flagTimeoutCDCL,
			VarDecay:     *flagVarDecay,
			MaxDecisions: *flagMaxDecisions,
			RestartBase:  *flagRestartBase,
			DecayStride:  *flagDecayStride,
		},
	}

	files, err := cnfFiles(*flagDir)
	if err != nil {
		log.Fatalf("could not list %s: %v", *flagDir, err)
	}

	csvPath := filepath.Join(*flagDir, "reduction_stats.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		log.Fatalf("could not create %s: %v", csvPath, err)
	}
	defer csvFile.Close()

	for i, path := range files {
		fmt.Printf("c [%d/%d] %s\n", i+1, len(files), path)
		if err := processFile(path, cfg, csvFile, i == 0); err != nil {
			fmt.Printf("c error: %v\n", err)
		}
	}
}

// cnfFiles lists the .cnf files of dir in sorted order, skipping any file
// with a ".3sat.cnf" suffix, the name used for reduced 3-CNF instances.
// The driver itself keeps reduced formulas in memory and writes no such
// file.
func cnfFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".cnf") && !strings.HasSuffix(name, ".3sat.cnf") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func processFile(path string, cfg driverConfig, csvFile *os.File, firstRow bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	formula, err := dimacs.ReadCNF(f)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	formula.Source = path

	fmt.Printf("c variables: %d\n", formula.NumVars)
	fmt.Printf("c clauses:   %d\n", len(formula.Clauses))

	strategies := []struct {
		name     string
		guard    *sat.TimeoutGuard
		strategy sat.Strategy
	}{
		{"naive", sat.NewTimeoutGuard(cfg.naive.Timeout), sat.NaiveStrategy{}},
		{"moms", sat.NewTimeoutGuard(cfg.moms.Timeout), sat.MOMSStrategy{}},
		{"cdcl", sat.NewTimeoutGuard(cfg.cdcl.Timeout), sat.NewCDCLStrategy(cfg.cdcl.SolverOptions())},
	}

	solved := false
	for _, s := range strategies {
		outcome := s.strategy.Solve(formula, s.guard)
		fmt.Printf("c %-5s status=%s nodes=%d decisions=%d conflicts=%d restarts=%d time=%s\n",
			s.name, outcome.Status, outcome.Stats.Nodes, outcome.Stats.Decisions,
			outcome.Stats.Conflicts, outcome.Stats.Restarts, outcome.Stats.Elapsed)

		if outcome.Status != sat.StatusSAT {
			continue
		}
		v := verify.Verify(formula, outcome.Assignment)
		if !v.Satisfied {
			fmt.Printf("c %-5s reported SAT but verification failed: falsified=%v\n", s.name, v.FalsifiedClauses)
			continue
		}
		if !solved {
			if err := writeSolution(path, outcome.Assignment); err != nil {
				return fmt.Errorf("write solution: %w", err)
			}
			solved = true
		}
	}

	reduced, stats := reduce.Reduce(formula)
	fmt.Printf("c reduced vars=%d (+%d aux) clauses=%d ratio_vars=%.3f ratio_clauses=%.3f time_ms=%.2f\n",
		stats.ReducedVars, stats.AuxVars, stats.ReducedClauses, stats.VarRatio, stats.ClauseRatio, stats.TimeMs)

	guard := sat.NewTimeoutGuard(cfg.cdcl.Timeout)
	outcome := sat.NewCDCLStrategy(cfg.cdcl.SolverOptions()).Solve(reduced, guard)
	if outcome.Status == sat.StatusSAT {
		if v := verify.Verify(reduced, outcome.Assignment); v.Satisfied {
			witness := reduce.ProjectWitness(outcome.Assignment, formula.NumVars)
			fmt.Printf("c reduced formula solved, witness projects to %d literals\n", len(witness))
		}
	}

	if err := dimacs.WriteStatsCSV(csvFile, firstRow, stats); err != nil {
		return fmt.Errorf("write stats csv: %w", err)
	}
	return nil
}

func writeSolution(cnfPath string, a *sat.Assignment) error {
	solPath := strings.TrimSuffix(cnfPath, ".cnf") + ".sol"
	f, err := os.Create(solPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return dimacs.WriteSolution(f, a)
}
