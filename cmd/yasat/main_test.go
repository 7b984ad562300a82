package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rhartert/yasat/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %s", path, err)
	}
}

func TestCnfFiles_listsAndSortsSkippingReducedOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.cnf"), "p cnf 1 1\n1 0\n")
	writeFile(t, filepath.Join(dir, "a.cnf"), "p cnf 1 1\n1 0\n")
	writeFile(t, filepath.Join(dir, "a.3sat.cnf"), "p cnf 1 1\n1 0\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")

	files, err := cnfFiles(dir)
	if err != nil {
		t.Fatalf("cnfFiles(): %s", err)
	}

	want := []string{filepath.Join(dir, "a.cnf"), filepath.Join(dir, "b.cnf")}
	if len(files) != len(want) {
		t.Fatalf("cnfFiles() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("cnfFiles()[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

// TestProcessFile_solvesWritesSolutionAndStats feeds a small known-SAT
// instance through the whole pipeline and checks the artifacts it leaves
// behind rather than reaching into solver internals.
func TestProcessFile_solvesWritesSolutionAndStats(t *testing.T) {
	dir := t.TempDir()
	cnfPath := filepath.Join(dir, "small.cnf")
	writeFile(t, cnfPath, "p cnf 3 3\n1 2 3 0\n-1 -2 0\n2 -3 0\n")

	cfg := driverConfig{
		naive: config.NaiveOptions{Timeout: 5 * time.Second},
		moms:  config.MOMSOptions{Timeout: 5 * time.Second},
		cdcl:  config.DefaultCDCLOptions,
	}
	cfg.cdcl.Timeout = 5 * time.Second

	csvPath := filepath.Join(dir, "reduction_stats.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		t.Fatalf("os.Create(csv): %s", err)
	}
	defer csvFile.Close()

	if err := processFile(cnfPath, cfg, csvFile, true); err != nil {
		t.Fatalf("processFile(): %s", err)
	}

	solPath := strings.TrimSuffix(cnfPath, ".cnf") + ".sol"
	solBytes, err := os.ReadFile(solPath)
	if err != nil {
		t.Fatalf("reading solution file: %s", err)
	}
	line := strings.TrimSpace(string(solBytes))
	if !strings.HasPrefix(line, "v ") || !strings.HasSuffix(line, " 0") {
		t.Errorf("solution line = %q, want DIMACS \"v ... 0\" shape", line)
	}

	csvFile.Close()
	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("reopening csv: %s", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var rows []string
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if len(rows) != 2 {
		t.Fatalf("csv rows = %d, want 2 (header + 1 data row)", len(rows))
	}
	if !strings.HasPrefix(rows[0], "OriginalVars,") {
		t.Errorf("csv header = %q, want it to start with OriginalVars,", rows[0])
	}
	fields := strings.Split(rows[1], ",")
	if len(fields) != 8 {
		t.Errorf("csv data row has %d fields, want 8: %q", len(fields), rows[1])
	}
	if fields[0] != "3" {
		t.Errorf("csv OriginalVars = %s, want 3", fields[0])
	}
}

func TestProcessFile_unreadableFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	csvFile, err := os.Create(filepath.Join(dir, "reduction_stats.csv"))
	if err != nil {
		t.Fatalf("os.Create(csv): %s", err)
	}
	defer csvFile.Close()

	cfg := driverConfig{
		naive: config.DefaultNaiveOptions,
		moms:  config.DefaultMOMSOptions,
		cdcl:  config.DefaultCDCLOptions,
	}

	if err := processFile(filepath.Join(dir, "missing.cnf"), cfg, csvFile, true); err == nil {
		t.Errorf("processFile(): want error for a missing file, got nil")
	}
}
