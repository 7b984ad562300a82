// Package dimacs reads and writes the DIMACS CNF family of text formats:
// CNF instances, solution lines, and reduction-statistics CSV rows.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rhartert/yasat/sat"
)

// ReadCNF parses a DIMACS CNF instance from r. Lines starting with 'c' are
// comments; the header line 'p cnf <N> <M>' gives the variable count (M is
// informational only and is not validated against the number of clauses
// actually read). A clause is a run of signed, non-zero integers
// terminated by a literal 0, and may span multiple lines; a single line
// may hold zero, one, or several clauses. A bare 0 with no preceding
// literals yields the empty clause.
func ReadCNF(r io.Reader) (*sat.Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	numVars := 0
	headerSeen := false
	var clauses [][]int
	var current []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case 'p':
			fields := strings.Fields(line)
			if len(fields) < 3 || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: malformed header %q", line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: bad variable count in header %q: %w", line, err)
			}
			numVars = n
			headerSeen = true
		default:
			if !headerSeen {
				return nil, fmt.Errorf("dimacs: clause line before header: %q", line)
			}
			for _, tok := range strings.Fields(line) {
				v, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("dimacs: bad literal %q: %w", tok, err)
				}
				if v == 0 {
					clauses = append(clauses, current)
					current = nil
					continue
				}
				current = append(current, v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if len(current) > 0 {
		clauses = append(clauses, current)
	}
	if !headerSeen {
		return nil, fmt.Errorf("dimacs: missing header line")
	}

	return sat.NewFormula(numVars, clauses, "")
}

// WriteSolution writes a's set variables as a single DIMACS solution line
// ("v ...0"), signed, in increasing variable order, omitting unset
// variables.
func WriteSolution(w io.Writer, a *sat.Assignment) error {
	var sb strings.Builder
	sb.WriteString("v")
	for v := 1; v <= a.NumVars(); v++ {
		if !a.Contains(v) {
			continue
		}
		if a.Value(v) {
			fmt.Fprintf(&sb, " %d", v)
		} else {
			fmt.Fprintf(&sb, " %d", -v)
		}
	}
	sb.WriteString(" 0\n")
	_, err := w.Write([]byte(sb.String()))
	return err
}
