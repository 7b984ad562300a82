package dimacs

import (
	"fmt"
	"io"

	"github.com/rhartert/yasat/reduce"
)

// WriteStatsCSV appends one reduce.Stats row to w in the column order
// OriginalVars,OriginalClauses,ReducedVars,ReducedClauses,AuxVars,VarRatio,
// ClauseRatio,TimeMs, writing the header row first when header is true.
// Ratios are rendered to three decimals, TimeMs to two.
func WriteStatsCSV(w io.Writer, header bool, s reduce.Stats) error {
	if header {
		if _, err := io.WriteString(w, "OriginalVars,OriginalClauses,ReducedVars,ReducedClauses,AuxVars,VarRatio,ClauseRatio,TimeMs\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d,%d,%d,%d,%d,%.3f,%.3f,%.2f\n",
		s.OriginalVars, s.OriginalClauses, s.ReducedVars, s.ReducedClauses, s.AuxVars,
		s.VarRatio, s.ClauseRatio, s.TimeMs)
	return err
}
