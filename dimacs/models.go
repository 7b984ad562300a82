package dimacs

import (
	"fmt"
	"io"

	extdimacs "github.com/rhartert/dimacs"
)

// modelBuilder implements extdimacs.Builder to turn a models file (one
// model per line, each a DIMACS clause of signed literals) into a slice
// of per-variable boolean models.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(_ string, _ int, _ int) error {
	return fmt.Errorf("dimacs: model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

// ReadModels parses a models file from r for use in round-trip tests, via
// the external DIMACS clause-stream reader.
func ReadModels(r io.Reader) ([][]bool, error) {
	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}
