package export

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// WriteMatrix dumps the shared-content matrix in gonum's binary format,
// readable back with mat.Dense.UnmarshalBinaryFrom.
func WriteMatrix(w io.Writer, m *mat.Dense) error {
	if _, err := m.MarshalBinaryTo(w); err != nil {
		return fmt.Errorf("export: marshal matrix: %w", err)
	}
	return nil
}
