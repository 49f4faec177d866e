package mat

import "github.com/itohio/splinekit"

// singularMatrixError builds the classified failure SolveSystem raises when
// the coefficient matrix's determinant rounds to zero (spec §4.3/§7).
func singularMatrixError() error {
	return splinekit.New(splinekit.SingularMatrix, "determinant rounds to zero")
}
