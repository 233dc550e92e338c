package advanced

import "github.com/pkg/errors"

// Threading errors up and down every recursive flip and walk would add a ton
// of noise to the mesh code. Instead, broken mesh invariants panic, and the
// public API recovers to convert to an error.

type TriangulationError error

var (
	ErrDuplicateSite = errors.New("duplicate site")
	ErrSiteNotFound  = errors.New("site not found")
	ErrEmptyDiagram  = errors.New("diagram has no sites")
)

// Panic with a TriangulationError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulationError, ok := r.(TriangulationError); ok {
			return triangulationError
		}
		panic(r)
	}
	return nil
}
