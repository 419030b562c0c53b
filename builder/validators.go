package builder

import "fmt"

// validateMin returns ErrTooFewVertices wrapped with method context when v < min.
func validateMin(method, name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, min, ErrTooFewVertices)
	}

	return nil
}
