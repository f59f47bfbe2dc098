package export

import (
	"errors"
	"fmt"
	"os"
)

// WriteFile encodes m into path. A failed encode or close removes the
// partial file.
func WriteFile(path, format string, m Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output: %w", err)
	}
	if err := Write(f, format, m); err != nil {
		return errors.Join(err, f.Close(), os.Remove(path))
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("could not close output: %w", err)
	}
	return nil
}
