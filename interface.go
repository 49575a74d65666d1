package scaffold

import (
	"fmt"
	"io"
)

// Scaffold writes the built-in dashboard layout under root, reporting
// progress to w.
func Scaffold(root string, w io.Writer) error {
	app, err := NewApp(&Config{Root: root, NoColor: true}, w)
	if err != nil {
		return fmt.Errorf("failed to initialize scaffold: %w", err)
	}
	_, err = app.Execute()
	return err
}

// Verify compares the tree under root with the built-in layout without
// modifying anything.
func Verify(root string) (Summary, error) {
	app, err := NewApp(&Config{Root: root, Check: true, Quiet: true}, io.Discard)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to initialize scaffold: %w", err)
	}
	return app.Execute()
}
