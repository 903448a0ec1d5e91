package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

func printMessageWithData(w io.Writer, message string, data any) error {
	dump, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s%s\n", message, dump)
	return err
}
