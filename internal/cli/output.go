package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/strata-config/strata/internal/values"
	"github.com/strata-config/strata/models"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// writeTree renders the tree to w in the requested output format.
func writeTree(w io.Writer, tree models.Tree, format string) error {
	switch format {
	case outputYAML, "":
		data, err := values.EncodeTree(tree)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case outputJSON:
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q (expected yaml or json)", format)
	}
}
