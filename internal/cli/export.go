package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pobsd/internal/catalog"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exportDocument is the serialized form of a parsed database.
type exportDocument struct {
	Count      int             `json:"count" yaml:"count"`
	ErrorLines []int           `json:"error_lines,omitempty" yaml:"error_lines,omitempty"`
	Games      []catalog.Entry `json:"games" yaml:"games"`
}

func exportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the parsed games as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			return runExport(cmd.Context(), opts, cmd.OutOrStdout(), format, output)
		},
	}

	cmd.Flags().String("format", "json", "Export format: json or yaml")
	cmd.Flags().String("output", "", "Output file (default: stdout)")

	return cmd
}

// runExport handles the `export` command.
func runExport(ctx context.Context, opts *options, stdout io.Writer, format, output string) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unknown export format %q", format)
	}

	res, err := loadDatabase(ctx, opts)
	if err != nil {
		return err
	}

	c := catalog.New(res.Games)
	doc := exportDocument{
		Count:      c.Len(),
		ErrorLines: res.ErrorLines,
		Games:      make([]catalog.Entry, 0, c.Len()),
	}
	for id := 1; id <= c.Len(); id++ {
		e, _ := c.GameByID(id)
		doc.Games = append(doc.Games, e)
	}

	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := encode(w, format, doc); err != nil {
		return err
	}

	if output != "" {
		log.Info().Str("path", output).Str("format", format).Int("games", doc.Count).Msg("Exported database")
	}
	return nil
}

func encode(w io.Writer, format string, doc exportDocument) error {
	if format == "yaml" {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
