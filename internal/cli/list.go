package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"archstyles/internal/styles"
)

// Output formats for list.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type styleSummary struct {
	Slug     string   `json:"slug" yaml:"slug"`
	Name     string   `json:"name" yaml:"name"`
	Era      string   `json:"era" yaml:"era"`
	Path     string   `json:"path" yaml:"path"`
	Features []string `json:"features" yaml:"features"`
}

func summarize(c *styles.Catalog) []styleSummary {
	var out []styleSummary
	for _, s := range c.All() {
		sum := styleSummary{Slug: s.Slug, Name: s.Name, Era: s.Era, Path: s.Path()}
		for _, f := range s.Features() {
			sum.Features = append(sum.Features, string(f.ID))
		}
		out = append(out, sum)
	}
	return out
}

func (c *CLI) listCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the styles and their features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeList(cmd.OutOrStdout(), summarize(styles.Default()), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}

func writeList(w io.Writer, rows []styleSummary, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case formatTable:
		headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("Style", "Era", "Path", "Features").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				if col == 0 {
					return lipgloss.NewStyle().Foreground(colorCyan)
				}
				return lipgloss.NewStyle()
			})
		for _, r := range rows {
			t.Row(r.Name, r.Era, r.Path, strconv.Itoa(len(r.Features)))
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
