package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func newCatalogCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the element templates available in the palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), format, c.Templates())
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|yaml|json)")
	return cmd
}

func writeCatalog(w io.Writer, format string, templates []model.ElementTemplate) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tLABEL\tGROUP\tOPTIONS")
		for _, tmpl := range templates {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", tmpl.Type, tmpl.Label, tmpl.Group, strings.Join(tmpl.Options, ", "))
		}
		return tw.Flush()
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"templates": templates}); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"templates": templates})
	default:
		return fmt.Errorf("unsupported catalog format %q", format)
	}
}
