package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/catalog"
	"github.com/goliatone/go-formbuilder/pkg/dnd"
	"github.com/goliatone/go-formbuilder/pkg/workspace"
)

type app struct {
	CatalogPath string
	Empty       bool
	Append      bool
	Verbose     bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "formbuilder",
		Short:        "Build forms by dragging elements onto a canvas",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive builder
  formbuilder

  # Answer prompts instead of using the full-screen builder
  formbuilder prompt

  # Render the default form with a toggle inserted at slot 1
  formbuilder preview --add toggle@1 --format markdown
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, a, false)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger := zap.NewNop()
		if a.Verbose {
			dev, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("configure logger: %w", err)
			}
			logger = dev
		}
		a.logger = logger
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if a.logger != nil {
			_ = a.logger.Sync()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&a.CatalogPath, "catalog", "", "Element catalog bundle (YAML/JSON file or directory)")
	cmd.PersistentFlags().BoolVar(&a.Empty, "empty", false, "Start with an empty canvas")
	cmd.PersistentFlags().BoolVar(&a.Append, "append", false, "Always append dropped elements instead of inserting at the hovered slot")
	cmd.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Log gesture diagnostics to stderr")

	cmd.AddCommand(newTUICmd(a))
	cmd.AddCommand(newPromptCmd(a))
	cmd.AddCommand(newCatalogCmd(a))
	cmd.AddCommand(newPreviewCmd(a))

	return cmd
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if strings.TrimSpace(a.CatalogPath) == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(a.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", a.CatalogPath, err)
	}
	return c, nil
}

func (a *app) newWorkspace(extra ...workspace.Option) (*workspace.Workspace, error) {
	c, err := a.loadCatalog()
	if err != nil {
		return nil, err
	}
	options := []workspace.Option{
		workspace.WithCatalog(c),
		workspace.WithLogger(a.logger),
	}
	if a.Empty {
		options = append(options, workspace.WithEmptyCanvas())
	}
	if a.Append {
		options = append(options, workspace.WithInsertPolicy(dnd.InsertAppend))
	}
	return workspace.New(append(options, extra...)...)
}
