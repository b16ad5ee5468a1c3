package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var showPreview bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen builder (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, a, showPreview)
		},
	}
	cmd.Flags().BoolVar(&showPreview, "preview", false, "Show the preview pane on start")
	return cmd
}

func runTUI(cmd *cobra.Command, a *app, showPreview bool) error {
	ws, err := a.newWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()
	return tui.Run(ws, tui.WithLogger(a.logger), tui.WithPreview(showPreview))
}

func newPromptCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build a form by answering prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.newWorkspace()
			if err != nil {
				return err
			}
			defer ws.Close()

			session := prompt.NewSession(ws, prompt.NewSurveyDriver(cmd.OutOrStdout()),
				prompt.WithLogger(a.logger),
				prompt.WithPreviewWidth(width),
			)
			if err := session.Run(cmd.Context()); err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
					return nil
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ws.PreviewMarkdown())
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width of the terminal preview")
	return cmd
}
