package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const defaultDiagramFile = "flowboard.json"

// editCommand creates the edit command for interactive editing in the terminal.
func (c *CLI) editCommand() *cobra.Command {
	var output, logFile string

	cmd := &cobra.Command{
		Use:   "edit [diagram.json]",
		Short: "Edit a diagram interactively in the terminal",
		Long: `Edit a diagram with the mouse in the terminal.

Drag activities and joints to move them; on release they snap to the nearest
lane and align with connected neighbors. Drag on empty space to select with a
rectangle, and right-click a connection to insert a joint.

Without a file, a small demo diagram is opened.`,
		Example: `  flowboard edit
  flowboard edit process.json
  flowboard edit process.json -o process-v2.json --log-file edit.log`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return c.runEdit(cmd.Context(), input, output, logFile)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "save target (default: the input file, or "+defaultDiagramFile+")")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write log output to this file while editing")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, input, output, logFile string) error {
	items, err := c.loadDiagram(input)
	if err != nil {
		return err
	}
	d, err := c.newDesigner(items)
	if err != nil {
		return err
	}

	if output == "" {
		output = input
	}
	if output == "" {
		output = defaultDiagramFile
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	restore := redirect(c.Logger, logOut, os.Stderr)

	model := NewEditorModel(d, c.config().Terminal, output, c.Logger)
	final, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	restore()
	if err != nil {
		return err
	}

	if m, ok := final.(EditorModel); ok && m.Saved() != "" {
		printSuccess("Saved diagram")
		printFile(m.Saved())
	}
	return nil
}
