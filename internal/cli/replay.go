package cli

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowboard/pkg/designer"
	"github.com/matzehuels/flowboard/pkg/diagram"
	fio "github.com/matzehuels/flowboard/pkg/io"
)

// replayCommand creates the replay command for headless scripted editing.
func (c *CLI) replayCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "replay <diagram.json|-> <script.toml>",
		Short: "Apply a scripted sequence of pointer events to a diagram",
		Long: `Replay pointer events from a TOML script against a diagram and write the
resulting diagram as JSON.

Each [[event]] has a kind (down, move, up, joint), container coordinates x/y,
optional client_x/client_y, an optional target item, a modifier flag, an
optional at_ms offset and, for joints, the link id. Use "-" as the diagram to
start from the demo diagram.`,
		Example: `  flowboard replay process.json drag.toml
  flowboard replay - drag.toml -o result.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), args[0], args[1], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runReplay(_ context.Context, input, scriptPath, output string) error {
	if input == "-" {
		input = ""
	}
	items, err := c.loadDiagram(input)
	if err != nil {
		return err
	}
	script, err := fio.ImportScript(scriptPath)
	if err != nil {
		return err
	}
	d, err := c.newDesigner(items)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	if err := replay(d, script, time.Now()); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Replayed %d events", len(script.Events)))

	var buf bytes.Buffer
	if err := fio.WriteJSON(d.Items(), &buf); err != nil {
		return err
	}
	if err := writeOutput(output, buf.Bytes()); err != nil {
		return err
	}
	if output != "" && output != "-" {
		printSuccess("Replayed %d events", len(script.Events))
		printFile(output)
	}
	return nil
}

// replay feeds the script into d. Events without at_ms reuse the time of the
// previous event, so an untimed down followed by up is a click.
func replay(d *designer.Designer, s *fio.Script, start time.Time) error {
	now := start
	for i, se := range s.Events {
		if at, ok := se.At(start); ok {
			now = at
		}
		cx, cy := se.Client()
		ev := designer.Event{
			Target:   se.Target,
			Relative: diagram.Point{X: se.X, Y: se.Y},
			Client:   diagram.Point{X: cx, Y: cy},
			Modifier: se.Modifier,
			At:       now,
		}

		var err error
		switch se.Kind {
		case fio.EventDown:
			err = d.PointerDown(ev)
		case fio.EventMove:
			err = d.PointerMove(ev)
		case fio.EventUp:
			err = d.PointerUp(ev)
		case fio.EventJoint:
			_, err = d.InsertJoint(se.Link)
		default:
			err = fmt.Errorf("unknown event kind %q", se.Kind)
		}
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", i+1, se.Kind, err)
		}
	}
	return nil
}
