package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowboard/pkg/cache"
	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/render/nodelink"
)

// renderCommand creates the render command for exporting diagrams as images.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format    string
		output    string
		selection bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "render [diagram.json]",
		Short: "Render a diagram to DOT, SVG, PDF, or PNG",
		Long: `Render a diagram with Graphviz, keeping every item at its stored position.

PDF and PNG output require rsvg-convert on the PATH.`,
		Example: `  flowboard render process.json
  flowboard render process.json -f png -o process.png
  flowboard render process.json -f dot -o -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, nodelink.Format(format), output, selection, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(nodelink.FormatSVG), "output format: "+formatList())
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default: <input>.<format>)`)
	cmd.Flags().BoolVar(&selection, "selection", false, "outline selected items")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always re-render instead of reusing cached output")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, format nodelink.Format, output string, selection, noCache bool) error {
	if !slices.Contains(nodelink.Formats, format) {
		return fmt.Errorf("unsupported format %q (want %s)", format, formatList())
	}
	items, err := c.loadDiagram(input)
	if err != nil {
		return err
	}

	store, err := newCache(noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	prog := newProgress(c.Logger)
	data, err := c.render(ctx, store, items, format, nodelink.Options{Selection: selection})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d items as %s", len(items), format))

	if output == "" {
		output = defaultRenderPath(input, format)
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}
	if output != "-" {
		printSuccess("Rendered diagram")
		printFile(output)
	}
	return nil
}

// render returns the cached artifact for the diagram, rendering and storing
// it on a miss. Cache failures are logged and otherwise ignored.
func (c *CLI) render(ctx context.Context, store cache.Cache, items []diagram.Item, format nodelink.Format, opts nodelink.Options) ([]byte, error) {
	key := cache.ArtifactKey(string(format), nodelink.ToDOT(items, opts))
	data, hit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Warn("cache read failed", "err", err)
	}
	if hit {
		c.Logger.Debug("render cache hit", "format", format)
		return data, nil
	}

	data, err = nodelink.Render(ctx, items, format, opts)
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, data, renderTTL); err != nil {
		c.Logger.Warn("cache write failed", "err", err)
	}
	return data, nil
}

// defaultRenderPath replaces the extension of input with the format name.
func defaultRenderPath(input string, format nodelink.Format) string {
	if input == "" {
		input = defaultDiagramFile
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(format)
}

func formatList() string {
	names := make([]string, len(nodelink.Formats))
	for i, f := range nodelink.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
