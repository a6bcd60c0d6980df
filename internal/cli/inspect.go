package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowboard/pkg/diagram"
)

// inspectCommand creates the inspect command for summarizing a diagram.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [diagram.json]",
		Short: "Show the items and links of a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			items, err := c.loadDiagram(input)
			if err != nil {
				return err
			}
			store, err := diagram.NewStore(items)
			if err != nil {
				return err
			}
			printInspect(store)
			return nil
		},
	}
	return cmd
}

func printInspect(store *diagram.Store) {
	links := store.Links()
	printKeyValue("Items", StyleNumber.Render(strconv.Itoa(store.Len())))
	printKeyValue("Links", StyleNumber.Render(strconv.Itoa(len(links))))
	printKeyValue("Selected", StyleNumber.Render(strconv.Itoa(len(store.Selected()))))
	printNewline()
	fmt.Println(itemTable(store.Items()))
	if len(links) > 0 {
		printNewline()
		fmt.Println(linkTable(links))
	}
}

// itemTable renders items in paint order; selected rows are highlighted.
func itemTable(items []diagram.Item) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		mark := ""
		if it.Selected {
			mark = "●"
		}
		rows[i] = []string{mark, it.ID, it.Kind.String(), num(it.Position.X), num(it.Position.Y), strings.Join(it.Edges, ", ")}
	}

	return newTable("", "ID", "Type", "Left", "Top", "Edges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return tableHeaderStyle
			case items[row].Selected:
				return StyleHighlight
			case col == 2:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func linkTable(links []diagram.Link) string {
	rows := make([][]string, len(links))
	for i, l := range links {
		rows[i] = []string{l.ID, l.StartCenter.String(), l.EndCenter.String(), fmt.Sprintf("%.1f", l.Length())}
	}
	return newTable("Link", "From", "To", "Length").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
