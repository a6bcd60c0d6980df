package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowboard/internal/config"
	"github.com/matzehuels/flowboard/pkg/designer"
	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
	fio "github.com/matzehuels/flowboard/pkg/io"
)

// Rows taken by the title bar above the canvas and the status and help
// lines below it.
const (
	headerRows = 1
	footerRows = 2
)

// Canvas size used until the terminal reports its dimensions.
const (
	defaultCols = 100
	defaultRows = 30
)

const mouseHint = "drag to move · ctrl+click to add · drag on empty space to select · right-click a link for a joint"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	statusStyle = lipgloss.NewStyle().Foreground(colorGray)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Key bindings
// =============================================================================

type editorKeys struct {
	Save   key.Binding
	Revert key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultEditorKeys() editorKeys {
	return editorKeys{
		Save:   key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Revert: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "revert to saved")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k editorKeys) ShortHelp() []key.Binding { return []key.Binding{k.Save, k.Help, k.Quit} }

func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Revert}, {k.Help, k.Quit}}
}

// =============================================================================
// EditorModel - Interactive diagram editing
// =============================================================================

// EditorModel is the bubbletea model that feeds terminal mouse events into a
// designer. Each cell covers Terminal.CellWidth × Terminal.CellHeight canvas
// pixels; the canvas starts below the title bar.
type EditorModel struct {
	d      *designer.Designer
	cell   config.TerminalConfig
	keys   editorKeys
	help   help.Model
	logger *log.Logger

	path   string
	saved  string
	status string
	failed bool

	width, height int
}

// NewEditorModel creates an editor for d that saves to path.
func NewEditorModel(d *designer.Designer, cell config.TerminalConfig, path string, logger *log.Logger) EditorModel {
	return EditorModel{
		d:      d,
		cell:   cell,
		keys:   defaultEditorKeys(),
		help:   help.New(),
		logger: logger,
		path:   path,
		status: mouseHint,
		width:  defaultCols,
		height: defaultRows,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			m.save()
		case key.Matches(msg, m.keys.Revert):
			m.revert()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

// pointer converts a terminal cell to container and client coordinates.
func (m *EditorModel) pointer(x, y int) (relative, client diagram.Point) {
	client = diagram.Point{X: float64(x) * m.cell.CellWidth, Y: float64(y) * m.cell.CellHeight}
	relative = diagram.Point{X: client.X, Y: float64(y-headerRows) * m.cell.CellHeight}
	return relative, client
}

func (m *EditorModel) mouse(msg tea.MouseMsg) {
	rel, client := m.pointer(msg.X, msg.Y)
	ev := designer.Event{Relative: rel, Client: client, Modifier: msg.Ctrl || msg.Alt}

	var err error
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if it, ok := m.d.ItemAt(rel); ok {
			ev.Target = it.ID
		}
		err = m.d.PointerDown(ev)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		err = m.splitLinkAt(rel)
	case msg.Action == tea.MouseActionMotion:
		err = m.d.PointerMove(ev)
	case msg.Action == tea.MouseActionRelease:
		err = m.d.PointerUp(ev)
	default:
		return
	}
	if err != nil {
		m.fail(err)
	}
}

// splitLinkAt inserts a joint into the link nearest to p.
func (m *EditorModel) splitLinkAt(p diagram.Point) error {
	tolerance := max(m.cell.CellWidth, m.cell.CellHeight)
	link, ok := m.d.LinkNear(p, tolerance)
	if !ok {
		return nil
	}
	joint, err := m.d.InsertJoint(link.ID)
	if err != nil {
		return err
	}
	m.setStatus(fmt.Sprintf("inserted joint %s into %s", joint.ID, link.ID))
	return nil
}

func (m *EditorModel) save() {
	if err := fio.ExportJSON(m.d.Items(), m.path); err != nil {
		m.fail(err)
		return
	}
	m.saved = m.path
	m.setStatus("saved " + m.path)
	m.logger.Info("saved diagram", "path", m.path, "items", len(m.d.Items()))
}

// revert reloads the save target, discarding unsaved edits. It fails while
// a drag or rectangle is open.
func (m *EditorModel) revert() {
	items, err := fio.ImportJSON(m.path)
	if err == nil {
		err = m.d.Load(items)
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.setStatus("reverted to " + m.path)
}

func (m *EditorModel) setStatus(s string) {
	m.status, m.failed = s, false
}

func (m *EditorModel) fail(err error) {
	m.status, m.failed = errors.UserMessage(err), true
	m.logger.Warn("editor", "err", err)
}

// Saved returns the path of the last successful save, or "".
func (m EditorModel) Saved() string { return m.saved }

func (m EditorModel) View() string {
	view := m.d.View()

	header := headerStyle.Render("flowboard") + StyleDim.Render(fmt.Sprintf(
		"  %d items · %d selected", len(view.Items), len(m.d.Selected())))
	if view.Dragging {
		header += StyleDim.Render(" · dragging")
	}

	c := newCanvas(m.width, max(m.height-headerRows-footerRows, 1), m.cell)
	c.draw(view)

	status := statusStyle.Render(m.status)
	if m.failed {
		status = errorStyle.Render(m.status)
	}
	return header + "\n" + c.String() + "\n" + status + "\n" + m.help.View(m.keys)
}
