package cli

import (
	"context"
	"strings"
	"sync"

	"github.com/alexanderramin/tubepile/internal/cli/formatter"
	"github.com/alexanderramin/tubepile/internal/contract"
	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/alexanderramin/tubepile/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modeTable shellMode = iota // Group table has focus.
	modeForm                   // huh add/edit form is active.
)

type groupsLoadedMsg struct {
	report *contract.GroupReport
	err    error
}

// groupSavedMsg reports the outcome of an add or update.
type groupSavedMsg struct {
	group   domain.PileGroup
	updated bool
	found   bool
	err     error
}

type groupRemovedMsg struct {
	id    string
	name  string
	found bool
	err   error
}

// changeTracker records the latest store change reported through
// PileGroupService.Subscribe; the table highlights those rows.
type changeTracker struct {
	mu   sync.Mutex
	last service.ChangeEvent
}

func (c *changeTracker) record(ev service.ChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = ev
}

func (c *changeTracker) highlighted() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last.Kind == service.ChangeRemoved {
		return nil
	}
	ids := make(map[string]bool, len(c.last.IDs))
	for _, id := range c.last.IDs {
		ids[id] = true
	}
	return ids
}

// shellModel is the bubbletea Model for the interactive pile group editor:
// a table of groups with totals, and an add/edit form with live preview.
type shellModel struct {
	app  *App
	ctx  context.Context
	keys shellKeyMap

	mode   shellMode
	report *contract.GroupReport
	cursor int
	width  int

	// form state; editingID is empty when adding
	form      *huh.Form
	values    *pileFormValues
	editingID string

	status      string
	changes     *changeTracker
	unsubscribe func()
	quitting    bool
}

func newShellModel(ctx context.Context, app *App) shellModel {
	changes := &changeTracker{}
	return shellModel{
		app:         app,
		ctx:         ctx,
		keys:        defaultShellKeys(),
		report:      contract.BuildGroupReport(nil),
		changes:     changes,
		unsubscribe: app.Groups.Subscribe(changes.record),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return m.loadGroups()
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.mode == modeForm {
			if key.Matches(msg, m.keys.Cancel) {
				return m.cancelForm(), nil
			}
			return m.updateForm(msg)
		}
		return m.updateTable(msg)

	case groupsLoadedMsg:
		if msg.err != nil {
			m.status = shellError(msg.err)
			return m, nil
		}
		m.report = msg.report
		m.cursor = clampCursor(m.cursor, len(m.report.Rows))
		return m, nil

	case groupSavedMsg:
		m.status = savedStatus(msg)
		return m, m.loadGroups()

	case groupRemovedMsg:
		switch {
		case msg.err != nil:
			m.status = shellError(msg.err)
		case !msg.found:
			m.status = formatter.Notice("Group was already removed.")
		default:
			m.status = formatter.Success("Removed " + formatter.Bold(msg.name))
		}
		return m, m.loadGroups()
	}

	// Forward remaining messages (field focus, init) to an active form.
	if m.mode == modeForm && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Tubular piles") + "\n\n")

	if m.mode == modeForm && m.form != nil {
		title := "New pile group"
		if m.editingID != "" {
			title = "Editing " + formatter.TruncID(m.editingID)
		}
		b.WriteString(formatter.Bold(title) + "\n")
		b.WriteString(m.form.View() + "\n")
		b.WriteString(formatter.FormatMetrics("Live preview", m.values.preview()) + "\n\n")
	}

	if len(m.report.Rows) == 0 {
		b.WriteString(formatter.Dim("No pile groups yet. Press a to add one.") + "\n")
	} else {
		cursor := m.cursor
		if m.mode == modeForm {
			cursor = -1
		}
		b.WriteString(formatter.FormatGroupTable(m.report, formatter.GroupTableOptions{
			Cursor:    cursor,
			Highlight: m.changes.highlighted(),
		}))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + renderHelp(m.helpBindings()) + "\n")
	return b.String()
}

// ── table mode ───────────────────────────────────────────────────────────────

func (m shellModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.report.Rows

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		return m.openForm(nil)
	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(rows) {
			return m.openForm(rows[m.cursor].Group)
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(rows) {
			return m, m.removeGroup(rows[m.cursor].Group)
		}
	}
	return m, nil
}

// ── form mode ────────────────────────────────────────────────────────────────

// openForm shows the pile group form, populated from g when editing.
func (m shellModel) openForm(g *domain.PileGroup) (tea.Model, tea.Cmd) {
	m.values = newPileFormValues(g)
	m.editingID = ""
	if g != nil {
		m.editingID = g.ID
	}
	m.form = pileGroupForm(m.values)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	m.mode = modeForm
	m.status = ""
	return m, m.form.Init()
}

func (m shellModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submitForm()
		m = m.closeForm()
		return m, tea.Batch(cmd, submit)
	case huh.StateAborted:
		return m.cancelForm(), cmd
	}
	return m, cmd
}

// cancelForm discards the form without touching the store.
func (m shellModel) cancelForm() shellModel {
	m = m.closeForm()
	m.status = formatter.Dim("Cancelled.")
	return m
}

func (m shellModel) closeForm() shellModel {
	m.mode = modeTable
	m.form = nil
	m.values = nil
	m.editingID = ""
	return m
}

// ── store commands ───────────────────────────────────────────────────────────

func (m shellModel) loadGroups() tea.Cmd {
	ctx, app := m.ctx, m.app
	return func() tea.Msg {
		report, err := app.Groups.Report(ctx)
		return groupsLoadedMsg{report: report, err: err}
	}
}

// submitForm captures the form values now, since closeForm drops them.
func (m shellModel) submitForm() tea.Cmd {
	ctx, app := m.ctx, m.app
	id := m.editingID
	fields, err := m.values.group()
	return func() tea.Msg {
		if err != nil {
			return groupSavedMsg{err: err}
		}
		if id == "" {
			g := fields
			err := app.Groups.Add(ctx, &g)
			return groupSavedMsg{group: g, found: true, err: err}
		}
		found, err := app.Groups.Update(ctx, id, fields)
		fields.ID = id
		return groupSavedMsg{group: fields, updated: true, found: found, err: err}
	}
}

func (m shellModel) removeGroup(g *domain.PileGroup) tea.Cmd {
	ctx, app := m.ctx, m.app
	id, name := g.ID, g.Name
	return func() tea.Msg {
		found, err := app.Groups.Remove(ctx, id)
		return groupRemovedMsg{id: id, name: name, found: found, err: err}
	}
}

func (m shellModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m shellModel) helpBindings() []key.Binding {
	if m.mode == modeForm {
		return m.keys.formHelp()
	}
	return m.keys.tableHelp()
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}

func savedStatus(msg groupSavedMsg) string {
	switch {
	case msg.err != nil:
		return shellError(msg.err)
	case !msg.found:
		return formatter.Notice("Group was removed while editing; nothing updated.")
	case msg.updated:
		return formatter.FormatGroupSaved("Updated", &msg.group)
	default:
		return formatter.FormatGroupSaved("Added", &msg.group)
	}
}

func shellError(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
