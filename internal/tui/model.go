// Package tui is the reference host for the combobox engine: a Bubble Tea
// program that owns the state value, translates terminal input into engine
// events, executes the returned effects, and renders the view projection.
// Everything the widget "does" happens in pkg/combobox; this package only
// adapts it to a terminal.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/combox/internal/config"
	"github.com/oakwood-commons/combox/internal/items"
	"github.com/oakwood-commons/combox/pkg/combobox"
)

// Model is the Bubble Tea model hosting one combobox widget.
type Model struct {
	EngineConfig combobox.Config[items.Record]
	State        combobox.State[items.Record]

	Input    textinput.Model
	Styles   Styles
	AppCfg   config.Config
	WinWidth int
	Scroll   int

	// Done holds the committed selection after the user confirms with
	// enter on a closed list or quits; the CLI prints it on exit.
	Done     bool
	quitting bool
}

// New builds the TUI model over the given records.
func New(records []items.Record, appCfg config.Config, lgr logr.Logger) *Model {
	mode := combobox.ModeSingle
	if appCfg.Multi {
		mode = combobox.ModeMulti
	}
	engineCfg := combobox.NewConfig(
		items.RecordID,
		items.RecordDisplay,
		combobox.WithNamespace[items.Record](appCfg.Namespace),
		combobox.WithMode[items.Record](mode),
		combobox.WithLogger[items.Record](lgr),
	)

	ti := textinput.New()
	ti.Placeholder = appCfg.Placeholder
	ti.CharLimit = 200
	ti.SetWidth(60)
	ti.Prompt = ""

	styles := DefaultStyles()
	if appCfg.NoColor {
		styles = PlainStyles()
	}

	m := &Model{
		EngineConfig: engineCfg,
		State:        combobox.InitialState(records),
		Input:        ti,
		Styles:       styles,
		AppCfg:       appCfg,
		WinWidth:     80,
	}
	// The program starts with the input focused, which opens the list.
	m.Input.Focus()
	m.Apply(combobox.FocusedInput{})
	return m
}

// Selection returns the committed selection in order.
func (m *Model) Selection() []items.Record {
	return combobox.SelectedItems(m.State)
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Apply runs one event through the reducer, stores the next state, and
// executes the effects. The input text is then re-synced from the state,
// which is the single source of truth for the query.
func (m *Model) Apply(ev combobox.Event) {
	res := combobox.Transition(m.EngineConfig, m.State, ev)
	m.State = res.State
	for _, ef := range res.Effects {
		m.runEffect(ef)
	}
	if q := combobox.Query(m.State); q != m.Input.Value() {
		m.Input.SetValue(q)
		m.Input.CursorEnd()
	}
	m.clampScroll()
}

// runEffect executes one declarative effect against the terminal widgets.
func (m *Model) runEffect(ef combobox.Effect) {
	switch ef := ef.(type) {
	case combobox.FocusInput:
		m.Input.Focus()
	case combobox.FocusChip:
		// Chip focus is mutually exclusive with input focus.
		m.Input.Blur()
	case combobox.ScrollIntoView:
		m.scrollToElement(ef.ID)
	}
}

// scrollToElement adjusts the dropdown window so the element is visible.
func (m *Model) scrollToElement(elementID string) {
	vm := combobox.ToView(m.EngineConfig, m.State)
	for i, item := range vm.VisibleItems {
		if m.EngineConfig.ItemElementID(items.RecordID(item)) == elementID {
			if i < m.Scroll {
				m.Scroll = i
			}
			if i >= m.Scroll+m.maxVisible() {
				m.Scroll = i - m.maxVisible() + 1
			}
			return
		}
	}
}

func (m *Model) maxVisible() int {
	if m.AppCfg.MaxVisible > 0 {
		return m.AppCfg.MaxVisible
	}
	return 8
}

func (m *Model) clampScroll() {
	vm := combobox.ToView(m.EngineConfig, m.State)
	max := len(vm.VisibleItems) - m.maxVisible()
	if max < 0 {
		max = 0
	}
	if m.Scroll > max {
		m.Scroll = max
	}
	if m.Scroll < 0 {
		m.Scroll = 0
	}
}

// Update translates terminal messages into engine events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WinWidth = msg.Width
		w := msg.Width - 4
		if w > 10 {
			m.Input.SetWidth(w)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch keyStr {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if !combobox.IsOpened(m.State) && !m.chipFocused() {
			m.Done = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.chipFocused() {
		return m.handleChipKey(keyStr)
	}

	// Dedicated bindings before the generic key table.
	switch keyStr {
	case "tab":
		if m.EngineConfig.Mode == combobox.ModeMulti {
			if n := len(combobox.SelectedItems(m.State)); n > 0 {
				m.Apply(combobox.FocusedSelectedItem{Index: n - 1})
				return m, nil
			}
		}
	case "backspace":
		if m.EngineConfig.Mode == combobox.ModeMulti && m.Input.Value() == "" {
			if n := len(combobox.SelectedItems(m.State)); n > 0 {
				m.Apply(combobox.FocusedSelectedItem{Index: n - 1})
				return m, nil
			}
		}
	}

	if ev, _ := combobox.EventForKey(keyStr); ev != nil {
		m.Apply(ev)
		return m, nil
	}

	// Everything else may edit the input text.
	before := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if after := m.Input.Value(); after != before {
		m.Apply(combobox.InputtedQuery{Query: after})
	}
	return m, cmd
}

// handleChipKey maps keys while a selected-item chip holds focus.
func (m *Model) handleChipKey(keyStr string) (tea.Model, tea.Cmd) {
	chip, _ := m.chipIndex()
	switch keyStr {
	case "left":
		m.Apply(combobox.FocusedSelectedItem{Index: chip - 1})
	case "right":
		if chip+1 < len(combobox.SelectedItems(m.State)) {
			m.Apply(combobox.FocusedSelectedItem{Index: chip + 1})
		} else {
			m.Apply(combobox.BlurredSelectedItem{})
		}
	case "backspace", "delete", "enter":
		m.Apply(combobox.PressedEnterKey{})
	default:
		if ev, _ := combobox.EventForKey(keyStr); ev != nil {
			m.Apply(ev)
		} else {
			m.Apply(combobox.BlurredSelectedItem{})
		}
	}
	return m, nil
}

func (m *Model) chipFocused() bool {
	_, ok := m.chipIndex()
	return ok
}

func (m *Model) chipIndex() (int, bool) {
	if st, ok := m.State.(combobox.ChipFocused[items.Record]); ok {
		return st.Chip, true
	}
	return 0, false
}

// View renders the widget from the view projection.
func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	vm := combobox.ToView(m.EngineConfig, m.State)
	aria := combobox.ToAria(m.EngineConfig, m.State)

	var b strings.Builder

	if m.EngineConfig.Mode == combobox.ModeMulti && len(vm.SelectedItems) > 0 {
		b.WriteString(m.renderChips(vm.SelectedItems))
		b.WriteString("\n")
	}

	b.WriteString(m.truncate(m.Styles.Prompt.Render("> ") + m.Input.View()))
	b.WriteString("\n")

	if vm.IsOpened {
		b.WriteString(m.renderDropdown(vm))
	}

	b.WriteString(m.Styles.Helper.Render(m.truncate(m.AppCfg.HelperText)))
	b.WriteString("\n")
	status := fmt.Sprintf("%d/%d items · expanded=%s",
		len(vm.VisibleItems), len(combobox.Items(m.State)), aria.Input["aria-expanded"])
	b.WriteString(m.Styles.Status.Render(m.truncate(status)))

	return tea.NewView(b.String())
}

func (m *Model) renderChips(selected []items.Record) string {
	chip, chipFocused := m.chipIndex()
	parts := make([]string, 0, len(selected))
	for i, rec := range selected {
		style := m.Styles.Chip
		if chipFocused && i == chip {
			style = m.Styles.ChipFocused
		}
		parts = append(parts, style.Render("["+rec.Display+"]"))
	}
	return m.truncate(strings.Join(parts, " "))
}

func (m *Model) renderDropdown(vm combobox.ViewModel[items.Record]) string {
	var b strings.Builder
	end := m.Scroll + m.maxVisible()
	if end > len(vm.VisibleItems) {
		end = len(vm.VisibleItems)
	}
	for i := m.Scroll; i < end; i++ {
		line := "  " + vm.VisibleItems[i].Display
		style := m.Styles.Item
		switch vm.Statuses[i] {
		case combobox.StatusHighlighted:
			line = "▸ " + vm.VisibleItems[i].Display
			style = m.Styles.Highlighted
		case combobox.StatusSelected:
			line = "✓ " + vm.VisibleItems[i].Display
			style = m.Styles.Selected
		case combobox.StatusSelectedAndHighlighted:
			line = "✓ " + vm.VisibleItems[i].Display
			style = m.Styles.Both
		}
		b.WriteString(style.Render(m.truncate(line)))
		b.WriteString("\n")
	}
	if len(vm.VisibleItems) == 0 {
		b.WriteString(m.Styles.Placeholder.Render("  no matches"))
		b.WriteString("\n")
	}
	return b.String()
}

// truncate bounds s to the window width by display cells, ignoring any
// embedded styling sequences.
func (m *Model) truncate(s string) string {
	w := m.WinWidth
	if w <= 0 {
		w = 80
	}
	if ansi.StringWidth(s) <= w {
		return s
	}
	return ansi.Truncate(s, w-1, "…")
}
