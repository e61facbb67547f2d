package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/presenter"
)

type viewKind int

const (
	viewProcesses viewKind = iota
	viewTabs
	viewHealth
	viewActions
)

var viewNames = []string{"Processes", "Tabs", "Health", "Actions"}

var viewPollers = map[viewKind]domain.PollerKind{
	viewProcesses: domain.PollerProcesses,
	viewTabs:      domain.PollerTabs,
	viewHealth:    domain.PollerHealth,
}

type actionResultMsg struct {
	text string
	err  error
}

type pendingAction struct {
	prompt string
	run    tea.Cmd
}

// Model is a read-mostly view of the presentation board. State changes arrive as dispatcher
// events; key presses start actions through the coordinator.
type Model struct {
	coordinator domain.ActionCoordinator
	policy      *domain.PolicyStore
	board       *presenter.Board
	th          theme

	view       viewKind
	cursor     int
	showSystem bool
	confirm    *pendingAction
	status     string
	statusErr  bool
	width      int
	height     int
}

func NewModel(coordinator domain.ActionCoordinator, policy *domain.PolicyStore, history int) Model {
	return Model{
		coordinator: coordinator,
		policy:      policy,
		board:       presenter.NewBoard(history),
		th:          defaultTheme(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case eventMsg:
		m.board.Apply(msg.ev)
		if ev, ok := msg.ev.(domain.ActionEvent); ok && ev.Action != domain.ActionRefresh {
			m.setStatus(ev.Message, ev.Err)
		}
		m.clampCursor()
	case actionResultMsg:
		m.setStatus(msg.text, msg.err)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) setStatus(text string, err error) {
	m.status, m.statusErr = text, err != nil
	if err != nil {
		m.status = err.Error()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.confirm != nil {
		switch key {
		case "y", "Y":
			run := m.confirm.run
			m.confirm = nil
			return m, run
		case "n", "N", "esc":
			m.confirm = nil
			m.status = "cancelled"
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.view = (m.view + 1) % viewKind(len(viewNames))
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.view = (m.view + viewKind(len(viewNames)) - 1) % viewKind(len(viewNames))
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "s":
		m.showSystem = !m.showSystem
		m.clampCursor()
	case "r":
		if kind, ok := viewPollers[m.view]; ok {
			m.status = "refreshing " + string(kind)
			return m, m.refresh(kind)
		}
	case "x", "X":
		if m.view != viewProcesses {
			break
		}
		procs := m.processes()
		if m.cursor >= len(procs) {
			break
		}
		p, force := procs[m.cursor], key == "X"
		verb := "Terminate"
		if force {
			verb = "Force kill"
		}
		m.confirm = &pendingAction{
			prompt: fmt.Sprintf("%s %s (pid %d)? [y/n]", verb, p.Name, p.PID),
			run:    m.terminate(p, force),
		}
	case "c":
		if m.view != viewTabs {
			break
		}
		tabs := m.tabs()
		if m.cursor >= len(tabs) {
			break
		}
		tab := tabs[m.cursor]
		m.confirm = &pendingAction{
			prompt: fmt.Sprintf("Close %q in %s? [y/n]", truncate(tab.Title, 40), tab.Browser),
			run:    m.closeTab(tab),
		}
	}
	return m, nil
}

func (m Model) refresh(kind domain.PollerKind) tea.Cmd {
	coordinator := m.coordinator
	return func() tea.Msg {
		err := coordinator.Refresh(context.Background(), kind)
		return actionResultMsg{text: "refreshed " + string(kind), err: err}
	}
}

func (m Model) terminate(p domain.ProcessRecord, force bool) tea.Cmd {
	coordinator := m.coordinator
	return func() tea.Msg {
		err := coordinator.Terminate(context.Background(), p.PID, force)
		return actionResultMsg{text: fmt.Sprintf("signalled %s (pid %d)", p.Name, p.PID), err: err}
	}
}

func (m Model) closeTab(tab domain.BrowserTab) tea.Cmd {
	coordinator := m.coordinator
	return func() tea.Msg {
		n, err := coordinator.CloseTabs(context.Background(), []domain.BrowserTab{tab})
		return actionResultMsg{text: fmt.Sprintf("closed %d tab", n), err: err}
	}
}

func (m Model) processes() []domain.ProcessRecord {
	snap := m.board.Processes.Snapshot
	if snap == nil {
		return nil
	}
	if m.showSystem {
		return snap.Items
	}
	out := make([]domain.ProcessRecord, 0, len(snap.Items))
	for _, p := range snap.Items {
		if !p.System {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) tabs() []domain.BrowserTab {
	if snap := m.board.Tabs.Snapshot; snap != nil {
		return snap.Items
	}
	return nil
}

func (m Model) rowCount() int {
	switch m.view {
	case viewProcesses:
		return len(m.processes())
	case viewTabs:
		return len(m.tabs())
	case viewHealth:
		return m.board.Health.Snapshot.Len()
	}
	return len(m.board.Actions)
}

func (m *Model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.th.Header.Render("keeper"))
	b.WriteString("  ")
	for i, name := range viewNames {
		style := m.th.Tab
		if viewKind(i) == m.view {
			style = m.th.TabOn
		}
		b.WriteString(style.Render(name))
	}
	b.WriteString("\n")

	switch m.view {
	case viewProcesses:
		b.WriteString(m.pollHeader(m.board.Processes.Refreshing, m.board.Processes.Stale(), m.board.Processes.StaleSince(), m.board.Processes.LastError, m.board.Processes.Snapshot.Len()))
		b.WriteString(m.renderProcesses())
	case viewTabs:
		b.WriteString(m.pollHeader(m.board.Tabs.Refreshing, m.board.Tabs.Stale(), m.board.Tabs.StaleSince(), m.board.Tabs.LastError, m.board.Tabs.Snapshot.Len()))
		b.WriteString(m.renderTabs())
	case viewHealth:
		b.WriteString(m.pollHeader(m.board.Health.Refreshing, m.board.Health.Stale(), m.board.Health.StaleSince(), m.board.Health.LastError, m.board.Health.Snapshot.Len()))
		b.WriteString(m.renderHealth())
	case viewActions:
		b.WriteString(m.renderActions())
	}

	b.WriteString("\n")
	switch {
	case m.confirm != nil:
		b.WriteString(m.th.Alert.Render(m.confirm.prompt))
	case m.status != "" && m.statusErr:
		b.WriteString(m.th.Danger.Render(m.status))
	case m.status != "":
		b.WriteString(m.th.Success.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.th.Muted.Render("tab switch view · j/k move · r refresh · x terminate · X kill · c close tab · s system · q quit"))
	return b.String()
}

func (m Model) pollHeader(refreshing, stale bool, since time.Time, lastErr error, n int) string {
	parts := []string{fmt.Sprintf("%d items", n)}
	if refreshing {
		parts = append(parts, m.th.Alert.Render("refreshing…"))
	}
	if stale {
		parts = append(parts, m.th.Danger.Render("stale since "+since.Format("15:04:05")))
	}
	line := m.th.Muted.Render(strings.Join(parts, " · "))
	if lastErr != nil && stale {
		line += "\n" + m.th.Danger.Render(truncate(lastErr.Error(), m.lineWidth()))
	}
	return line + "\n"
}

func (m Model) lineWidth() int {
	if m.width <= 0 {
		return 100
	}
	return m.width
}

func (m Model) row(i int, text string, style lipgloss.Style) string {
	text = truncate(text, m.lineWidth())
	if i == m.cursor {
		return m.th.Selected.Render(text) + "\n"
	}
	return style.Render(text) + "\n"
}

func (m Model) renderProcesses() string {
	var b strings.Builder
	b.WriteString(m.th.Header.Render(fmt.Sprintf("%7s  %-12s %6s %9s  %s", "PID", "USER", "CPU%", "MEM MB", "NAME")) + "\n")
	threshold := m.policy.Get().HeavyProcessThreshold
	for i, p := range m.processes() {
		style := lipgloss.NewStyle()
		if p.IsHeavy(threshold) {
			style = m.th.Alert
		}
		if p.System {
			style = m.th.Muted
		}
		b.WriteString(m.row(i, fmt.Sprintf("%7d  %-12s %6.1f %9.1f  %s", p.PID, truncate(p.User, 12), p.CPUPercent, p.MemoryMB, p.Name), style))
	}
	return b.String()
}

func (m Model) renderTabs() string {
	var b strings.Builder
	b.WriteString(m.th.Header.Render(fmt.Sprintf("%-14s %7s %8s  %s", "BROWSER", "POS", "EST MB", "TITLE")) + "\n")
	for i, t := range m.tabs() {
		style := lipgloss.NewStyle()
		if t.Heavy {
			style = m.th.Alert
		}
		pos := fmt.Sprintf("%d:%d", t.WindowIndex, t.TabIndex)
		b.WriteString(m.row(i, fmt.Sprintf("%-14s %7s %8.0f  %s", truncate(string(t.Browser), 14), pos, t.MemoryMB, t.Title), style))
	}
	if snap := m.board.Tabs.Snapshot; snap != nil {
		for _, w := range snap.Warnings {
			b.WriteString(m.th.Alert.Render("! "+w) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderHealth() string {
	var b strings.Builder
	snap := m.board.Health.Snapshot
	if snap == nil {
		return ""
	}
	for i, r := range snap.Items {
		style := m.th.Success
		switch r.Status {
		case domain.HealthWarning:
			style = m.th.Alert
		case domain.HealthFail:
			style = m.th.Danger
		case domain.HealthInfo:
			style = m.th.Muted
		}
		b.WriteString(m.row(i, fmt.Sprintf("%-8s %-10s %-28s %s", strings.ToUpper(string(r.Status)), r.Category, r.Name, r.Message), style))
	}
	return b.String()
}

func (m Model) renderActions() string {
	var b strings.Builder
	for i, a := range m.board.Actions {
		style := m.th.Success
		text := a.Message
		if a.Err != nil {
			style = m.th.Danger
			text = a.Err.Error()
		}
		b.WriteString(m.row(i, fmt.Sprintf("%s  %-10s %-24s %s", a.At.Format("15:04:05"), a.Action, truncate(a.Target, 24), text), style))
	}
	if len(m.board.Actions) == 0 {
		b.WriteString(m.th.Muted.Render("no actions yet") + "\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
