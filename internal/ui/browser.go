// Package ui provides the interactive status entry browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gst/internal/output"
	"github.com/raphi011/gst/internal/status"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// BrowseResult contains the outcome of a browse session.
type BrowseResult struct {
	Path      string // selected path, empty if cancelled
	Selected  bool
	Cancelled bool
}

// entrySource adapts entries for fuzzy matching on their paths.
type entrySource []status.Entry

func (s entrySource) String(i int) string { return s[i].Path }
func (s entrySource) Len() int            { return len(s) }

// browserModel is the bubbletea model for browsing status entries.
type browserModel struct {
	entries   []status.Entry
	branch    *status.BranchInfo
	filtered  []status.Entry
	textInput textinput.Model
	cursor    int
	selected  *status.Entry
	cancelled bool
	copied    string
	maxHeight int
}

func newBrowserModel(entries []status.Entry, branch *status.BranchInfo) browserModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	return browserModel{
		entries:   entries,
		branch:    branch,
		filtered:  entries,
		textInput: ti,
		maxHeight: 15,
	}
}

func (m browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = &m.filtered[m.cursor]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case "ctrl+y":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				path := m.filtered[m.cursor].Path
				if err := clipboard.WriteAll(path); err == nil {
					m.copied = path
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = filterEntries(m.entries, m.textInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filterEntries fuzzy-matches entries by path, best matches first.
func filterEntries(entries []status.Entry, query string) []status.Entry {
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, entrySource(entries))
	filtered := make([]status.Entry, len(matches))
	for i, match := range matches {
		filtered[i] = entries[match.Index]
	}
	return filtered
}

func (m browserModel) View() string {
	var sb strings.Builder

	if m.branch != nil {
		sb.WriteString(output.BranchLine(m.branch, true))
		sb.WriteString("\n")
	}
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  No matches"))
		sb.WriteString("\n")
	} else {
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			halfHeight := m.maxHeight / 2
			start = m.cursor - halfHeight
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			e := m.filtered[i]
			if i == m.cursor {
				sb.WriteString(cursorStyle.Render("> "))
				sb.WriteString(selectedStyle.Render(output.Render(e, false)))
			} else {
				sb.WriteString("  ")
				sb.WriteString(output.Render(e, true))
			}
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	if m.copied != "" {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("copied " + m.copied))
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ navigate • enter print path • ctrl+y copy • esc cancel"))

	return sb.String()
}

// RunBrowser shows an interactive fuzzy-filterable browser over entries.
// Returns the selected entry's path or a cancelled result.
func RunBrowser(entries []status.Entry, branch *status.BranchInfo) (*BrowseResult, error) {
	if len(entries) == 0 {
		return &BrowseResult{Cancelled: true}, nil
	}

	model := newBrowserModel(entries, branch)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(browserModel)
	if m.cancelled {
		return &BrowseResult{Cancelled: true}, nil
	}
	if m.selected != nil {
		return &BrowseResult{Path: m.selected.Path, Selected: true}, nil
	}
	return &BrowseResult{Cancelled: true}, nil
}
