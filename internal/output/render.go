package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/gst/internal/status"
)

// Status line styles, matching git's conventional coloring.
var (
	stagedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unstagedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	untrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	ignoredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// StyleEnabled decides whether to color output for the given file descriptor.
// mode is the config color setting: "auto", "always" or "never".
func StyleEnabled(mode string, fd uintptr) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render returns the short-format line for an entry, without a newline.
// Collapsed untracked directories get a trailing slash like git's output.
func Render(e status.Entry, styled bool) string {
	switch e.Kind {
	case status.KindTracked:
		line := e.Code + " " + e.Path
		if !styled {
			return line
		}
		// Index changes green, worktree changes red, like git.
		if len(e.Code) == 2 && e.Code[1] != ' ' {
			return unstagedStyle.Render(line)
		}
		return stagedStyle.Render(line)
	case status.KindUntracked:
		return style(untrackedStyle, "?? "+e.Path, styled)
	case status.KindUntrackedDir:
		return style(untrackedStyle, "?? "+e.Path+"/", styled)
	case status.KindIgnored:
		return style(ignoredStyle, "!! "+e.Path, styled)
	}
	return e.Path
}

// BranchLine returns the "## head...upstream [ahead n, behind m]" header.
func BranchLine(b *status.BranchInfo, styled bool) string {
	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(b.Head)
	if b.Upstream != "" {
		sb.WriteString("...")
		sb.WriteString(b.Upstream)
	}
	switch {
	case b.Ahead > 0 && b.Behind > 0:
		fmt.Fprintf(&sb, " [ahead %d, behind %d]", b.Ahead, b.Behind)
	case b.Ahead > 0:
		fmt.Fprintf(&sb, " [ahead %d]", b.Ahead)
	case b.Behind > 0:
		fmt.Fprintf(&sb, " [behind %d]", b.Behind)
	}
	return style(branchStyle, sb.String(), styled)
}

func style(s lipgloss.Style, text string, styled bool) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
