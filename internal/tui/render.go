package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/executor"
	"github.com/studiowebux/reqline/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"} // Dark blue / Light blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleRedirect = lipgloss.NewStyle().
			Foreground(colorBlue)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleCursor = lipgloss.NewStyle().
			Reverse(true)
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows used by everything except the log lines: title, URL box (3),
	// methods, log border (2), notice, help
	chromeHeight = 9
)

// Renderer turns a state snapshot into a frame. It owns the purely visual
// state: terminal size, spinner frame and the log viewport.
type Renderer struct {
	keys   *keybinds.Registry
	width  int
	height int

	spinner spinner.Model
	log     viewport.Model
	help    help.Model
}

// NewRenderer creates a renderer sized for a default 80x24 terminal
func NewRenderer(keys *keybinds.Registry) *Renderer {
	if keys == nil {
		keys = keybinds.NewDefaultRegistry()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleWarning

	r := &Renderer{
		keys:    keys,
		spinner: sp,
		log:     viewport.New(defaultWidth, defaultHeight),
		help:    help.New(),
	}
	r.Resize(defaultWidth, defaultHeight)
	return r
}

// Resize records new terminal dimensions
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	r.log.Width = width - 2
	r.log.Height = max(1, height-chromeHeight)
	r.help.Width = width
}

// Tick advances the pending indicator by one frame
func (r *Renderer) Tick() {
	r.spinner, _ = r.spinner.Update(spinner.TickMsg{ID: r.spinner.ID()})
}

// Draw renders the full frame for s
func (r *Renderer) Draw(s app.Snapshot) string {
	sections := []string{
		r.renderTitle(s),
		r.renderURL(s),
		r.renderMethods(s),
		r.renderLog(s),
		r.renderNotice(s),
		r.renderHelp(s),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) renderTitle(s app.Snapshot) string {
	mode := styleSubtle.Render("[" + s.Mode.String() + "]")
	if s.Mode == app.ModeEditing {
		mode = styleSuccess.Render("[" + s.Mode.String() + "]")
	}
	line := styleTitle.Render("reqline") + " " + mode
	if s.Pending {
		line += " " + r.spinner.View() + styleWarning.Render(" request in flight")
	}
	return ansi.Truncate(line, r.width, "…")
}

func (r *Renderer) renderURL(s app.Snapshot) string {
	borderColor := colorGray
	var content string
	if s.Mode == app.ModeEditing {
		borderColor = colorGreen
		after := []rune(s.AfterCur)
		under := " "
		if len(after) > 0 {
			under = string(after[0])
			after = after[1:]
		}
		content = s.BeforeCur + styleCursor.Render(under) + string(after)
	} else if s.Input == "" {
		hint := fmt.Sprintf("press %s to enter a URL", r.keys.GetBindingString(keybinds.ContextNormal, keybinds.ActionEdit))
		content = styleSubtle.Render(hint)
	} else {
		content = s.Input
	}

	inner := r.width - 4
	content = ansi.Truncate(content, inner, "…")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(r.width - 2).
		Render(content)
}

func (r *Renderer) renderMethods(s app.Snapshot) string {
	parts := make([]string, 0, len(s.Methods)+1)
	for i, m := range s.Methods {
		label := fmt.Sprintf(" %s ", m)
		if i == s.Selected {
			parts = append(parts, styleSelected.Render(label))
		} else {
			parts = append(parts, styleSubtle.Render(label))
		}
	}
	if s.Selected < 0 {
		parts = append(parts, styleSubtle.Render(fmt.Sprintf("(none, sends %s)", s.Fallback)))
	}
	return ansi.Truncate(" "+strings.Join(parts, " "), r.width, "…")
}

func (r *Renderer) renderLog(s app.Snapshot) string {
	lines := make([]string, 0, len(s.Log))
	for _, entry := range s.Log {
		lines = append(lines, ansi.Truncate(r.formatEntry(entry), r.log.Width, "…"))
	}
	if len(lines) == 0 {
		lines = append(lines, styleSubtle.Render("no requests yet"))
	}

	r.log.SetContent(strings.Join(lines, "\n"))
	r.log.GotoBottom()
	if s.Scroll > 0 {
		r.log.SetYOffset(r.log.YOffset - s.Scroll)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(r.width - 2).
		Render(r.log.View())
}

func (r *Renderer) formatEntry(e app.ExchangeEntry) string {
	stamp := styleSubtle.Render(e.SubmittedAt.Format("15:04:05"))
	method := fmt.Sprintf("%-6s", e.Method)

	var outcome string
	switch {
	case e.Pending:
		outcome = r.spinner.View() + styleWarning.Render(" pending")
	case e.Failed():
		outcome = styleError.Render("error: " + e.Err)
	default:
		outcome = statusStyle(e.Status).Render(fmt.Sprintf("%d", e.Status))
	}

	line := fmt.Sprintf("%s %s %s  %s", stamp, method, e.URL, outcome)
	if !e.Pending {
		line += styleSubtle.Render("  " + executor.FormatDuration(e.Duration))
	}
	return line
}

func statusStyle(status int) lipgloss.Style {
	switch {
	case executor.IsSuccessStatus(status):
		return styleSuccess
	case executor.IsRedirectStatus(status):
		return styleRedirect
	case executor.IsClientErrorStatus(status):
		return styleWarning
	case executor.IsServerErrorStatus(status):
		return styleError
	default:
		return styleSubtle
	}
}

func (r *Renderer) renderNotice(s app.Snapshot) string {
	if s.Notice == "" {
		return ""
	}
	return ansi.Truncate(styleWarning.Render(s.Notice), r.width, "…")
}

// renderHelp builds the footer from the live registry so user overrides
// show up
func (r *Renderer) renderHelp(s app.Snapshot) string {
	var actions []keybinds.Action
	context := keybinds.ContextNormal
	if s.Mode == app.ModeEditing {
		context = keybinds.ContextEditing
		actions = []keybinds.Action{
			keybinds.ActionTextSubmit,
			keybinds.ActionTextCancel,
			keybinds.ActionTextPaste,
			keybinds.ActionTextClear,
			keybinds.ActionQuitForce,
		}
	} else {
		actions = []keybinds.Action{
			keybinds.ActionEdit,
			keybinds.ActionQuit,
			keybinds.ActionMethodNext,
			keybinds.ActionMethodPrevious,
			keybinds.ActionCopyURL,
			keybinds.ActionScrollUp,
			keybinds.ActionMethodClear,
		}
	}

	bindings := make([]key.Binding, 0, len(actions))
	for _, action := range actions {
		keys := r.keys.GetBinding(context, action)
		if len(keys) == 0 {
			continue
		}
		info := keybinds.GetActionInfo(action)
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), info.Description),
		))
	}
	return r.help.ShortHelpView(bindings)
}
