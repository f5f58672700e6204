package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"

	"github.com/pveldrane/pill/internal/config"
	"github.com/pveldrane/pill/internal/errmsg"
	"github.com/pveldrane/pill/internal/geometry"
	"github.com/pveldrane/pill/internal/haptic"
	"github.com/pveldrane/pill/internal/keymap"
	"github.com/pveldrane/pill/internal/notify"
	"github.com/pveldrane/pill/internal/preset"
	"github.com/pveldrane/pill/internal/state"
	"github.com/pveldrane/pill/internal/stderr"
	"github.com/pveldrane/pill/internal/toast"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("240"))

	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	entryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

const (
	headerHeight = 1
	footerHeight = 2 // border + content
	historySize  = 8
)

// audioNoiseMsg carries a stderr line captured from the audio stack.
type audioNoiseMsg string

// surface is the live geometry the toast queries every frame. It is
// shared by pointer so resizes are visible mid-animation.
type surface struct {
	size geometry.Size
}

func (s *surface) Frame() geometry.Size { return s.size }

func (s *surface) SafeInsets() geometry.Insets {
	return geometry.Insets{Top: headerHeight, Bottom: footerHeight}
}

type model struct {
	cfg      *config.Config
	stateMgr *state.Manager
	notifier notify.Notifier
	feedback haptic.Feedback
	keys     *keymap.Resolver
	zones    *zone.Manager
	surface  *surface

	toast    toast.Model
	hasToast bool

	side    toast.Side
	drag    bool
	focused bool

	history    []state.HistoryEntry
	status     string
	audioNoise string
	width      int
	height     int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}

	switch cfg.Icons {
	case "nerd":
		preset.Init(preset.StyleNerd)
	case "ascii":
		preset.Init(preset.StyleASCII)
	default:
		preset.Init(preset.StyleUnicode)
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpStateOpen, err))
	}

	// Settings priority: saved state > config > defaults
	side := parseSide(cfg.Side)
	drag := cfg.DragEnabled()
	if saved, err := stateMgr.GetSettings(); err == nil && saved != nil {
		side = parseSide(saved.Side)
		drag = saved.DragDismiss
	}

	notifier, err := notify.New()
	if err != nil {
		stateMgr.Close()
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	var feedback haptic.Feedback = haptic.Bell{}
	if cfg.HasSound() {
		sound := cfg.GetSoundConfig()
		feedback = haptic.NewSoundPlayer(sound.Path, sound.Volume, nil)
	}

	history, err := stateMgr.RecentToasts(historySize)
	if err != nil {
		stateMgr.Close()
		return model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpHistoryLoad, err))
	}

	return model{
		cfg:      cfg,
		stateMgr: stateMgr,
		notifier: notifier,
		feedback: feedback,
		keys:     keymap.NewResolver(keymap.Default()),
		zones:    zone.New(),
		surface:  &surface{},
		side:     side,
		drag:     drag,
		focused:  true,
		history:  history,
	}, nil
}

func parseSide(s string) toast.Side {
	switch s {
	case "bottom":
		return toast.SideBottom
	case "center":
		return toast.SideCenter
	default:
		return toast.SideTop
	}
}

func (m model) Init() tea.Cmd {
	return listenAudioNoise()
}

// listenAudioNoise surfaces stderr lines captured from the audio stack.
func listenAudioNoise() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return audioNoiseMsg(line)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.size = geometry.Size{Width: msg.Width, Height: msg.Height}
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		return m, nil

	case audioNoiseMsg:
		m.audioNoise = string(msg)
		return m, listenAudioNoise()

	case toast.DismissedMsg:
		m.hasToast = false
		return m, nil

	case tea.MouseMsg:
		if m.hasToast {
			var cmd tea.Cmd
			m.toast, cmd = m.toast.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.hasToast {
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		if err := m.stateMgr.Close(); err != nil {
			stderr.WriteOriginal(errmsg.Format(errmsg.OpSettingsSave, err) + "\n")
		}
		return m, tea.Quit

	case keymap.ActionToastDone:
		return m.present("Saved", "", preset.Done, haptic.KindSuccess)
	case keymap.ActionToastError:
		return m.present("Import failed", "3 files could not be read", preset.Error, haptic.KindError)
	case keymap.ActionToastWarning:
		return m.present("Low disk space", "", preset.Warning, haptic.KindWarning)
	case keymap.ActionToastHeart:
		return m.present("Added to favorites", "", preset.Heart, haptic.KindImpact)
	case keymap.ActionToastLoading:
		return m.present("Syncing", "This can take a while", preset.Loading, haptic.KindNone)
	case keymap.ActionToastMessage:
		return m.present("Copied to clipboard", "", preset.None, haptic.KindNone)

	case keymap.ActionCycleSide:
		m.side = (m.side + 1) % 3
		m.saveSettings()
		return m, nil

	case keymap.ActionToggleDrag:
		m.drag = !m.drag
		var cmd tea.Cmd
		if m.hasToast {
			cmd = m.toast.SetDragDismiss(m.drag)
		}
		m.saveSettings()
		return m, cmd

	case keymap.ActionDismiss:
		if m.hasToast {
			var cmd tea.Cmd
			m.toast, cmd = m.toast.Dismiss()
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m model) present(title, subtitle string, p preset.Preset, kind haptic.Kind) (tea.Model, tea.Cmd) {
	if m.hasToast && m.toast.State() != toast.StateRemoved {
		// One toast at a time; dismiss the current one first.
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Dismiss()
		return m, cmd
	}

	var t toast.Model
	if p == preset.None {
		t = toast.NewMessage(title, subtitle)
	} else {
		t = toast.New(title, subtitle, p)
	}
	t.SetSide(m.side)
	t.SetHost(m.surface)
	t.SetFeedback(m.feedback)
	t.SetZoneManager(m.zones)
	t.SetDragDismiss(m.drag)
	if m.cfg.MaxWidth > 0 {
		t.SetMaxWidth(m.cfg.MaxWidth)
	}
	if m.cfg.Offset != 0 {
		t.SetOffset(float64(m.cfg.Offset))
	}
	if d := m.cfg.DisplayDuration(); d > 0 {
		t.SetDuration(d)
	}

	t, cmd := t.Present(kind, nil)
	if t.State() == toast.StateIdle {
		return m, nil
	}
	m.toast = t
	m.hasToast = true

	entry := state.HistoryEntry{
		Preset:      p.String(),
		Title:       title,
		Subtitle:    subtitle,
		Side:        m.side.String(),
		PresentedAt: time.Now(),
	}
	if err := m.stateMgr.RecordToast(entry); err != nil {
		m.status = errmsg.FormatWith(errmsg.OpHistorySave, title, err)
	}
	m.history = append([]state.HistoryEntry{entry}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}

	if !m.focused && m.cfg.DesktopNotify {
		_, err := m.notifier.Notify(notify.Notification{
			Title:   title,
			Body:    subtitle,
			Timeout: int32(toast.DefaultDisplayDuration / time.Millisecond),
			Urgency: notify.UrgencyFor(p.String()),
		})
		if err != nil {
			m.status = errmsg.Format(errmsg.OpNotifySend, err)
		}
	}

	return m, cmd
}

func (m *model) saveSettings() {
	m.stateMgr.SaveSettings(state.Settings{
		Side:        m.side.String(),
		DragDismiss: m.drag,
		SoundVolume: m.cfg.GetSoundConfig().Volume,
	})
}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}

	header := headerStyle.Width(m.width).Render("pill — toast playground")

	var b strings.Builder
	b.WriteString("\n")
	for _, binding := range keymap.Default() {
		b.WriteString(fmt.Sprintf("  %-8s %s\n",
			keyStyle.Render(strings.Join(binding.Keys, " ")),
			dimStyle.Render(m.describe(binding))))
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  recent"))
		b.WriteString("\n")
		for _, e := range m.history {
			line := fmt.Sprintf("  %-8s %-28s %s",
				e.Preset, e.Title, humanize.Time(e.PresentedAt))
			b.WriteString(entryStyle.Render(line))
			b.WriteString("\n")
		}
	}

	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Render(b.String())

	footer := footerStyle.Width(m.width).Render(m.footerText())

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if m.hasToast {
		view = m.toast.Compose(view)
	}
	return m.zones.Scan(view)
}

// describe renders live values for the toggling bindings.
func (m model) describe(b keymap.Binding) string {
	switch b.Action {
	case keymap.ActionCycleSide:
		return fmt.Sprintf("%s (%s)", b.Description, m.side)
	case keymap.ActionToggleDrag:
		return fmt.Sprintf("%s (%v)", b.Description, m.drag)
	default:
		return b.Description
	}
}

func (m model) footerText() string {
	if m.status != "" {
		return " " + m.status
	}
	if m.audioNoise != "" {
		return " audio: " + m.audioNoise
	}
	if !m.drag {
		return " drag dismiss is off"
	}
	return " mouse-drag a toast toward its edge to fling it away"
}

func main() {
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "stderr capture unavailable: %v\n", err)
	}
	defer stderr.Stop()

	m, err := initialModel()
	if err != nil {
		stderr.WriteOriginal(fmt.Sprintf("%v\n", err))
		os.Exit(1)
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error running program: %v\n", err))
		os.Exit(1)
	}
}
