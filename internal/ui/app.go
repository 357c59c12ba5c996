package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/starwell/focustop/internal/chart"
	"github.com/starwell/focustop/internal/model"
)

// ViewMode tracks which view is active.
type ViewMode int

const (
	ViewFocus ViewMode = iota
	ViewConfig
	ViewDrift
)

// SnapshotMsg delivers a new snapshot to the UI.
type SnapshotMsg model.Snapshot

// Backend is the slice of the API client the UI drives directly; the
// collector handles the polled read side.
type Backend interface {
	StartCamera(ctx context.Context) error
	StopCamera(ctx context.Context) error
	Capture(ctx context.Context) (string, error)
	SelectStar(ctx context.Context, x, y int) error
	Config(ctx context.Context) ([]model.ConfigOption, error)
	SetConfig(ctx context.Context, setting, value string) error
}

// Collector is implemented by the poll collector to allow dynamic
// interval changes and drift resets.
type Collector interface {
	SetInterval(d time.Duration)
	ResetDrift()
}

// Preset refresh interval steps (sorted fastest→slowest)
var intervalPresets = []time.Duration{
	100 * time.Millisecond,
	250 * time.Millisecond,
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
	5 * time.Second,
	10 * time.Second,
}

const (
	opTimeout      = 10 * time.Second
	captureTimeout = 90 * time.Second // bulb exposures take a while

	snapshotWidth  = 800
	snapshotHeight = 400
)

type configLoadedMsg struct {
	options []model.ConfigOption
	err     error
}

type configAppliedMsg struct {
	setting string
	value   string
	err     error
}

type starSelectedMsg struct {
	x, y int
	err  error
}

type cameraToggledMsg struct {
	started bool
	err     error
}

type captureDoneMsg struct {
	file string
	err  error
}

type snapshotSavedMsg struct {
	path string
	err  error
}

// Model is the root bubbletea model for focustop.
type Model struct {
	width  int
	height int

	mode     ViewMode
	snapshot model.Snapshot

	// series is the FWHM sample buffer for the current run. It is
	// replaced wholesale on every snapshot and only ever touched from
	// the update loop, which keeps replace and render serialized.
	series chart.Series

	focus   focusView
	config  configView
	drift   driftView

	showHelp bool
	star     starOverlay

	paused bool
	status string // transient feedback line in the footer

	intervalIdx int
	collector   Collector
	backend     Backend

	snapshotDir string

	snapCh <-chan model.Snapshot
}

// New creates the root UI model.
func New(snapCh <-chan model.Snapshot, backend Backend, snapshotDir string) Model {
	return Model{
		focus:       newFocusView(),
		config:      newConfigView(),
		star:        newStarOverlay(),
		backend:     backend,
		snapCh:      snapCh,
		snapshotDir: snapshotDir,
		intervalIdx: 3, // default 1s (index into intervalPresets)
	}
}

// SetCollector sets the collector reference for interval changes and
// drift resets.
func (m *Model) SetCollector(c Collector) {
	m.collector = c
}

// SetInitialInterval aligns the interval indicator with the configured
// poll interval.
func (m *Model) SetInitialInterval(d time.Duration) {
	for i, preset := range intervalPresets {
		if preset >= d {
			m.intervalIdx = i
			return
		}
	}
	m.intervalIdx = len(intervalPresets) - 1
}

// WaitForSnapshot returns a tea.Cmd that waits for the next snapshot.
// Returns tea.Quit if the channel is closed (collector stopped).
func WaitForSnapshot(ch <-chan model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return tea.Quit()
		}
		return SnapshotMsg(snap)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForSnapshot(m.snapCh),
		m.loadConfigCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SnapshotMsg:
		if !m.paused {
			m.snapshot = model.Snapshot(msg)
			m.series.Replace(m.snapshot.History)
		}
		return m, WaitForSnapshot(m.snapCh)

	case configLoadedMsg:
		if msg.err != nil {
			m.config.status = fmt.Sprintf("load failed: %v", msg.err)
		} else {
			m.config.setOptions(msg.options)
			m.config.status = ""
		}
		return m, nil

	case configAppliedMsg:
		if msg.err != nil {
			m.config.status = fmt.Sprintf("%s: %v", msg.setting, msg.err)
		} else {
			m.config.applied(msg.setting, msg.value)
			m.config.status = fmt.Sprintf("%s = %s", msg.setting, msg.value)
		}
		return m, nil

	case starSelectedMsg:
		if msg.err != nil {
			m.star.setResult(fmt.Sprintf("Failed: %v", msg.err), true)
			return m, nil
		}
		// The backend reset its tracker; start this run fresh locally
		// too.
		m.series.Clear()
		if m.collector != nil {
			m.collector.ResetDrift()
		}
		m.star.setResult(fmt.Sprintf("Tracking star at (%d,%d)", msg.x, msg.y), false)
		return m, nil

	case cameraToggledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("camera: %v", msg.err)
		} else if msg.started {
			m.status = "camera started"
		} else {
			m.status = "camera stopped"
			m.series.Clear()
			if m.collector != nil {
				m.collector.ResetDrift()
			}
		}
		return m, nil

	case captureDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("capture: %v", msg.err)
		} else {
			m.status = "captured " + msg.file
		}
		return m, nil

	case snapshotSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("snapshot: %v", msg.err)
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Star overlay intercepts all keys when active
	if m.star.active {
		return m.handleStarOverlayKey(msg)
	}

	// Help overlay closes on any key
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	action := matchKey(msg)

	// Global actions (work in any view)
	switch action {
	case keyQuit:
		return m, tea.Quit
	case keyHelp:
		m.showHelp = true
		return m, nil
	case keyPause:
		m.paused = !m.paused
		return m, nil
	case keyIntervalUp:
		m.changeInterval(-1) // faster = lower index
		return m, nil
	case keyIntervalDown:
		m.changeInterval(1)
		return m, nil
	case keyViewFocus:
		m.mode = ViewFocus
		return m, nil
	case keyViewConfig:
		m.mode = ViewConfig
		return m, nil
	case keyViewDrift:
		m.mode = ViewDrift
		return m, nil
	case keyToggleCamera:
		return m, m.toggleCameraCmd()
	case keyCapture:
		m.status = "capturing..."
		return m, m.captureCmd()
	case keySnapshot:
		return m, m.saveSnapshotCmd()
	case keySelectStar:
		m.star.open(m.snapshot.FrameWidth, m.snapshot.FrameHeight)
		return m, nil
	case keyResetRun:
		m.series.Clear()
		if m.collector != nil {
			m.collector.ResetDrift()
		}
		m.status = "measurement run reset"
		return m, nil
	case keyRefreshConfig:
		return m, m.loadConfigCmd()
	}

	// View-local actions
	if m.mode == ViewConfig {
		switch action {
		case keyUp:
			m.config.moveUp()
		case keyDown:
			m.config.moveDown()
		case keyLeft:
			m.config.cycle(-1)
		case keyRight:
			m.config.cycle(1)
		case keyEnter:
			if setting, value, ok := m.config.selected(); ok {
				return m, m.applyConfigCmd(setting, value)
			}
		}
	}

	return m, nil
}

func (m Model) handleStarOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.star.showResult {
		// Any key closes the result
		m.star.close()
		return m, nil
	}

	switch matchKey(msg) {
	case keyEsc:
		m.star.close()
		return m, nil
	case keyTab:
		m.star.toggleFocus()
		return m, nil
	case keyEnter:
		x, y, err := m.star.coords()
		if err != nil {
			m.star.setResult(fmt.Sprintf("Failed: %v", err), true)
			return m, nil
		}
		return m, m.selectStarCmd(x, y)
	}

	var cmd tea.Cmd
	if m.star.focusY {
		m.star.inputY, cmd = m.star.inputY.Update(msg)
	} else {
		m.star.inputX, cmd = m.star.inputX.Update(msg)
	}
	return m, cmd
}

func (m *Model) changeInterval(delta int) {
	newIdx := m.intervalIdx + delta
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(intervalPresets) {
		newIdx = len(intervalPresets) - 1
	}
	if newIdx == m.intervalIdx {
		return
	}
	m.intervalIdx = newIdx
	if m.collector != nil {
		m.collector.SetInterval(intervalPresets[m.intervalIdx])
	}
}

func (m Model) loadConfigCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		options, err := backend.Config(ctx)
		return configLoadedMsg{options: options, err: err}
	}
}

func (m Model) applyConfigCmd(setting, value string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		err := backend.SetConfig(ctx, setting, value)
		return configAppliedMsg{setting: setting, value: value, err: err}
	}
}

func (m Model) selectStarCmd(x, y int) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		err := backend.SelectStar(ctx, x, y)
		return starSelectedMsg{x: x, y: y, err: err}
	}
}

func (m Model) toggleCameraCmd() tea.Cmd {
	backend := m.backend
	running := m.snapshot.Running
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if running {
			return cameraToggledMsg{started: false, err: backend.StopCamera(ctx)}
		}
		return cameraToggledMsg{started: true, err: backend.StartCamera(ctx)}
	}
}

func (m Model) captureCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
		defer cancel()
		file, err := backend.Capture(ctx)
		return captureDoneMsg{file: file, err: err}
	}
}

// saveSnapshotCmd renders the current series onto an image surface and
// writes it as a timestamped PNG.
func (m Model) saveSnapshotCmd() tea.Cmd {
	samples := append([]float64(nil), m.series.Samples()...)
	dir := m.snapshotDir
	return func() tea.Msg {
		surface := chart.NewImageSurface(snapshotWidth, snapshotHeight)
		renderer := chart.NewRenderer()
		renderer.ShowCurrent = true
		renderer.Render(samples, surface)

		path := filepath.Join(dir, fmt.Sprintf("fwhm-%s.png", time.Now().Format("20060102-150405")))
		f, err := os.Create(path)
		if err != nil {
			return snapshotSavedMsg{err: err}
		}
		defer f.Close()
		if err := surface.WritePNG(f); err != nil {
			return snapshotSavedMsg{err: err}
		}
		return snapshotSavedMsg{path: path}
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := renderHeader(m.snapshot, &m.series, m.width, m.paused)
	headerHeight := strings.Count(header, "\n") + 1

	footer := m.renderFooter()
	footerHeight := 1

	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.mode {
	case ViewFocus:
		content = m.focus.render(&m.series, m.width, contentHeight)
	case ViewConfig:
		content = m.config.render(m.width, contentHeight)
	case ViewDrift:
		content = m.drift.render(m.snapshot.Drift, m.width, contentHeight)
	}

	// Pad content to fill available height so footer stays at bottom
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}

	result := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
	)

	// Overlays on top of everything
	if m.star.active {
		result = m.star.render(m.width, m.height)
	} else if m.showHelp {
		result = renderHelp(m.width, m.height)
	}

	return result
}

func (m Model) renderFooter() string {
	var parts []string

	parts = append(parts,
		styleFooterKey.Render("?")+styleFooter.Render(" help"),
		styleFooterKey.Render("c")+styleFooter.Render(" camera"),
		styleFooterKey.Render("t")+styleFooter.Render(" star"),
		styleFooterKey.Render("q")+styleFooter.Render(" quit"),
	)

	if m.paused {
		parts = append(parts, stylePaused.Render("PAUSED"))
	}

	if len(m.snapshot.Latencies) > 0 {
		parts = append(parts,
			styleFooter.Render("poll ")+
				styleHeaderValue.Render(renderSparkline(m.snapshot.Latencies, sparklineWidth))+
				styleFooter.Render(fmt.Sprintf(" %dms", m.snapshot.Latency.Milliseconds())))
	}

	interval := intervalPresets[m.intervalIdx]
	parts = append(parts,
		styleFooterKey.Render("+/-")+styleFooter.Render(" ")+
			styleHeaderValue.Render(formatInterval(interval)))

	if m.status != "" {
		parts = append(parts, styleStatusLine.Render(m.status))
	}

	return "  " + strings.Join(parts, "  ")
}

func formatInterval(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	s := float64(ms) / 1000.0
	if s == float64(int(s)) {
		return fmt.Sprintf("%ds", int(s))
	}
	return fmt.Sprintf("%.1fs", s)
}
