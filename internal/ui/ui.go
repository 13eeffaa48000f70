package ui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/focusdeck/internal/client"
	"github.com/desertthunder/focusdeck/internal/dashboard"
	"github.com/desertthunder/focusdeck/internal/layout"
	"github.com/desertthunder/focusdeck/internal/models"
	"github.com/desertthunder/focusdeck/internal/player"
	"github.com/desertthunder/focusdeck/internal/pomodoro"
	"github.com/desertthunder/focusdeck/internal/selection"
	"github.com/desertthunder/focusdeck/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	DashboardView ViewState = iota
	InputView
	SettingsView
	MoveView
)

// inputKind identifies which field the shared text input is collecting.
type inputKind int

const (
	inputPlaylistName inputKind = iota
	inputVideoURL
	inputTodoText
)

// playlistLevel tracks whether the playlist widget shows playlists or the
// videos of the selected one.
type playlistLevel int

const (
	levelPlaylists playlistLevel = iota
	levelVideos
)

// screenHandle is the terminal stand-in for the embedded player. It records
// what the player would be showing and reflects control calls back to the
// adapter as state change events.
type screenHandle struct {
	logger  *log.Logger
	onState func(state int)
	videoID string
	volume  int
}

var _ player.Handle = (*screenHandle)(nil)

func (h *screenHandle) LoadVideo(embedURL string) {
	h.videoID = player.ExtractVideoID(embedURL)
	h.logger.Debug("background loaded", "video", h.videoID)
	h.onState(player.StatePlaying)
}

func (h *screenHandle) Play() {
	h.onState(player.StatePlaying)
}

func (h *screenHandle) Pause() {
	h.onState(player.StatePaused)
}

func (h *screenHandle) Stop() {
	h.videoID = ""
	h.onState(player.StatePaused)
}

func (h *screenHandle) SetVolume(volume int) {
	h.volume = volume
}

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	api    client.PlaylistAPI
	logger *log.Logger

	view   ViewState
	width  int
	height int
	keys   keyMap
	help   help.Model

	dash   dashboard.State
	store  *layout.Store
	rects  map[dashboard.Widget]models.Rect
	focus  int

	engine  *pomodoro.Engine
	sel     *selection.Controller
	adapter *player.Adapter
	screen  *screenHandle

	level        playlistLevel
	playlistList list.Model
	videoList    list.Model
	todos        todoModel

	input          textinput.Model
	inputFor       inputKind
	settingsInputs [3]textinput.Model
	settingsFocus  int

	status string
	err    error
}

// defaultRects returns the stock geometry used when no saved state exists.
func defaultRects() map[dashboard.Widget]models.Rect {
	return map[dashboard.Widget]models.Rect{
		dashboard.WidgetPomodoro: {X: 0, Y: 0, Width: 26, Height: 9, Z: 1},
		dashboard.WidgetTodo:     {X: 28, Y: 0, Width: 32, Height: 11, Z: 2},
		dashboard.WidgetPlaylist: {X: 62, Y: 0, Width: 42, Height: 14, Z: 3},
	}
}

// NewModel creates a new TUI model with the provided dependencies. stateDir is
// where widget geometry persists between sessions.
func NewModel(ctx context.Context, api client.PlaylistAPI, logger *log.Logger, stateDir string) *Model {
	m := &Model{
		ctx:    ctx,
		api:    api,
		logger: logger,
		view:   DashboardView,
		keys:   newKeyMap(),
		help:   help.New(),
		dash:   dashboard.NewState(),
		store:  layout.NewStore(stateDir, logger),
		engine: pomodoro.NewEngine(nil),
	}

	m.screen = &screenHandle{logger: logger, volume: 40}
	m.adapter = player.NewAdapter(m.screen, logger)
	m.screen.onState = m.adapter.HandleStateChange
	m.adapter.Ready(m.screen)

	m.sel = selection.NewController(api, logger, func(url string) {
		m.adapter.Load(url)
		m.dash.BackgroundURL = player.NormalizeToEmbed(url)
	})

	m.rects = map[dashboard.Widget]models.Rect{}
	for w, def := range defaultRects() {
		m.rects[w] = m.store.Load(string(w), def)
	}

	m.playlistList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.playlistList.Title = "Playlists"
	m.videoList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.sizeLists()

	m.input = textinput.New()
	for i := range m.settingsInputs {
		m.settingsInputs[i] = textinput.New()
		m.settingsInputs[i].CharLimit = 3
		m.settingsInputs[i].Width = 4
	}

	return m
}

func (m *Model) sizeLists() {
	rect := m.rects[dashboard.WidgetPlaylist]
	m.playlistList.SetSize(rect.Width-4, rect.Height-2)
	m.videoList.SetSize(rect.Width-4, rect.Height-2)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the clock and fetches the playlist library.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchPlaylists(), tickCmd())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.engine.Tick()
		return m, tickCmd()

	case tea.KeyMsg:
		switch m.view {
		case DashboardView:
			return m.handleDashboardKeys(msg)
		case InputView:
			return m.handleInputKeys(msg)
		case SettingsView:
			return m.handleSettingsKeys(msg)
		case MoveView:
			return m.handleMoveKeys(msg)
		}

	case playlistsFetchedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to load playlists: %v", msg.err)
			return m, nil
		}
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList.SetItems(items)
		return m, nil

	case videosFetchedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to load videos: %v", msg.err)
			return m, nil
		}
		if !m.sel.ApplyVideos(msg.playlistID, msg.videos) {
			return m, nil
		}
		m.rebuildVideoList()
		m.level = levelVideos
		return m, nil

	case playlistCreatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to create playlist: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("created playlist '%s'", msg.playlist.Name)
		return m, m.fetchPlaylists()

	case playlistDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to delete playlist: %v", msg.err)
			return m, nil
		}
		if msg.id == m.sel.SelectedPlaylist() {
			m.sel.ClearPlaylist()
			m.level = levelPlaylists
		}
		return m, m.fetchPlaylists()

	case videoAddedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to add video: %v", msg.err)
			return m, nil
		}
		m.sel.VideoAdded(*msg.video)
		m.rebuildVideoList()
		return m, nil

	case videoDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("failed to delete video: %v", msg.err)
			return m, nil
		}
		m.sel.VideoDeleted(msg.id)
		m.rebuildVideoList()
		return m, nil
	}

	return m, nil
}

func (m *Model) rebuildVideoList() {
	videos := m.sel.Videos()
	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = videoItem{video: v}
	}
	m.videoList.SetItems(items)
	m.videoList.Title = "Videos"
}

func (m *Model) focusedWidget() dashboard.Widget {
	return dashboard.Widgets()[m.focus]
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % len(dashboard.Widgets())
		return m, nil
	case "v":
		m.dash.Toggle(m.focusedWidget())
		return m, nil
	case "s":
		m.dash.CycleStyle()
		return m, nil
	case "m":
		m.view = MoveView
		return m, nil
	}

	switch m.focusedWidget() {
	case dashboard.WidgetPomodoro:
		return m.handlePomodoroKeys(msg)
	case dashboard.WidgetTodo:
		return m.handleTodoKeys(msg)
	case dashboard.WidgetPlaylist:
		return m.handlePlaylistKeys(msg)
	}
	return m, nil
}

func (m *Model) handlePomodoroKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.engine.Running() {
			m.engine.Pause()
		} else {
			m.engine.Start()
		}
	case "r":
		m.engine.Reset()
	case "o":
		m.engine.ToggleSettings()
		if m.engine.SettingsOpen() {
			m.openSettings()
		}
	}
	return m, nil
}

func (m *Model) openSettings() {
	modes := []pomodoro.Mode{pomodoro.Work, pomodoro.ShortBreak, pomodoro.LongBreak}
	for i, mode := range modes {
		m.settingsInputs[i].SetValue(fmt.Sprintf("%d", m.engine.Duration(mode)))
		m.settingsInputs[i].Blur()
	}
	m.settingsFocus = 0
	m.settingsInputs[0].Focus()
	m.view = SettingsView
}

func (m *Model) handleTodoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.openInput(inputTodoText, "todo")
	case " ":
		m.todos.Toggle()
	case "d":
		m.todos.Remove()
	case "up", "k":
		m.todos.CursorUp()
	case "down", "j":
		m.todos.CursorDown()
	}
	return m, nil
}

func (m *Model) handlePlaylistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.level == levelPlaylists {
		switch msg.String() {
		case "n":
			m.openInput(inputPlaylistName, "playlist name")
			return m, nil
		case "d":
			if item, ok := m.playlistList.SelectedItem().(playlistItem); ok {
				return m, m.deletePlaylist(item.playlist.ID)
			}
			return m, nil
		case "enter":
			if item, ok := m.playlistList.SelectedItem().(playlistItem); ok {
				m.sel.SelectPlaylist(item.playlist.ID)
				return m, m.fetchVideos(item.playlist.ID)
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.playlistList, cmd = m.playlistList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.level = levelPlaylists
		return m, nil
	case "n":
		m.openInput(inputVideoURL, "youtube url")
		return m, nil
	case "d":
		if item, ok := m.videoList.SelectedItem().(videoItem); ok {
			return m, m.deleteVideo(item.video.ID)
		}
		return m, nil
	case "enter":
		if item, ok := m.videoList.SelectedItem().(videoItem); ok {
			m.sel.SelectVideo(item.video.YoutubeURL)
		}
		return m, nil
	case " ":
		m.adapter.Toggle()
		return m, nil
	}

	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

func (m *Model) openInput(kind inputKind, placeholder string) {
	m.inputFor = kind
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
	m.view = InputView
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.view = DashboardView
		return m, nil
	case "enter":
		value := m.input.Value()
		m.input.Blur()
		m.view = DashboardView

		switch m.inputFor {
		case inputTodoText:
			if !m.todos.Add(value) {
				m.status = "todo text cannot be empty"
			}
			return m, nil
		case inputPlaylistName:
			return m, m.createPlaylist(value)
		case inputVideoURL:
			return m, m.addVideo(m.sel.SelectedPlaylist(), value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.engine.ToggleSettings()
		m.view = DashboardView
		return m, nil
	case "tab", "down":
		m.settingsInputs[m.settingsFocus].Blur()
		m.settingsFocus = (m.settingsFocus + 1) % len(m.settingsInputs)
		m.settingsInputs[m.settingsFocus].Focus()
		return m, nil
	case "shift+tab", "up":
		m.settingsInputs[m.settingsFocus].Blur()
		m.settingsFocus = (m.settingsFocus + len(m.settingsInputs) - 1) % len(m.settingsInputs)
		m.settingsInputs[m.settingsFocus].Focus()
		return m, nil
	case "enter":
		m.engine.ApplyDurations(pomodoro.Durations{
			pomodoro.Work:       pomodoro.ParseMinutes(m.settingsInputs[0].Value()),
			pomodoro.ShortBreak: pomodoro.ParseMinutes(m.settingsInputs[1].Value()),
			pomodoro.LongBreak:  pomodoro.ParseMinutes(m.settingsInputs[2].Value()),
		})
		m.view = DashboardView
		return m, nil
	}

	var cmd tea.Cmd
	m.settingsInputs[m.settingsFocus], cmd = m.settingsInputs[m.settingsFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	widget := m.focusedWidget()
	rect := m.rects[widget]

	switch msg.String() {
	case "left":
		rect.X -= 2
	case "right":
		rect.X += 2
	case "up":
		rect.Y--
	case "down":
		rect.Y++
	case "]":
		rect.Width += 2
	case "[":
		if rect.Width > 12 {
			rect.Width -= 2
		}
	case "}":
		rect.Height++
	case "{":
		if rect.Height > 4 {
			rect.Height--
		}
	case "f":
		rect.Z = m.maxZ() + 1
	case "enter", "esc":
		m.rects[widget] = rect
		m.store.Save(string(widget), rect)
		m.sizeLists()
		m.view = DashboardView
		return m, nil
	default:
		return m, nil
	}

	if rect.X < 0 {
		rect.X = 0
	}
	if rect.Y < 0 {
		rect.Y = 0
	}
	m.rects[widget] = rect
	return m, nil
}

func (m *Model) maxZ() int {
	max := 0
	for _, rect := range m.rects {
		if rect.Z > max {
			max = rect.Z
		}
	}
	return max
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.api.ListPlaylists(m.ctx)
		return playlistsFetchedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) fetchVideos(playlistID int64) tea.Cmd {
	return func() tea.Msg {
		videos, err := m.api.ListVideos(m.ctx, playlistID)
		return videosFetchedMsg{playlistID: playlistID, videos: videos, err: err}
	}
}

func (m *Model) createPlaylist(name string) tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.api.CreatePlaylist(m.ctx, name)
		return playlistCreatedMsg{playlist: playlist, err: err}
	}
}

func (m *Model) deletePlaylist(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.api.DeletePlaylist(m.ctx, id)
		return playlistDeletedMsg{id: id, err: err}
	}
}

func (m *Model) addVideo(playlistID int64, url string) tea.Cmd {
	return func() tea.Msg {
		video, err := m.api.AddVideo(m.ctx, playlistID, url, "")
		return videoAddedMsg{video: video, err: err}
	}
}

func (m *Model) deleteVideo(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.api.DeleteVideo(m.ctx, id)
		return videoDeletedMsg{id: id, err: err}
	}
}

// View renders the dashboard: a header with the background state, the visible
// widget panels in z-order, then status and help lines.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	header := m.renderHeader()
	body := m.renderWidgets()

	var status string
	if m.status != "" {
		status = styles.warn.Render(m.status)
	}

	var footer string
	switch m.view {
	case InputView:
		footer = fmt.Sprintf("%s %s", styles.title.Render("›"), m.input.View())
	case SettingsView:
		footer = m.renderSettings()
	case MoveView:
		footer = styles.help.Render("move: arrows  resize: [ ] { }  front: f  done: enter")
	default:
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, status, footer)
}

func (m *Model) renderHeader() string {
	background := m.dash.BackgroundURL
	if background == "" {
		background = "no background selected"
	}

	state := "⏸ paused"
	if m.adapter.IsPlaying() {
		state = styles.ok.Render("▶ playing")
	}

	return fmt.Sprintf("%s  %s  %s",
		styles.title.Render("focusdeck"),
		state,
		styles.help.Render(background),
	)
}

// renderWidgets lays the visible panels out horizontally in ascending z-order.
func (m *Model) renderWidgets() string {
	type panel struct {
		widget dashboard.Widget
		z      int
		view   string
	}

	var panels []panel
	for _, w := range dashboard.Widgets() {
		if !m.dash.Visible[w] {
			continue
		}
		panels = append(panels, panel{widget: w, z: m.rects[w].Z, view: m.renderWidget(w)})
	}
	if len(panels) == 0 {
		return styles.help.Render("all widgets hidden (v to show)")
	}

	sort.SliceStable(panels, func(i, j int) bool { return panels[i].z < panels[j].z })

	views := make([]string, len(panels))
	for i, p := range panels {
		views[i] = p.view
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) renderWidget(w dashboard.Widget) string {
	rect := m.rects[w]
	focused := w == m.focusedWidget() && m.view != InputView
	chrome := widgetChrome(m.dash.Style, focused).Width(rect.Width).Height(rect.Height)

	var content string
	switch w {
	case dashboard.WidgetPomodoro:
		content = m.renderPomodoro()
	case dashboard.WidgetTodo:
		content = fmt.Sprintf("%s\n%s", styles.title.Render("Todo"), m.todos.View(focused))
	case dashboard.WidgetPlaylist:
		if m.level == levelVideos {
			content = m.videoList.View()
		} else {
			content = m.playlistList.View()
		}
	}

	return chrome.Render(content)
}

func (m *Model) renderPomodoro() string {
	clock := shared.FormatClock(m.engine.Remaining())
	state := "stopped"
	if m.engine.Running() {
		state = styles.ok.Render("running")
	}
	if m.engine.SettingsOpen() {
		state = styles.warn.Render("settings")
	}

	return fmt.Sprintf("%s\n%s %s\n%s\ncycles: %d",
		styles.title.Render(string(m.engine.Mode())),
		clock, state,
		styles.help.Render("space start/pause · r reset · o settings"),
		m.engine.Cycles(),
	)
}

func (m *Model) renderSettings() string {
	return fmt.Sprintf("durations (minutes)  work %s  short %s  long %s  %s",
		m.settingsInputs[0].View(),
		m.settingsInputs[1].View(),
		m.settingsInputs[2].View(),
		styles.help.Render("enter apply · esc cancel"),
	)
}
