// Package dashboard holds the ambient view state shared across widgets:
// which widgets are visible, the widget style, and the background URL. It is
// an explicit value owned by the TUI model and handed to widgets, not a
// global.
package dashboard

// Widget names the three dashboard panels.
type Widget string

const (
	WidgetPomodoro Widget = "pomodoro"
	WidgetTodo     Widget = "todo"
	WidgetPlaylist Widget = "playlist"
)

// Widgets returns the panels in their fixed display order.
func Widgets() []Widget {
	return []Widget{WidgetPomodoro, WidgetTodo, WidgetPlaylist}
}

// Style selects one of the four widget chrome styles.
type Style string

const (
	StyleBlackLowOpacity  Style = "black_low_opacity"
	StyleWhiteLowOpacity  Style = "white_low_opacity"
	StyleTransparentBlack Style = "transparent_black"
	StyleTransparentWhite Style = "transparent_white"
)

// Styles returns the selectable styles in cycling order.
func Styles() []Style {
	return []Style{StyleBlackLowOpacity, StyleWhiteLowOpacity, StyleTransparentBlack, StyleTransparentWhite}
}

// State is the dashboard's ambient view state.
type State struct {
	Visible       map[Widget]bool
	Style         Style
	BackgroundURL string
}

// NewState returns the initial state: all widgets visible, default style.
func NewState() State {
	return State{
		Visible: map[Widget]bool{
			WidgetPomodoro: true,
			WidgetTodo:     true,
			WidgetPlaylist: true,
		},
		Style: StyleBlackLowOpacity,
	}
}

// Toggle flips a widget's visibility.
func (s *State) Toggle(w Widget) {
	s.Visible[w] = !s.Visible[w]
}

// CycleStyle advances to the next widget style.
func (s *State) CycleStyle() {
	styles := Styles()
	for i, style := range styles {
		if style == s.Style {
			s.Style = styles[(i+1)%len(styles)]
			return
		}
	}
	s.Style = styles[0]
}
