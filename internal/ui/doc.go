// Package ui implements the terminal dashboard using bubbletea's Elm architecture.
//
// The dashboard renders three widget panels over a header that mirrors the
// background player state:
//  1. Pomodoro : work/break countdown driven by one tick message per second
//  2. Todo : session-scoped task list
//  3. Playlist : playlist library and the videos of the selected playlist
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. All
// API calls run inside tea.Cmd closures and come back as typed messages;
// failures land on the status line rather than tearing the program down.
// Widget geometry edits made in move mode persist through the layout store.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
