package ui

import (
	"fmt"
	"strings"

	"github.com/desertthunder/focusdeck/internal/models"
)

// todoModel is the in-memory todo widget state. Items live for the session
// only.
type todoModel struct {
	items  []models.TodoItem
	cursor int
}

// Add appends a trimmed, non-empty item.
func (t *todoModel) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	t.items = append(t.items, models.TodoItem{Text: text})
	return true
}

// Toggle flips the completion state of the item under the cursor.
func (t *todoModel) Toggle() {
	if t.cursor >= 0 && t.cursor < len(t.items) {
		t.items[t.cursor].Completed = !t.items[t.cursor].Completed
	}
}

// Remove deletes the item under the cursor.
func (t *todoModel) Remove() {
	if t.cursor < 0 || t.cursor >= len(t.items) {
		return
	}
	t.items = append(t.items[:t.cursor], t.items[t.cursor+1:]...)
	if t.cursor >= len(t.items) && t.cursor > 0 {
		t.cursor--
	}
}

func (t *todoModel) CursorUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *todoModel) CursorDown() {
	if t.cursor < len(t.items)-1 {
		t.cursor++
	}
}

// View renders the item list with cursor and checkbox markers.
func (t *todoModel) View(focused bool) string {
	if len(t.items) == 0 {
		return styles.help.Render("no todos yet (n to add)")
	}

	var b strings.Builder
	for i, item := range t.items {
		cursor := " "
		if focused && i == t.cursor {
			cursor = ">"
		}
		check := "[ ]"
		text := item.Text
		if item.Completed {
			check = "[x]"
			text = styles.help.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, text))
	}
	return strings.TrimRight(b.String(), "\n")
}
