package ui

import "testing"

func TestTodoModel(t *testing.T) {
	t.Run("Add trims and rejects empty text", func(t *testing.T) {
		var m todoModel

		if !m.Add("  write tests  ") {
			t.Fatal("Add should accept non-empty text")
		}
		if m.items[0].Text != "write tests" {
			t.Errorf("text = %q, want trimmed", m.items[0].Text)
		}

		if m.Add("   ") {
			t.Error("Add should reject whitespace-only text")
		}
		if len(m.items) != 1 {
			t.Errorf("items = %d, want 1", len(m.items))
		}
	})

	t.Run("Toggle flips completion", func(t *testing.T) {
		var m todoModel
		m.Add("one")

		m.Toggle()
		if !m.items[0].Completed {
			t.Error("item should be completed")
		}
		m.Toggle()
		if m.items[0].Completed {
			t.Error("item should be reopened")
		}
	})

	t.Run("Remove clamps the cursor", func(t *testing.T) {
		var m todoModel
		m.Add("one")
		m.Add("two")
		m.CursorDown()

		m.Remove()
		if len(m.items) != 1 {
			t.Fatalf("items = %d, want 1", len(m.items))
		}
		if m.cursor != 0 {
			t.Errorf("cursor = %d, want 0", m.cursor)
		}

		m.Remove()
		m.Remove() // removing from empty is a no-op
		if len(m.items) != 0 {
			t.Errorf("items = %d, want 0", len(m.items))
		}
	})

	t.Run("cursor stays in bounds", func(t *testing.T) {
		var m todoModel
		m.Add("one")
		m.Add("two")

		m.CursorUp()
		if m.cursor != 0 {
			t.Errorf("cursor = %d, want 0", m.cursor)
		}
		m.CursorDown()
		m.CursorDown()
		if m.cursor != 1 {
			t.Errorf("cursor = %d, want 1", m.cursor)
		}
	})
}
