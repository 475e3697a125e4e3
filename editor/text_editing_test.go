package editor

import "testing"

// editing returns an editor already editing node 1 with text and cursor.
func editing(t *testing.T, text string, cursor int) *Editor {
	t.Helper()
	e := NewEditor(testDiagram(), Options{})
	e.Select(node(1), false)
	e.HandleKey(Special(KeyF2))
	e.textBuffer = []rune(text)
	e.cursorPos = cursor
	return e
}

func TestTextEditingKeys(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		keys       []KeyEvent
		wantText   string
		wantCursor int
	}{
		{"insert middle", "ac", 1, []KeyEvent{Char('b')}, "abc", 2},
		{"backspace", "abc", 3, []KeyEvent{Special(KeyBackspace)}, "ab", 2},
		{"backspace at start", "abc", 0, []KeyEvent{Special(KeyBackspace)}, "abc", 0},
		{"ctrl h", "abc", 3, []KeyEvent{Ctrl('h')}, "ab", 2},
		{"delete", "abc", 0, []KeyEvent{Special(KeyDelete)}, "bc", 0},
		{"delete at end", "abc", 3, []KeyEvent{Special(KeyDelete)}, "abc", 3},
		{"home end", "abc", 1, []KeyEvent{Special(KeyHome), Char('>'), Special(KeyEnd), Char('<')}, ">abc<", 5},
		{"ctrl a e", "abc", 1, []KeyEvent{Ctrl('a'), Char('x'), Ctrl('e'), Char('y')}, "xabcy", 5},
		{"arrows", "abc", 1, []KeyEvent{Special(KeyArrowRight), Special(KeyArrowRight), Special(KeyArrowRight), Special(KeyArrowLeft)}, "abc", 2},
		{"ctrl f b", "abc", 1, []KeyEvent{Ctrl('f'), Ctrl('b'), Ctrl('b'), Ctrl('b')}, "abc", 0},
		{"ctrl w", "hello big world", 15, []KeyEvent{Ctrl('w')}, "hello big ", 10},
		{"ctrl w trailing spaces", "hello big  ", 11, []KeyEvent{Ctrl('w')}, "hello ", 6},
		{"ctrl u", "hello world", 6, []KeyEvent{Ctrl('u')}, "world", 0},
		{"ctrl k", "hello world", 5, []KeyEvent{Ctrl('k')}, "hello", 5},
		{"alt f", "one two", 0, []KeyEvent{{Rune: 'f', Alt: true}}, "one two", 4},
		{"alt b", "one two", 7, []KeyEvent{{Rune: 'b', Alt: true}}, "one two", 4},
		{"space and tilde", "a", 1, []KeyEvent{Char(' '), Char('~')}, "a ~", 3},
		{"tab ignored", "a", 1, []KeyEvent{Special(KeyTab)}, "a", 1},
		{"meta ignored", "a", 1, []KeyEvent{{Rune: 'v', Meta: true}}, "a", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := editing(t, tt.text, tt.cursor)
			for _, k := range tt.keys {
				res := e.HandleKey(k)
				if !res.Consumed {
					t.Errorf("Key %v not consumed in edit mode", k)
				}
			}
			if got := e.TextBuffer(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			if e.CursorPos() != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", e.CursorPos(), tt.wantCursor)
			}
		})
	}
}
