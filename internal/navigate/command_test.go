package navigate

import "testing"

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{MoveUp, "moveUp"},
		{MoveDown, "moveDown"},
		{MoveLeft, "moveLeft"},
		{MoveRight, "moveRight"},
		{WordLeft, "wordLeft"},
		{WordRight, "wordRight"},
		{GlobalStart, "globalStart"},
		{GlobalEnd, "globalEnd"},
		{Command(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestCommandDirection(t *testing.T) {
	forward := []Command{MoveDown, MoveRight, WordRight, GlobalEnd}
	backward := []Command{MoveUp, MoveLeft, WordLeft, GlobalStart}
	for _, cmd := range forward {
		if !cmd.isForward() {
			t.Errorf("expected %s to move toward the document end", cmd)
		}
	}
	for _, cmd := range backward {
		if cmd.isForward() {
			t.Errorf("expected %s to move toward the document start", cmd)
		}
	}
}
