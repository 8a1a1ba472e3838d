package navigate

// Command enumerates the movement commands the coordinator interprets.
// Each may be issued plain or extending (shift held).
type Command int

// Movement commands.
const (
	MoveUp Command = iota
	MoveDown
	MoveLeft
	MoveRight
	WordLeft
	WordRight
	GlobalStart
	GlobalEnd
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case MoveUp:
		return "moveUp"
	case MoveDown:
		return "moveDown"
	case MoveLeft:
		return "moveLeft"
	case MoveRight:
		return "moveRight"
	case WordLeft:
		return "wordLeft"
	case WordRight:
		return "wordRight"
	case GlobalStart:
		return "globalStart"
	case GlobalEnd:
		return "globalEnd"
	default:
		return "unknown"
	}
}

// isForward reports whether the command moves toward the document end.
func (c Command) isForward() bool {
	switch c {
	case MoveDown, MoveRight, WordRight, GlobalEnd:
		return true
	default:
		return false
	}
}
