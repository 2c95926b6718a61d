package core

// Direction is a discrete heading on the screen.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Delta returns the unit cell offset for the direction.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	case DirRight:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Clockwise returns the heading after a right turn.
func (d Direction) Clockwise() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return DirNone
	}
}

// CounterClockwise returns the heading after a left turn.
func (d Direction) CounterClockwise() Direction {
	return d.Clockwise().Opposite()
}

// CommandKind enumerates the gameplay commands a simulation accepts.
// Lifecycle commands (start, pause, reset) are not commands; the session
// exposes them as methods because they are valid in every state.
type CommandKind int

const (
	CmdNone CommandKind = iota
	// CmdNudge is a discrete one-shot move in Dir.
	CmdNudge
	// CmdMoveBy drags by Delta along the game's movement axis.
	CmdMoveBy
	// CmdFire shoots (formation game).
	CmdFire
	// CmdRotate rotates the falling piece.
	CmdRotate
	// CmdDrop hard drops the falling piece.
	CmdDrop
	// CmdTurnLeft and CmdTurnRight change the snake heading relatively.
	CmdTurnLeft
	CmdTurnRight
	// CmdMove swipes the board in Dir (tile merge).
	CmdMove
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNudge:
		return "Nudge"
	case CmdMoveBy:
		return "MoveBy"
	case CmdFire:
		return "Fire"
	case CmdRotate:
		return "Rotate"
	case CmdDrop:
		return "Drop"
	case CmdTurnLeft:
		return "TurnLeft"
	case CmdTurnRight:
		return "TurnRight"
	case CmdMove:
		return "Move"
	default:
		return "None"
	}
}

// Command is one input delivered to a simulation.
type Command struct {
	Kind  CommandKind
	Dir   Direction // CmdNudge, CmdMove
	Delta float64   // CmdMoveBy, in playfield units
}

// Nudge builds a discrete directional command.
func Nudge(d Direction) Command { return Command{Kind: CmdNudge, Dir: d} }

// MoveBy builds a continuous drag command.
func MoveBy(delta float64) Command { return Command{Kind: CmdMoveBy, Delta: delta} }

// Move builds a board swipe command.
func Move(d Direction) Command { return Command{Kind: CmdMove, Dir: d} }

// Simple builds a command that carries no payload.
func Simple(k CommandKind) Command { return Command{Kind: k} }
