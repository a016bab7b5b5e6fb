package core

// LegacyQuitSentinel is the direction value the old input loop pushed down
// the movement channel to mean "kill the player".
var LegacyQuitSentinel = Vec{X: -10, Y: -10}

// Input is one poll of the player's controls. Dir components are in
// {-1, 0, 1}; Quit kills the player instead of moving it.
type Input struct {
	Dir  Vec
	Quit bool
}

// Move builds a movement input.
func Move(x, y float64) Input {
	return Input{Dir: Vec{X: x, Y: y}}
}

// QuitInput builds the quit command.
func QuitInput() Input {
	return Input{Quit: true}
}

// InputFromLegacy converts a raw direction as produced by the old keyboard
// worker, translating the (-10,-10) sentinel into the quit command.
func InputFromLegacy(x, y float64) Input {
	if (Vec{X: x, Y: y}) == LegacyQuitSentinel {
		return QuitInput()
	}
	return Move(x, y)
}

// Keys is a set of held direction keys.
type Keys struct {
	Up, Down, Left, Right bool
}

// Direction folds held keys into a direction vector. Opposite keys cancel.
func (k Keys) Direction() Vec {
	var d Vec
	if k.Up {
		d.Y--
	}
	if k.Down {
		d.Y++
	}
	if k.Left {
		d.X--
	}
	if k.Right {
		d.X++
	}
	return d
}
