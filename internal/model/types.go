package model

import (
	"fmt"
	"strings"
)

// Cell is the state of a single grid cell.
//
// The generator only ever writes Wall and Path. Marked is reserved for
// consumers that want to annotate a finished maze (e.g., highlight a route);
// the generator must never produce it, and the renderer must never lose it.
type Cell uint8

const (
	// Wall is an impassable cell. A freshly allocated grid is all Wall.
	Wall Cell = iota

	// Path is a carved, walkable cell.
	Path

	// Marked is an opaque annotation applied by consumers after generation.
	Marked
)

// String returns the lowercase name of the cell state.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Marked:
		return "marked"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// ParseCell converts a name ("wall", "path", "marked") to a Cell.
// Matching is case insensitive.
func ParseCell(s string) (Cell, error) {
	switch strings.ToLower(s) {
	case "wall":
		return Wall, nil
	case "path":
		return Path, nil
	case "marked":
		return Marked, nil
	default:
		return 0, fmt.Errorf("invalid cell state: %q (valid: wall, path, marked)", s)
	}
}

// Direction is the facing of the carving cursor.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections lists the directions in the order the carver evaluates them.
// The order only affects which index the random draw maps to, never which
// directions are valid.
var AllDirections = [...]Direction{Up, Right, Down, Left}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Delta returns the unit step for the direction. Y grows downward.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Edge names one side of the outer wall ring.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// AllEdges is the label set entrances are drawn from.
var AllEdges = [...]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

// String returns the lowercase name of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// Point is a grid position. X is the column, Y is the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ExitCode defines the CLI process exit codes.
// Scripts can rely on these to tell bad input apart from internal failures.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidDimensions indicates the requested maze is too small
	// to hold a perfect maze with two entrances, or too large to allocate.
	ExitInvalidDimensions ExitCode = 2

	// ExitConfigError indicates the configuration file or environment
	// could not be loaded or failed validation.
	ExitConfigError ExitCode = 3

	// ExitInternalError indicates a generation invariant was broken.
	ExitInternalError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
