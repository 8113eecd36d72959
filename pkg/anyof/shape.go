package anyof

import "fmt"

// Shape identifies which of the four presence states an AnyOf value is in.
type Shape int

const (
	ShapeNeither Shape = iota
	ShapeLeft
	ShapeRight
	ShapeBoth
)

func (s Shape) String() string {
	switch s {
	case ShapeNeither:
		return "Neither"
	case ShapeLeft:
		return "Left"
	case ShapeRight:
		return "Right"
	case ShapeBoth:
		return "Both"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// shapeErr reports a partial conversion or unwrap applied to the wrong
// shape. The message always names both the expected and the found shape.
func shapeErr(expected string, found Shape) error {
	return fmt.Errorf("anyof: expected %s, found %s", expected, found)
}
