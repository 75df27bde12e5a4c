package spiro

// InstanceID identifies the curve instance that owns a stroke or cursor
// on a shared Surface.
type InstanceID int

// CursorShape names the marker a Surface draws at an instance's pen position.
type CursorShape string

// Cursor shapes understood by canvas.Canvas. Other surfaces may accept more.
const (
	CursorTurtle CursorShape = "turtle"
	CursorArrow  CursorShape = "arrow"
	CursorCircle CursorShape = "circle"
)

// Surface is the drawing target shared by all curve instances.
//
// Every call names the instance it acts for, so a surface can keep one pen,
// one color and one stroke list per instance and erase a single instance's
// strokes without touching the others.
//
// Surfaces are not required to be safe for concurrent use. The Animator
// mutates its surface from one goroutine, one instance at a time.
type Surface interface {
	// MoveTo moves the instance's pen to p. With penDown set a line segment
	// is drawn from the previous pen position; otherwise the pen jumps.
	MoveTo(id InstanceID, p Point, penDown bool)

	// SetColor sets the color of subsequent strokes of the instance.
	SetColor(id InstanceID, c Color)

	// ClearStrokes erases every stroke the instance has drawn.
	ClearStrokes(id InstanceID)

	// SetCursorVisible shows or hides the instance's cursor marker.
	SetCursorVisible(id InstanceID, visible bool)

	// SetCursorShape selects the instance's cursor marker.
	SetCursorShape(id InstanceID, shape CursorShape)
}
