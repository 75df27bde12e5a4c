package spiro

// recordingSurface is a Surface that records every call for inspection.
type recordingSurface struct {
	moves   []move
	colors  map[InstanceID]Color
	cleared map[InstanceID]int
	visible map[InstanceID]bool
	shapes  map[InstanceID]CursorShape
}

type move struct {
	id      InstanceID
	p       Point
	penDown bool
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{
		colors:  make(map[InstanceID]Color),
		cleared: make(map[InstanceID]int),
		visible: make(map[InstanceID]bool),
		shapes:  make(map[InstanceID]CursorShape),
	}
}

func (s *recordingSurface) MoveTo(id InstanceID, p Point, penDown bool) {
	s.moves = append(s.moves, move{id: id, p: p, penDown: penDown})
}

func (s *recordingSurface) SetColor(id InstanceID, c Color)             { s.colors[id] = c }
func (s *recordingSurface) ClearStrokes(id InstanceID)                  { s.cleared[id]++ }
func (s *recordingSurface) SetCursorVisible(id InstanceID, v bool)      { s.visible[id] = v }
func (s *recordingSurface) SetCursorShape(id InstanceID, c CursorShape) { s.shapes[id] = c }

// movesOf returns the recorded moves of one instance.
func (s *recordingSurface) movesOf(id InstanceID) []move {
	var out []move
	for _, m := range s.moves {
		if m.id == id {
			out = append(out, m)
		}
	}
	return out
}

func (s *recordingSurface) lastMove(id InstanceID) (move, bool) {
	ms := s.movesOf(id)
	if len(ms) == 0 {
		return move{}, false
	}
	return ms[len(ms)-1], true
}
