package view

// Recorder is a View and Controls that remembers what it was asked to do.
// It backs headless runs and tests.
type Recorder struct {
	Shown   map[*Group]bool
	Updates int

	CursorShown bool
	Snapping    bool
	AutoPan     bool
	Captured    bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Shown: make(map[*Group]bool)}
}

func (r *Recorder) Add(g *Group)    { r.Shown[g] = true }
func (r *Recorder) Update(g *Group) { r.Updates++ }
func (r *Recorder) Remove(g *Group) { delete(r.Shown, g) }

func (r *Recorder) ShowCursor(show bool)  { r.CursorShown = show }
func (r *Recorder) SetSnapping(on bool)   { r.Snapping = on }
func (r *Recorder) SetAutoPan(on bool)    { r.AutoPan = on }
func (r *Recorder) CaptureCursor(on bool) { r.Captured = on }

// Visible returns the number of shapes in every shown group.
func (r *Recorder) Visible() int {
	n := 0
	for g := range r.Shown {
		n += g.Len()
	}
	return n
}
