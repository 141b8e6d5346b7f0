package render

import "sync"

// Op is one recorded drawing primitive. It is the wire format used by the
// browser canvas.
type Op struct {
	Op    string  `json:"op"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	R     float64 `json:"r,omitempty"`
	Text  string  `json:"text,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Names of the recorded ops.
const (
	OpFillStyle = "fillStyle"
	OpClearRect = "clearRect"
	OpFillRect  = "fillRect"
	OpFillText  = "fillText"
	OpArc       = "arc"
)

// Recorder is a Surface that buffers ops and hands a complete frame to a sink
// on Flush.
type Recorder struct {
	mu   sync.Mutex
	ops  []Op
	sink func([]Op) error
}

// NewRecorder returns a recorder flushing frames into sink. A nil sink drops
// frames.
func NewRecorder(sink func([]Op) error) *Recorder {
	return &Recorder{sink: sink}
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ops = append(r.ops, op)
}

// SetFillColor implements Surface.
func (r *Recorder) SetFillColor(color string) {
	r.record(Op{Op: OpFillStyle, Color: color})
}

// ClearRect implements Surface.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Op{Op: OpClearRect, X: x, Y: y, W: w, H: h})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record(Op{Op: OpFillRect, X: x, Y: y, W: w, H: h})
}

// FillText implements Surface.
func (r *Recorder) FillText(text string, x, y float64) {
	r.record(Op{Op: OpFillText, Text: text, X: x, Y: y})
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(x, y, radius float64) {
	r.record(Op{Op: OpArc, X: x, Y: y, R: radius})
}

// Flush implements Surface.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	ops := r.ops
	r.ops = nil
	r.mu.Unlock()

	if r.sink == nil || len(ops) == 0 {
		return nil
	}
	return r.sink(ops)
}
