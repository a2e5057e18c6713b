package interpreter

// Position addresses a byte offset inside a line's text. Line 0 is the text
// submitted in direct mode. Version is the revision of that text the offset
// was taken from; an offset is only meaningful while the revision is current.
type Position struct {
	Line    int
	Offset  int
	Version uint64
}

type FrameKind int

const (
	FrameLoop FrameKind = iota
	FrameCall
)

// arena bytes charged per frame
const (
	loopFrameSize = 40
	callFrameSize = 16
)

func (k FrameKind) String() string {
	if k == FrameCall {
		return "gosub"
	}
	return "for"
}

// Frame is a saved control-flow context on the interpreter stack.
type Frame interface {
	Kind() FrameKind
	Size() int
}

// LoopFrame holds the static parameters of an active FOR loop. The running
// value lives in the variable store and is re-read by every NEXT.
type LoopFrame struct {
	Var    string   // bound variable name
	End    float64  // end value
	Step   float64  // step value
	Line   int      // line holding the FOR statement
	Resume Position // position right after the FOR header
}

// CallFrame records where RETURN resumes.
type CallFrame struct {
	Resume Position // position right after the GOSUB statement
}

func (*LoopFrame) Kind() FrameKind { return FrameLoop }
func (*LoopFrame) Size() int       { return loopFrameSize }
func (*CallFrame) Kind() FrameKind { return FrameCall }
func (*CallFrame) Size() int       { return callFrameSize }

// passed reports whether v has gone beyond the loop end in the step's direction
func (f *LoopFrame) passed(v float64) bool {
	return (f.Step > 0 && v > f.End) || (f.Step < 0 && v < f.End)
}
