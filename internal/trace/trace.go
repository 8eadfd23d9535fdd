package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nicobailon/kecap/internal/grid"
)

type Op string

const (
	OpMaterialize   Op = "materialize"
	OpDematerialize Op = "dematerialize"
	OpSelect        Op = "select"
	OpUnselect      Op = "unselect"
	OpScroll        Op = "scroll"
	OpCommand       Op = "command"
)

// Instruction is one call the grid manager made on its renderer, or a
// command marker written by the replay loop.
type Instruction struct {
	Op     Op     `json:"op"`
	Row    int    `json:"row,omitempty"`
	Col    int    `json:"col,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Axis   string `json:"axis,omitempty"`
	Key    string `json:"key,omitempty"`
	Moved  bool   `json:"moved,omitempty"`
}

func (in Instruction) String() string {
	switch in.Op {
	case OpScroll:
		return fmt.Sprintf("%s %s=%d", in.Op, in.Axis, in.Offset)
	case OpCommand:
		if !in.Moved {
			return fmt.Sprintf("%s %s (no-op)", in.Op, in.Key)
		}
		return fmt.Sprintf("%s %s", in.Op, in.Key)
	}
	return fmt.Sprintf("%s (%d,%d)", in.Op, in.Row, in.Col)
}

// ExtentFunc produces the layout box of a cell for Recorder.Measure.
type ExtentFunc func(row, col int) grid.Extent

// UniformExtent lays out cells of one size separated by gap.
func UniformExtent(width, height, gap int) ExtentFunc {
	return func(row, col int) grid.Extent {
		return grid.Extent{
			Width:      width,
			Height:     height,
			OffsetLeft: col * (width + gap),
			OffsetTop:  row * (height + gap),
		}
	}
}

// Recorder is a grid.Renderer that keeps every instruction it receives.
type Recorder[T any] struct {
	Instructions []Instruction `json:"instructions"`
	extent       ExtentFunc
}

func NewRecorder[T any](extent ExtentFunc) *Recorder[T] {
	if extent == nil {
		extent = UniformExtent(1, 1, 0)
	}
	return &Recorder[T]{extent: extent}
}

func (r *Recorder[T]) Measure(it *grid.Item[T]) grid.Extent {
	return r.extent(it.Row(), it.Col())
}

func (r *Recorder[T]) Materialize(it *grid.Item[T]) {
	r.add(Instruction{Op: OpMaterialize, Row: it.Row(), Col: it.Col()})
}

func (r *Recorder[T]) Dematerialize(it *grid.Item[T]) {
	r.add(Instruction{Op: OpDematerialize, Row: it.Row(), Col: it.Col()})
}

func (r *Recorder[T]) SetSelected(it *grid.Item[T], selected bool) {
	op := OpUnselect
	if selected {
		op = OpSelect
	}
	r.add(Instruction{Op: op, Row: it.Row(), Col: it.Col()})
}

func (r *Recorder[T]) ScrollTo(offset int, axis grid.Axis) {
	r.add(Instruction{Op: OpScroll, Offset: offset, Axis: axis.String()})
}

func (r *Recorder[T]) markAt(i int, d grid.Direction, moved bool) {
	r.Instructions = slices.Insert(r.Instructions, i, Instruction{Op: OpCommand, Key: d.String(), Moved: moved})
}

func (r *Recorder[T]) add(in Instruction) {
	r.Instructions = append(r.Instructions, in)
}

// Len returns the number of recorded instructions.
func (r *Recorder[T]) Len() int {
	return len(r.Instructions)
}

// Reset drops everything recorded so far.
func (r *Recorder[T]) Reset() {
	r.Instructions = r.Instructions[:0]
}

// Count returns how many instructions of op were recorded.
func (r *Recorder[T]) Count(op Op) int {
	n := 0
	for _, in := range r.Instructions {
		if in.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder[T]) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, in := range r.Instructions {
		if in.Op != OpCommand {
			b.WriteString("  ")
		}
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Recorder[T]) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Load reads instructions written by Save.
func Load(path string) ([]Instruction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Instructions []Instruction `json:"instructions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Instructions, nil
}
