package trace

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nicobailon/kecap/internal/grid"
)

// ParseScript turns a key script into directions. Scripts are either
// comma/space separated words (up, down, left, right) or compact letters
// (U D L R).
func ParseScript(script string) ([]grid.Direction, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	var dirs []grid.Direction
	for _, f := range fields {
		if d, ok := wordDirection(f); ok {
			dirs = append(dirs, d)
			continue
		}
		for _, r := range f {
			d, ok := letterDirection(r)
			if !ok {
				return nil, fmt.Errorf("unknown key %q in script", string(r))
			}
			dirs = append(dirs, d)
		}
	}
	return dirs, nil
}

func wordDirection(w string) (grid.Direction, bool) {
	switch strings.ToLower(w) {
	case "up":
		return grid.Up, true
	case "down":
		return grid.Down, true
	case "left":
		return grid.Left, true
	case "right":
		return grid.Right, true
	}
	return 0, false
}

func letterDirection(r rune) (grid.Direction, bool) {
	switch unicode.ToLower(r) {
	case 'u':
		return grid.Up, true
	case 'd':
		return grid.Down, true
	case 'l':
		return grid.Left, true
	case 'r':
		return grid.Right, true
	}
	return 0, false
}

// Replay applies dirs to m one at a time. Each command's marker is placed
// ahead of the instructions it produced.
func Replay[T any](m *grid.Manager[T], rec *Recorder[T], dirs []grid.Direction) error {
	for _, d := range dirs {
		at := rec.Len()
		moved, err := m.Move(d)
		if err != nil {
			return err
		}
		rec.markAt(at, d, moved)
	}
	return nil
}
