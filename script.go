package stamps

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/esimov/stamps/utils"
)

// ErrUnknownAction is returned when a script holds an action the board does not support.
var ErrUnknownAction = errors.New("unknown action")

// Action is a single recorded user interaction. Scripts are streams of
// JSON encoded actions, for example:
//
//	{"action": "thickness", "value": 6}
//	{"action": "press", "x": 10, "y": 10}
//	{"action": "move", "x": 40, "y": 30}
//	{"action": "release"}
//	{"action": "export", "path": "board.png"}
type Action struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	Color  string  `json:"color,omitempty"`
	Glyph  string  `json:"glyph,omitempty"`
	Path   string  `json:"path,omitempty"`
}

// Script replays actions on a board.
type Script struct {
	Board    *Board
	Exporter Exporter

	// OnExport, when set, writes the image rendered by an export action.
	// By default the image is written with Exporter.EncodeFile.
	OnExport func(path string, img *image.NRGBA) error
}

// Play decodes and applies every action read from r. It returns the number of
// applied actions and stops at the first failing one.
func (s *Script) Play(r io.Reader) (int, error) {
	dec := json.NewDecoder(r)
	n := 0
	for {
		var a Action
		if err := dec.Decode(&a); err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, fmt.Errorf("could not decode action %d: %w", n+1, err)
		}
		if err := s.Apply(a); err != nil {
			return n, fmt.Errorf("action %d (%s): %w", n+1, a.Action, err)
		}
		n++
	}
}

// Apply performs a single action on the board.
func (s *Script) Apply(a Action) error {
	b := s.Board
	p := Point{X: a.X, Y: a.Y}

	switch strings.ToLower(a.Action) {
	case "press":
		b.Press(p)
	case "move":
		b.Move(p)
	case "release":
		b.Release()
	case "leave":
		b.Leave()
	case "undo":
		b.Undo()
	case "redo":
		b.Redo()
	case "clear":
		b.Clear()
	case "mode":
		m, err := parseMode(a.Mode)
		if err != nil {
			return err
		}
		b.SetMode(m)
	case "thickness":
		b.SetThickness(a.Value)
	case "color":
		if strings.EqualFold(a.Color, "random") {
			b.RandomColor()
			return nil
		}
		c, err := utils.HexToRGBA(a.Color)
		if err != nil {
			return err
		}
		b.SetColor(c)
	case "sticker":
		if b.AddSticker(a.Glyph) {
			b.SetGlyph(a.Glyph)
		}
	case "glyph":
		b.SetGlyph(a.Glyph)
	case "rotation":
		b.SetRotation(a.Value)
	case "export":
		return s.export(a.Path)
	default:
		return ErrUnknownAction
	}
	return nil
}

func (s *Script) export(path string) error {
	img, err := s.Board.Export(s.Exporter)
	if err != nil {
		return err
	}
	if s.OnExport != nil {
		return s.OnExport(path, img)
	}
	return s.Exporter.EncodeFile(path, img)
}

// Export renders the committed items of the board with e.
// The board size is taken from its surface.
func (b *Board) Export(e Exporter) (*image.NRGBA, error) {
	r := b.surface.Bounds()
	return e.Render(b.history.Items(), r.Dx(), r.Dy())
}

func parseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "marker":
		return ModeMarker, nil
	case "sticker":
		return ModeSticker, nil
	}
	return ModeMarker, fmt.Errorf("invalid mode %q", s)
}
