package convert

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/dfeatlas/atlas"
	"badc0de.net/pkg/dfeatlas/dfe"
)

// UnknownSpriteError is returned when a cell refers to a sprite path that
// the sheet does not define.
type UnknownSpriteError struct {
	Anim   string
	Cell   int // position of the cell within the animation
	Sprite string
}

func (e *UnknownSpriteError) Error() string {
	return fmt.Sprintf("animation %q cell %d: unknown sprite %q", e.Anim, e.Cell, e.Sprite)
}

// AnimFrame is one emitted animation frame.
type AnimFrame struct {
	Key    string // "{anim}{index}"
	Sprite string // path of the referenced sprite
	Frame  atlas.Frame
}

// AnimationFrames resolves every cell of every animation, in document
// order. Each frame is an independent copy of the referenced sprite's frame
// with the cell's offset applied.
func AnimationFrames(set *dfe.AnimationSet, lookup *Lookup) ([]AnimFrame, error) {
	var out []AnimFrame
	for _, anim := range set.Anim {
		for i := range anim.Cell {
			cell := &anim.Cell[i]
			if len(cell.Spr) == 0 {
				return nil, errors.Errorf("animation %q cell %d has no <spr>", anim.Name, i)
			}
			if len(cell.Spr) > 1 {
				glog.V(1).Infof("animation %q cell %d has %d layered sprites; using %q", anim.Name, i, len(cell.Spr), cell.Spr[0].Name)
			}
			// delay is timing data the atlas format has no field for.
			glog.V(2).Infof("animation %q cell %d delay %q", anim.Name, i, cell.Delay)

			ref := &cell.Spr[0]
			spr, ok := lookup.Get(ref.Name)
			if !ok {
				return nil, &UnknownSpriteError{Anim: anim.Name, Cell: i, Sprite: ref.Name}
			}
			dx, dy, err := ref.Offset()
			if err != nil {
				return nil, errors.Wrapf(err, "animation %q cell %d", anim.Name, i)
			}
			out = append(out, AnimFrame{
				Key:    anim.Name + strconv.Itoa(i),
				Sprite: spr.Path,
				Frame:  spr.Frame.Offset(dx, dy),
			})
		}
	}
	return out, nil
}

// Animations converts an animation set into a document keyed by
// "{anim}{index}". meta.size carries the sheet's w and h attributes as
// written in the file.
func Animations(set *dfe.AnimationSet, sheet *dfe.Sheet, opts Options) (*atlas.HashDocument, error) {
	_, doc, err := animations(set, sheet, opts)
	return doc, err
}

func animations(set *dfe.AnimationSet, sheet *dfe.Sheet, opts Options) ([]AnimFrame, *atlas.HashDocument, error) {
	sprites, err := WalkSheet(sheet, opts.Reporter)
	if err != nil {
		return nil, nil, err
	}
	frames, err := AnimationFrames(set, NewLookup(sprites))
	if err != nil {
		return nil, nil, err
	}

	doc := &atlas.HashDocument{
		Frames: make(map[string]atlas.Frame, len(frames)),
		Meta:   meta(sheet, opts.App),
	}
	doc.Meta.Size = &atlas.MetaSize{W: sheet.W, H: sheet.H}
	for _, f := range frames {
		if _, dup := doc.Frames[f.Key]; dup {
			glog.Warningf("frame key %s produced twice; keeping the later one", f.Key)
		}
		doc.Frames[f.Key] = f.Frame
	}
	return frames, doc, nil
}
