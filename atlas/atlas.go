// Package atlas models the sprite-atlas JSON consumed by 2D renderers (the
// layout popularised by TexturePacker and read by pixi.js, Phaser and
// others) and serializes it deterministically.
package atlas

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Frame describes where one image lives in the sheet and how it should be
// placed when drawn.
type Frame struct {
	Frame            Rect `json:"frame"`
	Rotated          bool `json:"rotated"`
	Trimmed          bool `json:"trimmed"`
	SpriteSourceSize Rect `json:"spriteSourceSize"`
	SourceSize       Size `json:"sourceSize"`
}

// NewFrame returns an untrimmed frame covering r.
func NewFrame(r Rect) Frame {
	return Frame{
		Frame:            r,
		SpriteSourceSize: r,
		SourceSize:       Size{W: r.W, H: r.H},
	}
}

// Offset returns a trimmed copy of f whose spriteSourceSize is grown to
// account for the frame being drawn at (dx, dy) from its nominal origin.
// A negative component grows the box on the low side (x or y decreases),
// anything else grows it on the high side (w or h increases).
func (f Frame) Offset(dx, dy int) Frame {
	f.Trimmed = true
	if dx < 0 {
		f.SpriteSourceSize.X -= -dx
	} else {
		f.SpriteSourceSize.W += dx
	}
	if dy < 0 {
		f.SpriteSourceSize.Y -= -dy
	} else {
		f.SpriteSourceSize.H += dy
	}
	return f
}

// NamedFrame is an entry of the array flavour of the frames collection.
type NamedFrame struct {
	Filename string `json:"filename"`
	Frame
}

// MetaSize is the sheet size as found in the source file. The values are
// passed through untouched.
type MetaSize struct {
	W string `json:"w"`
	H string `json:"h"`
}

type Meta struct {
	App   string    `json:"app"`
	Image string    `json:"image"`
	Size  *MetaSize `json:"size,omitempty"`
	Scale string    `json:"scale"`
}

// Scale is the only scale the converters emit.
const Scale = "1"

// ArrayDocument keeps frames in a list, in the order they were found.
type ArrayDocument struct {
	Frames []NamedFrame `json:"frames"`
	Meta   Meta         `json:"meta"`
}

// HashDocument keys frames by name.
type HashDocument struct {
	Frames map[string]Frame `json:"frames"`
	Meta   Meta             `json:"meta"`
}
