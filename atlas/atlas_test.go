package atlas_test

import (
	"fmt"
	"testing"

	"badc0de.net/pkg/dfeatlas/atlas"
	"badc0de.net/pkg/dfeatlas/ttesting"
)

func TestNewFrame(t *testing.T) {
	r := atlas.Rect{X: 1, Y: 2, W: 3, H: 4}
	f := atlas.NewFrame(r)
	ttesting.AssertEqualRect(t, "frame", f.Frame, r)
	ttesting.AssertEqualRect(t, "spriteSourceSize", f.SpriteSourceSize, r)
	ttesting.AssertEqualInt(t, "sourceSize.w", f.SourceSize.W, 3)
	ttesting.AssertEqualInt(t, "sourceSize.h", f.SourceSize.H, 4)
	ttesting.AssertEqualBool(t, "rotated", f.Rotated, false)
	ttesting.AssertEqualBool(t, "trimmed", f.Trimmed, false)
}

func TestOffset(t *testing.T) {
	max0 := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	nominal := atlas.Rect{X: 10, Y: 20, W: 30, H: 40}
	for _, dx := range []int{-5, 0, 5} {
		for _, dy := range []int{-5, 0, 5} {
			orig := atlas.NewFrame(nominal)
			got := orig.Offset(dx, dy)
			want := atlas.Rect{
				X: nominal.X - max0(-dx),
				Y: nominal.Y - max0(-dy),
				W: nominal.W + max0(dx),
				H: nominal.H + max0(dy),
			}
			name := fmt.Sprintf("dx=%d,dy=%d", dx, dy)
			ttesting.AssertEqualRect(t, name+" spriteSourceSize", got.SpriteSourceSize, want)
			ttesting.AssertEqualRect(t, name+" frame untouched", got.Frame, nominal)
			ttesting.AssertEqualInt(t, name+" sourceSize.w untouched", got.SourceSize.W, nominal.W)
			ttesting.AssertEqualInt(t, name+" sourceSize.h untouched", got.SourceSize.H, nominal.H)
			ttesting.AssertEqualBool(t, name+" trimmed", got.Trimmed, true)
			ttesting.AssertEqualRect(t, name+" original untouched", orig.SpriteSourceSize, nominal)
		}
	}
}

func TestMarshalHash(t *testing.T) {
	doc := &atlas.HashDocument{
		Frames: map[string]atlas.Frame{
			"run0": atlas.NewFrame(atlas.Rect{X: 0, Y: 0, W: 10, H: 10}).Offset(-3, 0),
		},
		Meta: atlas.Meta{
			App:   "https://example.org/?a=1&b=<2>",
			Image: "hero.png",
			Size:  &atlas.MetaSize{W: "64", H: "32"},
			Scale: atlas.Scale,
		},
	}
	got, err := atlas.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "frames": {
        "run0": {
            "frame": {
                "h": 10,
                "w": 10,
                "x": 0,
                "y": 0
            },
            "rotated": false,
            "sourceSize": {
                "h": 10,
                "w": 10
            },
            "spriteSourceSize": {
                "h": 10,
                "w": 10,
                "x": -3,
                "y": 0
            },
            "trimmed": true
        }
    },
    "meta": {
        "app": "https://example.org/?a=1&b=<2>",
        "image": "hero.png",
        "scale": "1",
        "size": {
            "h": "32",
            "w": "64"
        }
    }
}`
	if string(got) != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalArrayOmitsSize(t *testing.T) {
	doc := &atlas.ArrayDocument{
		Frames: []atlas.NamedFrame{
			{Filename: "walk_b", Frame: atlas.NewFrame(atlas.Rect{W: 1, H: 1})},
			{Filename: "walk_a", Frame: atlas.NewFrame(atlas.Rect{W: 2, H: 2})},
		},
		Meta: atlas.Meta{App: "app", Image: "img.png", Scale: atlas.Scale},
	}
	got, err := atlas.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "frames": [
        {
            "filename": "walk_b",
            "frame": {
                "h": 1,
                "w": 1,
                "x": 0,
                "y": 0
            },
            "rotated": false,
            "sourceSize": {
                "h": 1,
                "w": 1
            },
            "spriteSourceSize": {
                "h": 1,
                "w": 1,
                "x": 0,
                "y": 0
            },
            "trimmed": false
        },
        {
            "filename": "walk_a",
            "frame": {
                "h": 2,
                "w": 2,
                "x": 0,
                "y": 0
            },
            "rotated": false,
            "sourceSize": {
                "h": 2,
                "w": 2
            },
            "spriteSourceSize": {
                "h": 2,
                "w": 2,
                "x": 0,
                "y": 0
            },
            "trimmed": false
        }
    ],
    "meta": {
        "app": "app",
        "image": "img.png",
        "scale": "1"
    }
}`
	if string(got) != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalEmptyFrames(t *testing.T) {
	got, err := atlas.Marshal(&atlas.ArrayDocument{Frames: []atlas.NamedFrame{}, Meta: atlas.Meta{Scale: atlas.Scale}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "frames": [],
    "meta": {
        "app": "",
        "image": "",
        "scale": "1"
    }
}`
	if string(got) != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
