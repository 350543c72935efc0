package convert

import (
	"badc0de.net/pkg/dfeatlas/atlas"
	"badc0de.net/pkg/dfeatlas/dfe"
)

// Options apply to every conversion.
type Options struct {
	App      string // meta.app
	Reporter Reporter
}

func meta(sheet *dfe.Sheet, app string) atlas.Meta {
	return atlas.Meta{
		App:   app,
		Image: sheet.Name,
		Scale: atlas.Scale,
	}
}

// Sheet lists every sprite of the sheet as a frame, in walk order. The
// document carries no meta.size.
func Sheet(sheet *dfe.Sheet, opts Options) (*atlas.ArrayDocument, error) {
	sprites, err := WalkSheet(sheet, opts.Reporter)
	if err != nil {
		return nil, err
	}
	return arrayDocument(sheet, sprites, opts.App), nil
}

func arrayDocument(sheet *dfe.Sheet, sprites []Sprite, app string) *atlas.ArrayDocument {
	doc := &atlas.ArrayDocument{
		Frames: make([]atlas.NamedFrame, 0, len(sprites)),
		Meta:   meta(sheet, app),
	}
	for _, s := range sprites {
		doc.Frames = append(doc.Frames, atlas.NamedFrame{Filename: s.Name, Frame: s.Frame})
	}
	return doc
}

// SheetHash is like Sheet but keys the frames by name. Sprites whose names
// collide overwrite each other, last one wins.
func SheetHash(sheet *dfe.Sheet, opts Options) (*atlas.HashDocument, error) {
	sprites, err := WalkSheet(sheet, opts.Reporter)
	if err != nil {
		return nil, err
	}
	return hashDocument(sheet, sprites, opts.App), nil
}

func hashDocument(sheet *dfe.Sheet, sprites []Sprite, app string) *atlas.HashDocument {
	doc := &atlas.HashDocument{
		Frames: make(map[string]atlas.Frame, len(sprites)),
		Meta:   meta(sheet, app),
	}
	for _, s := range sprites {
		doc.Frames[s.Name] = s.Frame
	}
	return doc
}
