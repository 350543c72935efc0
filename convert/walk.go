// Package convert turns darkFunction Editor sheets and animation sets into
// sprite-atlas documents.
//
// Sheet conversion names each frame "{dir}_{sprite}" after the sprite's
// immediate directory. Animation conversion references sprites by their full
// slash-separated path ("/walk/0") and names each emitted frame
// "{anim}{index}".
package convert

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/dfeatlas/atlas"
	"badc0de.net/pkg/dfeatlas/dfe"
)

// Reporter is told about every sprite found while walking a sheet.
type Reporter interface {
	FoundFrame(path string)
}

// Sprite is a leaf of the sheet's directory tree.
type Sprite struct {
	Path  string // full path, e.g. "/walk/0"
	Name  string // "{dir}_{sprite}", e.g. "walk_0"
	Frame atlas.Frame
}

// WalkSheet visits the sheet's directory tree depth first, child
// directories before the sprites of a directory, each in document order.
func WalkSheet(sheet *dfe.Sheet, rep Reporter) ([]Sprite, error) {
	root, err := sheet.Root()
	if err != nil {
		return nil, err
	}
	w := &walker{rep: rep}
	if err := w.walk(root, "/"); err != nil {
		return nil, err
	}
	return w.sprites, nil
}

type walker struct {
	rep     Reporter
	sprites []Sprite
}

func childPath(parent, name string) string {
	p := parent + "/" + name
	if parent == "/" {
		p = p[1:]
	}
	return p
}

func (w *walker) walk(dir *dfe.Dir, path string) error {
	for i := range dir.Dir {
		if err := w.walk(&dir.Dir[i], childPath(path, dir.Dir[i].Name)); err != nil {
			return err
		}
	}

	for i := range dir.Spr {
		spr := &dir.Spr[i]
		p := childPath(path, spr.Name)
		glog.V(1).Infof("found frame %s", p)
		if w.rep != nil {
			w.rep.FoundFrame(p)
		}

		x, y, width, height, err := spr.Rect()
		if err != nil {
			return errors.Wrapf(err, "sprite %s", p)
		}
		w.sprites = append(w.sprites, Sprite{
			Path:  p,
			Name:  dir.Name + "_" + spr.Name,
			Frame: atlas.NewFrame(atlas.Rect{X: x, Y: y, W: width, H: height}),
		})
	}
	return nil
}

// Lookup finds sprites by full path. It is read-only once built.
type Lookup struct {
	sprites []Sprite
	index   map[string]int
}

// NewLookup indexes sprites by path. When two sprites share a path the
// later one wins.
func NewLookup(sprites []Sprite) *Lookup {
	l := &Lookup{
		sprites: sprites,
		index:   make(map[string]int, len(sprites)),
	}
	for i, s := range sprites {
		if _, dup := l.index[s.Path]; dup {
			glog.Warningf("duplicate sprite path %s; using the last one", s.Path)
		}
		l.index[s.Path] = i
	}
	return l
}

// Get returns a copy of the sprite at path.
func (l *Lookup) Get(path string) (Sprite, bool) {
	i, ok := l.index[path]
	if !ok {
		return Sprite{}, false
	}
	return l.sprites[i], true
}

func (l *Lookup) Len() int { return len(l.index) }
