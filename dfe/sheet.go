package dfe

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// Sheet is the root element of a sprite sheet definition file:
//
//	<img name="hero.png" w="256" h="128">
//	  <definitions>
//	    <dir name="/">
//	      <dir name="walk">
//	        <spr name="0" x="0" y="0" w="32" h="32"/>
//	      </dir>
//	    </dir>
//	  </definitions>
//	</img>
type Sheet struct {
	XMLName     xml.Name
	Name        string      `xml:"name,attr"` // image file name
	W           string      `xml:"w,attr"`
	H           string      `xml:"h,attr"`
	Definitions Definitions `xml:"definitions"`
}

type Definitions struct {
	Dir []Dir `xml:"dir"`
}

// Dir is a directory node. Child directories and sprites are each kept in
// document order.
type Dir struct {
	Name string `xml:"name,attr"`
	Dir  []Dir  `xml:"dir"`
	Spr  []Spr  `xml:"spr"`
}

// Spr is a named rectangle within the sheet image.
type Spr struct {
	Name string `xml:"name,attr"`
	X    string `xml:"x,attr"`
	Y    string `xml:"y,attr"`
	W    string `xml:"w,attr"`
	H    string `xml:"h,attr"`
}

// Root returns the top level directory of the definitions tree.
func (s *Sheet) Root() (*Dir, error) {
	if len(s.Definitions.Dir) == 0 {
		return nil, errors.New("sheet has no root <dir> in <definitions>")
	}
	return &s.Definitions.Dir[0], nil
}

// Rect parses the sprite's rectangle.
func (s *Spr) Rect() (x, y, w, h int, err error) {
	if x, err = atoi("spr", s.Name, "x", s.X); err != nil {
		return
	}
	if y, err = atoi("spr", s.Name, "y", s.Y); err != nil {
		return
	}
	if w, err = atoi("spr", s.Name, "w", s.W); err != nil {
		return
	}
	h, err = atoi("spr", s.Name, "h", s.H)
	return
}

func ReadSheet(r io.Reader) (*Sheet, error) {
	dec := xml.NewDecoder(r)
	sheet := &Sheet{}
	if err := dec.Decode(sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}
