package dfe

import (
	"encoding/xml"
	"io"
)

// AnimationSet is the root element of an animation file:
//
//	<animations spriteSheet="hero.sprites" ver="1.2">
//	  <anim name="run" loops="0">
//	    <cell index="0" delay="4">
//	      <spr name="/walk/0" x="-3" y="0" z="0"/>
//	    </cell>
//	  </anim>
//	</animations>
type AnimationSet struct {
	XMLName     xml.Name
	SpriteSheet string `xml:"spriteSheet,attr"` // relative to the animation file
	Ver         string `xml:"ver,attr"`
	Anim        []Anim `xml:"anim"`
}

type Anim struct {
	Name  string `xml:"name,attr"`
	Loops string `xml:"loops,attr"`
	Cell  []Cell `xml:"cell"`
}

// Cell is one frame of an animation. darkFunction Editor allows several
// layered sprites per cell.
type Cell struct {
	Index string    `xml:"index,attr"`
	Delay string    `xml:"delay,attr"`
	Spr   []CellSpr `xml:"spr"`
}

// CellSpr references a sprite by its full path in the sheet, plus the
// position of the sprite relative to the cell origin.
type CellSpr struct {
	Name string `xml:"name,attr"`
	X    string `xml:"x,attr"`
	Y    string `xml:"y,attr"`
	Z    string `xml:"z,attr"`
}

// Offset parses the sprite's position within the cell.
func (c *CellSpr) Offset() (dx, dy int, err error) {
	if dx, err = atoi("spr", c.Name, "x", c.X); err != nil {
		return
	}
	dy, err = atoi("spr", c.Name, "y", c.Y)
	return
}

func ReadAnimationSet(r io.Reader) (*AnimationSet, error) {
	dec := xml.NewDecoder(r)
	set := &AnimationSet{}
	if err := dec.Decode(set); err != nil {
		return nil, err
	}
	return set, nil
}
