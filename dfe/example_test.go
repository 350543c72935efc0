package dfe

import (
	"fmt"
	"strings"
)

func Example() {
	r := strings.NewReader(`<?xml version="1.0"?>
<img name="hero.png" w="64" h="32">
	<definitions>
		<dir name="/">
			<dir name="walk">
				<spr name="0" x="0" y="0" w="16" h="32"/>
				<spr name="1" x="16" y="0" w="16" h="32"/>
			</dir>
		</dir>
	</definitions>
</img>`)
	sheet, err := ReadSheet(r)
	if err != nil {
		panic(err)
	}

	root, err := sheet.Root()
	if err != nil {
		panic(err)
	}
	spr := root.Dir[0].Spr[1]
	x, y, w, h, err := spr.Rect()
	if err != nil {
		panic(err)
	}
	fmt.Println(sheet.Name, root.Dir[0].Name, spr.Name, x, y, w, h)
	// Output:
	// hero.png walk 1 16 0 16 32
}
