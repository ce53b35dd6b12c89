package palette_test

import (
	"fmt"

	"github.com/matzehuels/prismview/pkg/palette"
)

func ExampleGradient() {
	g := palette.Gradient(palette.Black, palette.Red, 5)
	fmt.Println(len(g), g[0].Hex(), g[len(g)-1].Hex())
	// Output:
	// 5 #000000 #ff0000
}

func ExampleHueWheelHierarchy() {
	for i, stage := range palette.HueWheelHierarchy() {
		fmt.Printf("stage %d: %d colors\n", i, len(stage))
	}
	// Output:
	// stage 0: 1 colors
	// stage 1: 3 colors
	// stage 2: 6 colors
	// stage 3: 12 colors
	// stage 4: 24 colors
}
