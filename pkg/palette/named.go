package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Neutral colors.
var (
	White = FromRGB(1, 1, 1, 1)
	Black = FromRGB(0, 0, 0, 1)
	Gray  = FromRGB(0.5, 0.5, 0.5, 1)
)

// The 24 quaternary hues, 15° apart on the HSV wheel starting at red.
var (
	Red        = hsvHue(0)
	Vermillion = hsvHue(15)
	Orange     = hsvHue(30)
	Amber      = hsvHue(45)
	Yellow     = hsvHue(60)
	Becquerel  = hsvHue(75)
	Chartreuse = hsvHue(90)
	Lime       = hsvHue(105)
	Green      = hsvHue(120)
	Emerald    = hsvHue(135)
	Mint       = hsvHue(150)
	Turquoise  = hsvHue(165)
	Cyan       = hsvHue(180)
	Capri      = hsvHue(195)
	Azure      = hsvHue(210)
	Cerulean   = hsvHue(225)
	Blue       = hsvHue(240)
	Indigo     = hsvHue(255)
	Violet     = hsvHue(270)
	Purple     = hsvHue(285)
	Magenta    = hsvHue(300)
	Fuschia    = hsvHue(315)
	Rose       = hsvHue(330)
	Ruby       = hsvHue(345)
)

// Hue sets of increasing resolution.
var (
	Primary   = []Color{Red, Green, Blue}
	Secondary = []Color{Red, Yellow, Green, Cyan, Blue, Magenta}
	Tertiary  = []Color{
		Red, Orange, Yellow, Chartreuse, Green, Mint,
		Cyan, Azure, Blue, Violet, Magenta, Rose,
	}
	Quaternary = []Color{
		Red, Vermillion, Orange, Amber, Yellow, Becquerel,
		Chartreuse, Lime, Green, Emerald, Mint, Turquoise,
		Cyan, Capri, Azure, Cerulean, Blue, Indigo,
		Violet, Purple, Magenta, Fuschia, Rose, Ruby,
	}
)

var names = []struct {
	name  string
	color *Color
}{
	{"white", &White}, {"black", &Black}, {"gray", &Gray},
	{"red", &Red}, {"vermillion", &Vermillion}, {"orange", &Orange},
	{"amber", &Amber}, {"yellow", &Yellow}, {"becquerel", &Becquerel},
	{"chartreuse", &Chartreuse}, {"lime", &Lime}, {"green", &Green},
	{"emerald", &Emerald}, {"mint", &Mint}, {"turquoise", &Turquoise},
	{"cyan", &Cyan}, {"capri", &Capri}, {"azure", &Azure},
	{"cerulean", &Cerulean}, {"blue", &Blue}, {"indigo", &Indigo},
	{"violet", &Violet}, {"purple", &Purple}, {"magenta", &Magenta},
	{"fuschia", &Fuschia}, {"rose", &Rose}, {"ruby", &Ruby},
}

// NameOf returns the name of a named color. Colors are matched by their
// 8-bit display encoding.
func NameOf(c Color) (string, bool) {
	b := c.Bytes()
	for _, n := range names {
		if n.color.Bytes() == b {
			return n.name, true
		}
	}
	return "", false
}

func hsvHue(deg float64) Color {
	return FromColorful(colorful.Hsv(deg, 1, 1), 1)
}
