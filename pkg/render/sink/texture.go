package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/matzehuels/prismview/pkg/render/draw"
)

// textureImage views a texture's pixels as an image without copying.
func textureImage(t draw.Texture) *image.NRGBA {
	return &image.NRGBA{
		Pix:    t.Pix,
		Stride: t.Width * 4,
		Rect:   image.Rect(0, 0, t.Width, t.Height),
	}
}

func encodeTexture(t draw.Texture) ([]byte, error) {
	if t.Width == 0 || t.Height == 0 || !t.Valid() {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, textureImage(t)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
