package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	// Registered decoders for Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/easel/surface"
)

// Decode parses encoded image bytes into a premultiplied pixmap.
func Decode(data []byte) (*surface.Pixmap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return fromImage(img), nil
}

// fromImage packs any image.Image into the premultiplied ARGB buffer.
func fromImage(img image.Image) *surface.Pixmap {
	b := img.Bounds()
	p := surface.NewPixmap(b.Dx(), b.Dy())
	data := p.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// RGBA returns 16-bit premultiplied channels.
			r, g, bl, a := img.At(x, y).RGBA()
			data[i] = surface.PackARGB(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			i++
		}
	}
	return p
}

// EncodePNG serializes a pixmap as PNG bytes with straight alpha.
func EncodePNG(p *surface.Pixmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.ToImage()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG writes a pixmap to path as a PNG file.
func WritePNG(p *surface.Pixmap, path string) error {
	data, err := EncodePNG(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
