package inference

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes JPEG, PNG, GIF or WebP bytes.
func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("image is empty")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode image: %s image has no pixels", format)
	}
	return img, nil
}

// flattenRGB composites the image over a white background.
func flattenRGB(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// resizeShorterSide scales the image so its shorter side equals size, keeping the aspect ratio.
func resizeShorterSide(src *image.RGBA, size int) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	var nw, nh int
	if w <= h {
		nw = size
		nh = max(1, int(float64(h)*float64(size)/float64(w)+0.5))
	} else {
		nh = size
		nw = max(1, int(float64(w)*float64(size)/float64(h)+0.5))
	}
	if nw == w && nh == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// centerCrop cuts a size x size square from the middle of the image.
func centerCrop(src *image.RGBA, size int) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	x0 := max(0, (w-size)/2)
	y0 := max(0, (h-size)/2)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, image.Pt(x0, y0).Add(src.Bounds().Min), draw.Src)
	return dst
}

// Preprocess decodes image bytes into a normalized [1,3,crop,crop] NCHW tensor.
func (p Preset) Preprocess(data []byte) ([]float32, error) {
	if p.Resize <= 0 || p.Crop <= 0 {
		return nil, fmt.Errorf("preset %q has no input size", p.Name)
	}
	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}
	rgb := centerCrop(resizeShorterSide(flattenRGB(img), p.Resize), p.Crop)
	return p.toTensor(rgb), nil
}

func (p Preset) toTensor(img *image.RGBA) []float32 {
	plane := p.Crop * p.Crop
	out := make([]float32, 3*plane)
	for y := range p.Crop {
		row := img.Pix[y*img.Stride:]
		for x := range p.Crop {
			px := row[x*4 : x*4+3]
			i := y*p.Crop + x
			for c := range 3 {
				v := float32(px[c]) / 255
				out[c*plane+i] = (v - p.Mean[c]) / p.Std[c]
			}
		}
	}
	return out
}

// TensorShape returns the NCHW shape of a single preprocessed image.
func (p Preset) TensorShape() []int {
	return []int{1, 3, p.Crop, p.Crop}
}
