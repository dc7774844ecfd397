// Package texture decodes icon images into RGBA pixels ready for upload.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("TGA data truncated")

// tgaReader walks TGA pixel data in file order and writes each pixel to its
// place in the destination image.
type tgaReader struct {
	img           *image.RGBA
	data          []byte
	width, height int
	bytesPerPixel int
	topToBottom   bool
	pos, written  int
}

// DecodeTGA decodes uncompressed (type 2) or RLE (type 10) true-color TGA data
// at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	r := &tgaReader{
		img:           image.NewRGBA(image.Rect(0, 0, width, height)),
		data:          data[offset:],
		width:         width,
		height:        height,
		bytesPerPixel: bpp / 8,
		// Bit 5 of the descriptor marks top-to-bottom row order.
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		if len(r.data) < width*height*r.bytesPerPixel {
			return nil, errTGATruncated
		}
		for !r.done() {
			c, _ := r.readPixel()
			r.put(c)
		}
		return r.img, nil
	}

	// RLE data that ends early leaves the remaining pixels transparent.
	r.decodeRLE()
	return r.img, nil
}

func (r *tgaReader) done() bool { return r.written >= r.width*r.height }

// readPixel reads one BGR(A) pixel.
func (r *tgaReader) readPixel() (color.RGBA, bool) {
	if r.pos+r.bytesPerPixel > len(r.data) {
		return color.RGBA{}, false
	}
	p := r.data[r.pos : r.pos+r.bytesPerPixel]
	r.pos += r.bytesPerPixel

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bytesPerPixel == 4 {
		c.A = p[3]
	}
	return c, true
}

func (r *tgaReader) put(c color.RGBA) {
	x := r.written % r.width
	y := r.written / r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.written++
}

func (r *tgaReader) decodeRLE() {
	for !r.done() && r.pos < len(r.data) {
		packet := r.data[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run packet: one pixel repeated count times.
			c, ok := r.readPixel()
			if !ok {
				return
			}
			for i := 0; i < count && !r.done(); i++ {
				r.put(c)
			}
			continue
		}

		// Raw packet: count literal pixels.
		for i := 0; i < count && !r.done(); i++ {
			c, ok := r.readPixel()
			if !ok {
				return
			}
			r.put(c)
		}
	}
}

// IsMagentaKey reports whether an RGB color is the magenta transparency key.
// The tolerance absorbs small shifts introduced by lossy encoders.
func IsMagentaKey(r, g, b uint8) bool {
	return r >= 250 && g <= 10 && b >= 250
}

// ApplyMagentaKey makes magenta pixels transparent black in place so they do
// not bleed color into neighbours when filtered.
func ApplyMagentaKey(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if IsMagentaKey(img.Pix[i], img.Pix[i+1], img.Pix[i+2]) {
				clear(img.Pix[i : i+4])
			}
		}
	}
}
