// Package ansi renders token art and color swatches for the terminal.
package ansi

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Default art size in character cells.
const (
	DefaultWidth  = 32
	DefaultHeight = 22
)

// Swatch colors for the WUBRG letters and colorless.
var colorHex = map[string]string{
	"w": "#f8f6d8",
	"u": "#0e68ab",
	"b": "#3a2f2c",
	"r": "#d3202a",
	"g": "#00733e",
	"c": "#b9b3ad",
}

// RenderFile decodes an image file and converts it to ANSI art.
func RenderFile(imagePath string, width, height int) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img, width, height), nil
}

// FromImage converts img to truecolor half-block art of width x height cells.
func FromImage(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			top := averageColor(colorAt(resized, x, y), colorAt(resized, x+1, y))
			bottom := averageColor(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			buffer.WriteString(cell('▀', top, bottom))
		}
		buffer.WriteString("\n")
	}
	return strings.TrimSuffix(buffer.String(), "\n")
}

// Swatch draws a width x height block blending the given color letters from
// left to right. No colors draws the colorless swatch.
func Swatch(colors []string, width, height int) string {
	stops := make([]colorful.Color, 0, len(colors))
	for _, c := range colors {
		if hex, ok := colorHex[strings.ToLower(c)]; ok {
			col, _ := colorful.Hex(hex)
			stops = append(stops, col)
		}
	}
	if len(stops) == 0 {
		col, _ := colorful.Hex(colorHex["c"])
		stops = append(stops, col)
	}

	var buffer strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := gradientAt(stops, x, width)
			buffer.WriteString(cell('▀', c, c))
		}
		if y < height-1 {
			buffer.WriteString("\n")
		}
	}
	return buffer.String()
}

func gradientAt(stops []colorful.Color, x, width int) colorful.Color {
	if len(stops) == 1 || width <= 1 {
		return stops[0]
	}
	pos := float64(x) / float64(width-1) * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], pos-float64(i)).Clamped()
}

func colorAt(img image.Image, x, y int) colorful.Color {
	bounds := img.Bounds()
	var c color.Color = color.RGBA{0, 0, 0, 255}
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		c = img.At(x, y)
	}
	col, _ := colorful.MakeColor(c)
	return col
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m", r1, g1, b1, r2, g2, b2, char)
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c == '\033':
			inEscape = true
		default:
			result.WriteRune(c)
		}
	}
	return result.String()
}

// Wrap breaks text into lines of at most width columns. Existing line breaks
// are kept.
func Wrap(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			result = append(result, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) <= width {
				line += " " + word
				continue
			}
			result = append(result, line)
			line = word
		}
		result = append(result, line)
	}
	return result
}
