package virtualterm

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFinder locates font files by name (useful for avoiding font library dependencies).
type FontFinder interface {
	// Find returns the filesystem path to a font file matching the given name.
	Find(name string) (string, error)
}

// ScreenshotConfig controls how a mirrored screen is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil and FontName is empty, uses basicfont.Face7x13.
	Font font.Face

	// FontFinder is used to find fonts by name. Optional.
	FontFinder FontFinder

	// FontName is the font name to find using FontFinder.
	FontName string

	// FontSize is the font size when using FontFinder. Default 14.
	FontSize float64

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette is the 16-color palette. If nil, uses DefaultPalette.
	Palette *[16]color.RGBA

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA

	// CursorColor is the cursor color. If nil, uses inverted colors.
	CursorColor *color.RGBA

	// ShowCursor controls whether to render the cursor. Default true.
	ShowCursor *bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

// Screenshot renders the screen to an RGBA image using default settings (basicfont, default palette).
func (m *Mirror) Screenshot() *image.RGBA {
	return m.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the screen to an RGBA image with custom font, colors, and cursor settings.
func (m *Mirror) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil && cfg.FontFinder != nil && cfg.FontName != "" {
		size := cfg.FontSize
		if size == 0 {
			size = 14
		}
		if path, err := cfg.FontFinder.Find(cfg.FontName); err == nil {
			if loadedFace, err := LoadFont(path, size); err == nil {
				face = loadedFace
			}
		}
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &DefaultPalette
	}

	defaultFG := DefaultForeground
	if cfg.DefaultFG != nil {
		defaultFG = *cfg.DefaultFG
	}

	defaultBG := DefaultBackground
	if cfg.DefaultBG != nil {
		defaultBG = *cfg.DefaultBG
	}

	showCursor := true
	if cfg.ShowCursor != nil {
		showCursor = *cfg.ShowCursor
	}

	cols, rows := m.Cols(), m.Rows()
	imgWidth := cols * cellWidth
	imgHeight := rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	fillRect(img, image.Rect(0, 0, imgWidth, imgHeight), defaultBG)

	ascent := face.Metrics().Ascent.Ceil()
	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			cell := m.buffer.Cell(col, row)
			x := (col - 1) * cellWidth
			y := (row - 1) * cellHeight

			fg := resolveColor(cell.Fg, palette, defaultFG, defaultBG)
			bg := resolveColor(cell.Bg, palette, defaultFG, defaultBG)
			if cell.Attrs.Has(AttrReverse) {
				fg, bg = bg, fg
			}
			if cell.Attrs.Has(AttrBold) {
				if i := cell.Fg.PaletteIndex(); i >= 0 && i < 8 {
					fg = palette[i+8]
				}
			}

			fillRect(img, image.Rect(x, y, x+cellWidth, y+cellHeight), bg)

			if cell.Char == ' ' || cell.Char == 0 || cell.Attrs.Has(AttrConcealed) {
				continue
			}

			baseline := y + ascent
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(rune(cell.Char)))

			if cell.Attrs.Has(AttrUnderline) {
				if underlineY := baseline + 2; underlineY < imgHeight {
					fillRect(img, image.Rect(x, underlineY, x+cellWidth, underlineY+1), fg)
				}
			}
		}
	}

	if showCursor && m.visible {
		cursorX := (m.col - 1) * cellWidth
		cursorY := (m.row - 1) * cellHeight
		for py := 0; py < cellHeight; py++ {
			for px := 0; px < cellWidth; px++ {
				cx, cy := cursorX+px, cursorY+py
				if cx >= imgWidth || cy >= imgHeight {
					continue
				}
				if cfg.CursorColor != nil {
					img.SetRGBA(cx, cy, *cfg.CursorColor)
					continue
				}
				existing := img.RGBAAt(cx, cy)
				img.SetRGBA(cx, cy, color.RGBA{
					R: 255 - existing.R,
					G: 255 - existing.G,
					B: 255 - existing.B,
					A: 255,
				})
			}
		}
	}

	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
