// Package ui provides the desktop integration for Money Manager.
// This file contains icon generation for the window and the tray.
package ui

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/natscamp/money-manager/common"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	SymbolColor color.RGBA
}

// DefaultIconConfig returns the application icon colors.
func DefaultIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{46, 125, 50, 255},   // Dark green
		BorderColor: color.RGBA{129, 199, 132, 255}, // Light green
		SymbolColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// IconGenerator generates PNG icons.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() ([]byte, error) {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawCoin(img)
	g.drawBars(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawCoin draws a filled circle with a one pixel rim.
func (g *IconGenerator) drawCoin(img *image.RGBA) {
	size := g.config.Size
	center := float64(size) / 2
	radius := center - 1

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
			switch {
			case d <= radius-1.5:
				img.Set(x, y, g.config.FillColor)
			case d <= radius:
				img.Set(x, y, g.config.BorderColor)
			}
		}
	}
}

// drawBars draws three ascending bars, a small ledger chart.
func (g *IconGenerator) drawBars(img *image.RGBA) {
	size := g.config.Size
	unit := size / 8
	if unit < 1 {
		unit = 1
	}
	base := size - 2*unit - unit/2

	for i, height := range []int{2, 3, 4} {
		left := 2*unit + i*unit + i*unit/2
		for y := base - height*unit; y < base; y++ {
			for x := left; x < left+unit; x++ {
				img.Set(x, y, g.config.SymbolColor)
			}
		}
	}
}

var (
	appIconOnce sync.Once
	appIcon     []byte
	appIconErr  error
)

// AppIcon returns the generated application icon.
func AppIcon() ([]byte, error) {
	appIconOnce.Do(func() {
		appIcon, appIconErr = NewIconGenerator(DefaultIconConfig()).Generate()
	})
	return appIcon, appIconErr
}

// BlankIcon returns a fully transparent icon of the tray size. It stands in
// for the icon while no tray is shown.
func BlankIcon() ([]byte, error) {
	size := common.TrayIconSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// icoFromPNG wraps a PNG in a single-image ICO container, the format the
// Windows tray loads.
func icoFromPNG(data []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if cfg.Width > 256 || cfg.Height > 256 {
		return nil, fmt.Errorf("icon too large: %dx%d", cfg.Width, cfg.Height)
	}

	const headerSize = 6 + 16
	var buf bytes.Buffer
	buf.Grow(headerSize + len(data))

	// ICONDIR
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})
	// ICONDIRENTRY; 0 encodes 256
	buf.WriteByte(byte(cfg.Width))
	buf.WriteByte(byte(cfg.Height))
	buf.WriteByte(0) // palette
	buf.WriteByte(0) // reserved
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint16{1, 32})
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint32{uint32(len(data)), headerSize})

	buf.Write(data)
	return buf.Bytes(), nil
}
