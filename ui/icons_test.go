package ui

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natscamp/money-manager/common"
)

func TestIconGenerator_Generate(t *testing.T) {
	cfg := DefaultIconConfig()
	data, err := NewIconGenerator(cfg).Generate()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, cfg.Size, bounds.Dx())
	assert.Equal(t, cfg.Size, bounds.Dy())

	// corners stay transparent outside the coin
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)

	// the rim uses the border color
	r, g, b, _ := img.At(cfg.Size/2, 1).RGBA()
	assert.Equal(t, uint32(cfg.BorderColor.R), r>>8)
	assert.Equal(t, uint32(cfg.BorderColor.G), g>>8)
	assert.Equal(t, uint32(cfg.BorderColor.B), b>>8)
}

func TestIconGenerator_SmallSizes(t *testing.T) {
	for _, size := range []int{4, 8, 16, 64} {
		cfg := DefaultIconConfig()
		cfg.Size = size
		data, err := NewIconGenerator(cfg).Generate()
		require.NoError(t, err, "size %d", size)
		assert.NotEmpty(t, data)
	}
}

func TestAppIcon_Cached(t *testing.T) {
	first, err := AppIcon()
	require.NoError(t, err)
	second, err := AppIcon()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, &first[0], &second[0], "AppIcon should return the cached slice")
}

func TestBlankIcon_Transparent(t *testing.T) {
	data, err := BlankIcon()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, common.TrayIconSize, img.Bounds().Dx())
	for _, p := range [][2]int{{0, 0}, {common.TrayIconSize / 2, common.TrayIconSize / 2}} {
		_, _, _, a := img.At(p[0], p[1]).RGBA()
		assert.Zero(t, a)
	}
}

func TestIcoFromPNG(t *testing.T) {
	data, err := AppIcon()
	require.NoError(t, err)

	ico, err := icoFromPNG(data)
	require.NoError(t, err)
	require.Len(t, ico, 22+len(data))

	assert.Equal(t, []byte{0, 0, 1, 0, 1, 0}, ico[:6], "ICONDIR with one image")
	assert.Equal(t, byte(common.TrayIconSize), ico[6])
	assert.Equal(t, byte(common.TrayIconSize), ico[7])
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(ico[12:14]))
	assert.Equal(t, uint32(len(data)), binary.LittleEndian.Uint32(ico[14:18]))
	assert.Equal(t, uint32(22), binary.LittleEndian.Uint32(ico[18:22]))
	assert.Equal(t, data, ico[22:])

	_, err = icoFromPNG([]byte("not a png"))
	assert.Error(t, err)
}
