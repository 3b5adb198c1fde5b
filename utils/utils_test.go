package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		hex  string
		want color.NRGBA
	}{
		{"#000", color.NRGBA{A: 0xff}},
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"1e90ff", color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}},
		{"#11223380", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
	}
	for _, tc := range testCases {
		c, err := HexToRGBA(tc.hex)
		assert.NoError(err)
		assert.Equal(tc.want, c)
	}

	_, err := HexToRGBA("#12345")
	assert.Error(err)
	_, err = HexToRGBA("#gggggg")
	assert.Error(err)

	assert.Equal("#ff0000", RGBAToHex(color.NRGBA{R: 0xff, A: 0xff}))
	assert.Equal("#11223380", RGBAToHex(color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}))
}

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5.5, Max(5.5, 2.0))
	assert.Equal(3, Abs(-3))
	assert.Equal(0.0, Clamp(-1.0, 0, 1))
	assert.Equal(1.0, Clamp(4.0, 0, 1))
	assert.Equal(0.5, Clamp(0.5, 0, 1))
}

func TestUtils_DecorateText(t *testing.T) {
	assert := assert.New(t)

	s := DecorateText("done", SuccessMessage)
	assert.True(strings.HasPrefix(s, SuccessColor))
	assert.True(strings.HasSuffix(s, DefaultColor))
	assert.Equal("plain", DecorateText("plain", MessageType(42)))
	assert.Contains(Banner("exporting", DefaultMessage), "STAMPS")
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://example.com/fonts/NotoEmoji.ttf"))
	assert.False(t, IsValidUrl("fonts/NotoEmoji.ttf"))
	assert.False(t, IsValidUrl("-"))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	assert.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "sample.png")
	assert.NoError(t, os.WriteFile(fname, buf.Bytes(), 0644))

	ctype, err := DetectContentType(fname)
	assert.NoError(t, err)
	assert.Equal(t, "image/png", ctype)

	_, err = DetectContentType(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestUtils_Spinner(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner("exporting", time.Millisecond, false)
	s.SetWriter(&buf)
	s.StopMsg = "ok"
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	// A second stop must not block or panic.
	s.Stop()

	assert.Contains(t, buf.String(), "exporting")
	assert.True(t, strings.HasSuffix(buf.String(), "ok"))
}
