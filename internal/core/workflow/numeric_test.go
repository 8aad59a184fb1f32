package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "integer", in: "250000", want: 250000},
		{name: "decimal", in: "12.5", want: 12.5},
		{name: "surrounding spaces", in: "  42 ", want: 42},
		{name: "negative", in: "-3", want: -3},
		{name: "empty", in: "", want: 0},
		{name: "garbage", in: "abc", want: 0},
		{name: "nan", in: "NaN", want: 0},
		{name: "inf", in: "Inf", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLenient(tt.in))
		})
	}
}

func TestParseLenientInt(t *testing.T) {
	assert.Equal(t, 2020, ParseLenientInt("2020"))
	assert.Equal(t, 1999, ParseLenientInt("1999.9"))
	assert.Equal(t, 0, ParseLenientInt("año"))
	assert.Equal(t, 2024, ParseLenientInt("2024.9"))
	assert.Equal(t, -5, ParseLenientInt("-5.7"))
	assert.Equal(t, 0, ParseLenientInt("1e19"))
	assert.Equal(t, 0, ParseLenientInt("-1e19"))
}

func TestStripDataURLPrefix(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", StripDataURLPrefix("data:image/png;base64,aGVsbG8="))
	assert.Equal(t, "aGVsbG8=", StripDataURLPrefix("aGVsbG8="))
}

func TestNewImageUpload(t *testing.T) {
	upload := NewImageUpload("casa.png", pngBytes)

	assert.Equal(t, "casa.png", upload.FileName)
	assert.Equal(t, "image/png", upload.MIME)
	assert.True(t, upload.IsImage())
	assert.Equal(t, int64(len(pngBytes)), upload.Size)
	assert.Equal(t, EncodeDataURL("image/png", pngBytes), upload.DataURL)

	text := NewImageUpload("notas.txt", []byte("solo texto"))
	assert.False(t, text.IsImage())
}
