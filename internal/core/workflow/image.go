package workflow

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ImageUpload - выбранный пользователем файл
type ImageUpload struct {
	FileName string
	MIME     string
	Size     int64
	DataURL  string
}

func (i ImageUpload) IsImage() bool {
	return strings.HasPrefix(i.MIME, "image/")
}

// NewImageUpload читает файл в data URL, тип определяется по содержимому
func NewImageUpload(fileName string, content []byte) ImageUpload {
	mtype := mimetype.Detect(content)
	return ImageUpload{
		FileName: fileName,
		MIME:     mtype.String(),
		Size:     int64(len(content)),
		DataURL:  EncodeDataURL(mtype.String(), content),
	}
}

func EncodeDataURL(mediaType string, content []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// StripDataURLPrefix оставляет только base64 после запятой.
// Строка без запятой считается уже очищенной.
func StripDataURLPrefix(dataURL string) string {
	if _, payload, found := strings.Cut(dataURL, ","); found {
		return payload
	}
	return dataURL
}
