package web

import (
	"encoding/base64"
	"html/template"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/KevinMolina1996/realestate-front/internal/core/workflow"
)

// imageSrc готовит значение image.file для атрибута src.
// API может отдать ссылку, data URL или голый base64; все остальное отбрасывается.
func imageSrc(file string) template.URL {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if strings.HasPrefix(file, "data:image/") {
		return template.URL(file)
	}

	if content, err := base64.StdEncoding.DecodeString(file); err == nil && len(content) > 0 {
		if mtype := mimetype.Detect(content); strings.HasPrefix(mtype.String(), "image/") {
			return template.URL(workflow.EncodeDataURL(mtype.String(), content))
		}
	}

	u, err := url.Parse(file)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "", "http", "https":
		return template.URL(u.String())
	}
	return ""
}
