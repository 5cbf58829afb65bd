package constants

import (
	"path/filepath"
	"strings"
)

// Material kinds stored on material rows, derived from the file URL.
const (
	MaterialKindAudio    = 2
	MaterialKindDocument = 3
	MaterialKindPDF      = 4
	MaterialKindSlides   = 5
	MaterialKindImage    = 6
	MaterialKindVideo    = 7
	MaterialKindUnknown  = 99
)

func DetectMaterialKindFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return MaterialKindAudio
	case ".doc", ".docx":
		return MaterialKindDocument
	case ".pdf":
		return MaterialKindPDF
	case ".ppt", ".pptx":
		return MaterialKindSlides
	case ".png", ".jpg", ".jpeg", ".webp":
		return MaterialKindImage
	case ".mp4", ".mkv", ".webm":
		return MaterialKindVideo
	default:
		return MaterialKindUnknown
	}
}
