package constants

import "strings"

// FileKind is the coarse source-file kind stored on processed_files rows.
type FileKind string

const (
	PDF   FileKind = "PDF"
	IMAGE FileKind = "IMAGE"
)

// SupportedExtensions holds the file extensions the pipeline will ingest.
var SupportedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
}

// MediaTypes maps image extensions to the media type sent to the vision model.
var MediaTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"heic": "image/heic",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToKind maps a normalized extension to a FileKind, or "" if unsupported.
func MapExtToKind(ext string) FileKind {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "heic":
		return IMAGE
	default:
		return ""
	}
}

// IsHEICExt reports whether the extension denotes an HEIC/HEIF container,
// which must be converted before the vision model can accept it.
func IsHEICExt(ext string) bool {
	switch NormalizeExt(ext) {
	case "heic", "heif", "heics", "heifs":
		return true
	default:
		return false
	}
}
