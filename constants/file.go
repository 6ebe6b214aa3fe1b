package constants

import "strings"

// FileTypes holds the allowed file types for the format field in UploadFile.
var FileTypes = []string{"IMAGE", "PDF", "EXCEL"}

// AllowedExtensions holds the upload extensions the pipeline accepts.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
	"pdf":  {},
	"xls":  {},
	"xlsx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatForExt maps a (normalized or raw) extension to its FileTypes value.
// The second return is false for extensions outside AllowedExtensions.
func FormatForExt(ext string) (string, bool) {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg", "png", "gif", "webp":
		return "IMAGE", true
	case "pdf":
		return "PDF", true
	case "xls", "xlsx":
		return "EXCEL", true
	default:
		return "", false
	}
}
