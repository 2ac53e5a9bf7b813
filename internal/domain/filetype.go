package domain

import "strings"

// defaultPhotoExtensions are the containers worth probing for EXIF
// metadata. Other files still become entries, but are treated as
// undated without opening them.
var defaultPhotoExtensions = []string{
	".jpg", ".jpeg", ".tif", ".tiff", ".heic", ".heif", ".png", ".webp",
	".arw", ".cr2", ".cr3", ".nef", ".raf", ".rw2", ".orf", ".dng",
}

// ExtensionSet answers case-insensitive extension membership.
type ExtensionSet map[string]bool

// NewExtensionSet builds a set from extensions with or without the
// leading dot. An empty input yields the default photo extensions.
func NewExtensionSet(exts []string) ExtensionSet {
	if len(exts) == 0 {
		exts = defaultPhotoExtensions
	}
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

func (s ExtensionSet) Contains(ext string) bool {
	return s[strings.ToLower(ext)]
}

var defaultSet = NewExtensionSet(nil)

// IsPhotoExtension checks ext against the default set.
func IsPhotoExtension(ext string) bool {
	return defaultSet.Contains(ext)
}
