package model

import "strings"

// Path represents a file system path of a results document.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// SlashPath converts the separators of a relative path recorded on any
// platform to forward slashes.
func SlashPath(relativePath string) string {
	return strings.ReplaceAll(relativePath, `\`, "/")
}
