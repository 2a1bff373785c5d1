package base64

import (
	"encoding/base64"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// EncodeDataURI renders data as an inline "data:<type>;base64,<payload>" value.
func EncodeDataURI(contentType string, data []byte) string {
	return dataPrefix + contentType + base64Marker + base64.StdEncoding.EncodeToString(data)
}
