package utils

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeToUTF8 attempts to decode arbitrary text bytes to UTF-8.
// It supports:
// - UTF-8 (with or without BOM)
// - UTF-16 LE/BE with BOM
// - GB18030/GBK (catalog exports from Chinese library software)
func DecodeToUTF8(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}

	if bytes.HasPrefix(data, []byte{0xFE, 0xFF}) {
		if s, ok := transformAll(data, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()); ok {
			return s
		}
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) {
		if s, ok := transformAll(data, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()); ok {
			return s
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	for _, dec := range []transform.Transformer{
		simplifiedchinese.GB18030.NewDecoder(),
		simplifiedchinese.GBK.NewDecoder(),
	} {
		if s, ok := transformAll(data, dec); ok && utf8.ValidString(s) {
			return s
		}
	}

	// Fallback: treat as UTF-8 with possible invalid sequences
	return string(data)
}

func transformAll(data []byte, t transform.Transformer) (string, bool) {
	b, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), t))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// ReadText reads a file and returns its content as UTF-8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeToUTF8(data), nil
}
