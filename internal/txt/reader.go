//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadText - the contents of a file as a UTF-8 string; html is reduced to its visible text
func ReadText(path string, enc string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text, err := Decode(raw, enc)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		text, err = VisibleText(strings.NewReader(text))
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return text, nil
}

// Decode - bytes to string; "" and "utf-8" fall back to windows-1252 if the bytes are not valid UTF-8
func Decode(raw []byte, enc string) (string, error) {
	var dec transform.Transformer
	switch strings.ToLower(enc) {
	case "", "utf8", "utf-8":
		if !utf8.Valid(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))) {
			dec = charmap.Windows1252.NewDecoder()
		} else {
			dec = unicode.BOMOverride(unicode.UTF8.NewDecoder())
		}
	case "latin1", "latin-1", "iso-8859-1":
		dec = charmap.ISO8859_1.NewDecoder()
	case "cp1252", "windows-1252":
		dec = charmap.Windows1252.NewDecoder()
	case "utf16", "utf-16":
		dec = unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
	default:
		return "", fmt.Errorf("unknown encoding '%s'", enc)
	}

	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// VisibleText - the text nodes of an html document, minus scripts and styles; blocks end with a newline
func VisibleText(r io.Reader) (string, error) {
	blocks := map[string]bool{"p": true, "br": true, "div": true, "li": true, "tr": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "blockquote": true}

	var sb strings.Builder
	z := html.NewTokenizer(r)
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return strings.TrimSpace(sb.String()), nil
			}
			return "", z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tn, _ := z.TagName()
			name := string(tn)
			if name == "script" || name == "style" {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if blocks[name] {
				sb.WriteString("\n")
			}
		case html.EndTagToken:
			tn, _ := z.TagName()
			name := string(tn)
			if (name == "script" || name == "style") && skip > 0 {
				skip--
				continue
			}
			if blocks[name] {
				sb.WriteString("\n")
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}
