//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import "strings"

const (
	GUTSTART = "*** START OF THE PROJECT GUTENBERG EBOOK"
	GUTEND   = "*** END OF THE PROJECT GUTENBERG EBOOK"
)

// StripGutenberg - drop the Project Gutenberg header and licence; missing markers leave that end alone
func StripGutenberg(text string) string {
	if i := strings.Index(text, GUTSTART); i >= 0 {
		// the marker line names the book: the body starts on the next line
		if nl := strings.Index(text[i:], "\n"); nl >= 0 {
			text = text[i+nl+1:]
		} else {
			text = ""
		}
	}
	if j := strings.Index(text, GUTEND); j >= 0 {
		text = text[:j]
	}
	return strings.TrimSpace(text)
}
