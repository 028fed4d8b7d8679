package transcript

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
)

// timedText covers both caption XML layouts YouTube serves:
//
//	<transcript><text start=".." dur="..">...</text></transcript>   (srv1)
//	<timedtext><body><p t=".."><s>...</s></p></body></timedtext>      (srv3)
type timedText struct {
	Lines []string    `xml:"text"`
	Paras []paragraph `xml:"body>p"`
}

type paragraph struct {
	Text     string   `xml:",chardata"`
	Segments []string `xml:"s"`
}

// parseTimedText flattens a caption document into one line of text.
func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse captions: %w", err)
	}

	var fragments []string
	for _, line := range tt.Lines {
		fragments = appendFragment(fragments, line)
	}
	for _, p := range tt.Paras {
		if len(p.Segments) > 0 {
			fragments = appendFragment(fragments, strings.Join(p.Segments, ""))
			continue
		}
		fragments = appendFragment(fragments, p.Text)
	}
	return strings.Join(fragments, " "), nil
}

// appendFragment unescapes leftover entities (captions are often
// double-escaped) and collapses inner whitespace.
func appendFragment(dst []string, raw string) []string {
	text := strings.Join(strings.Fields(html.UnescapeString(raw)), " ")
	if text == "" {
		return dst
	}
	return append(dst, text)
}
