package inline

import "regexp"

var (
	imageRe = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkRe  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)

	// formattingRe detects bold, italic or code markup on a single line.
	formattingRe = regexp.MustCompile("\\*\\*.*?\\*\\*|_.*?_|`.*?`")
)

// ExtractImages returns the alt text and URL of every image in text, in order.
func ExtractImages(text string) [][2]string {
	return extractPairs(imageRe, text)
}

// ExtractLinks returns the text and URL of every link in text, in order.
func ExtractLinks(text string) [][2]string {
	return extractPairs(linkRe, text)
}

// HasFormatting reports whether text contains bold, italic or code markup.
func HasFormatting(text string) bool {
	return formattingRe.MatchString(text)
}

// match is one image or link occurrence: its byte range in the scanned text
// plus the bracketed text and parenthesized URL.
type match struct {
	start, end int
	text, url  string
}

// findMatches returns every occurrence of re in text, left to right. It is
// the single scan shared by the Extract functions and the span splitters.
func findMatches(re *regexp.Regexp, text string) []match {
	indexes := re.FindAllStringSubmatchIndex(text, -1)
	if len(indexes) == 0 {
		return nil
	}

	matches := make([]match, 0, len(indexes))
	for _, m := range indexes {
		matches = append(matches, match{
			start: m[0],
			end:   m[1],
			text:  text[m[2]:m[3]],
			url:   text[m[4]:m[5]],
		})
	}
	return matches
}

func extractPairs(re *regexp.Regexp, text string) [][2]string {
	matches := findMatches(re, text)
	if len(matches) == 0 {
		return nil
	}

	pairs := make([][2]string, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, [2]string{m.text, m.url})
	}
	return pairs
}
