package zones

import (
	"regexp"
	"strings"
)

// captionPatterns matches caption-introducing prefixes, with or without a
// <center> wrapper the grounded format sometimes emits (spec.md §4.4).
var captionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(figure|fig\.?)\s*\d+`),
	regexp.MustCompile(`(?i)^(table|tab\.?)\s*\d+`),
	regexp.MustCompile(`(?i)^(hình)\s*\d+`),
	regexp.MustCompile(`(?i)^(bảng)\s*\d+`),
	regexp.MustCompile(`(?i)^(image|img\.?)\s*\d+`),
	regexp.MustCompile(`(?i)^(chart|graph)\s*\d+`),
	regexp.MustCompile(`^\[\d+\]`),
	regexp.MustCompile(`(?i)^<center>\s*(figure|fig\.?)\s*\d+`),
	regexp.MustCompile(`(?i)^<center>\s*(table|tab\.?)\s*\d+`),
	regexp.MustCompile(`(?i)^<center>\s*(hình)\s*\d+`),
	regexp.MustCompile(`(?i)^<center>\s*(bảng)\s*\d+`),
	regexp.MustCompile(`(?i)^<center>\s*(image|img\.?)\s*\d+`),
}

// pageNumberPatterns matches standalone page-number text.
var pageNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,4}$`),
	regexp.MustCompile(`^-\s*\d+\s*-$`),
	regexp.MustCompile(`(?i)^page\s*\d+`),
	regexp.MustCompile(`(?i)^trang\s*\d+`),
}

// sectionPatterns matches section/chapter numbering prefixes.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.(\d+\.)*\s+\S`),
	regexp.MustCompile(`^[A-Z]+\.(\d+\.)*\s+\S`),
	regexp.MustCompile(`(?i)^(chapter|section|part)\s+\d+`),
	regexp.MustCompile(`(?i)^(chương|phần|mục)\s+\d+`),
}

var inlineHTMLTag = regexp.MustCompile(`(?i)</?(?:center|b|i|strong|em)>|<br\s*/?>|<[^>]+>`)

// stripInlineTags removes the same closed set of inline tags ground.Extract
// strips, for matching text patterns against caption/heading text that may
// still carry markup from a text_full field (spec.md §4.4 matches against
// both raw and stripped text).
func stripInlineTags(text string) string {
	return strings.TrimSpace(inlineHTMLTag.ReplaceAllString(text, ""))
}
