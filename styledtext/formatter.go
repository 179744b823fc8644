package styledtext

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
)

var (
	headingRe = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	olRe      = regexp.MustCompile(`(?s)<ol([^>]*)>(.*?)</ol>`)
	olStartRe = regexp.MustCompile(`start="(\d+)"`)
	ulRe      = regexp.MustCompile(`(?s)<ul[^>]*>(.*?)</ul>`)
	liRe      = regexp.MustCompile(`(?s)<li[^>]*>(.*?)</li>`)
	strongRe  = regexp.MustCompile(`(?s)<strong[^>]*>(.*?)</strong>`)
	emRe      = regexp.MustCompile(`(?s)<em[^>]*>(.*?)</em>`)
	brRe      = regexp.MustCompile(`<br\s*/?>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	blankRe   = regexp.MustCompile(`\n{3,}`)
)

// FormatForFeed converts a markdown draft into feed-ready plain text:
// emphasis becomes styled Unicode glyphs, headings become bold lines,
// lists are flattened, everything else is stripped down to text with
// literal newlines.
func FormatForFeed(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	out := buf.String()
	out = convertHeadings(out)
	out = flattenLists(out)
	out = replaceEmphasis(out)
	return htmlToPlain(out), nil
}

// 标题在 feed 中没有层级，统一转成加粗独立段落。
func convertHeadings(h string) string {
	return headingRe.ReplaceAllStringFunc(h, func(block string) string {
		parts := headingRe.FindStringSubmatch(block)
		if len(parts) != 3 {
			return block
		}
		text := strings.TrimSpace(tagRe.ReplaceAllString(parts[2], ""))
		return "<p>" + Apply(text, Bold) + "</p>"
	})
}

// 列表展开成带编号/圆点的独立段落，feed 不认 <ol>/<ul>。
func flattenLists(h string) string {
	h = olRe.ReplaceAllStringFunc(h, func(block string) string {
		parts := olRe.FindStringSubmatch(block)
		items := liRe.FindAllStringSubmatch(parts[2], -1)
		if len(items) == 0 {
			return block
		}
		// Lists not starting at 1 carry a start attribute; keep the
		// source numbering.
		start := 1
		if m := olStartRe.FindStringSubmatch(parts[1]); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				start = n
			}
		}
		var b strings.Builder
		for i, item := range items {
			b.WriteString(fmt.Sprintf("<p>%d. %s</p>", start+i, strings.TrimSpace(item[1])))
		}
		return b.String()
	})
	h = ulRe.ReplaceAllStringFunc(h, func(block string) string {
		items := liRe.FindAllStringSubmatch(block, -1)
		if len(items) == 0 {
			return block
		}
		var b strings.Builder
		for _, item := range items {
			b.WriteString("<p>• " + strings.TrimSpace(item[1]) + "</p>")
		}
		return b.String()
	})
	return h
}

func replaceEmphasis(h string) string {
	h = strongRe.ReplaceAllStringFunc(h, func(block string) string {
		inner := strongRe.FindStringSubmatch(block)[1]
		return Apply(tagRe.ReplaceAllString(inner, ""), Bold)
	})
	h = emRe.ReplaceAllStringFunc(h, func(block string) string {
		inner := emRe.FindStringSubmatch(block)[1]
		return Apply(tagRe.ReplaceAllString(inner, ""), Italic)
	})
	return h
}

func htmlToPlain(h string) string {
	h = brRe.ReplaceAllString(h, "\n")
	h = strings.ReplaceAll(h, "</p>", "\n\n")
	h = tagRe.ReplaceAllString(h, "")
	h = html.UnescapeString(h)
	h = blankRe.ReplaceAllString(h, "\n\n")
	return strings.TrimSpace(h)
}
