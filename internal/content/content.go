// ABOUTME: Content processing utilities for rich-text entry bodies
// ABOUTME: Detects HTML, converts to Markdown for display/export, extracts plain text

package content

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// htmlTagPattern matches common HTML tags
var htmlTagPattern = regexp.MustCompile(`<\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|u|s|code|pre|mark|blockquote)[^>]*>`)

// IsHTML checks if content appears to be HTML markup.
func IsHTML(content string) bool {
	if strings.Contains(content, "<!DOCTYPE") || strings.Contains(content, "<html") {
		return true
	}
	return htmlTagPattern.MatchString(content)
}

// ToMarkdown converts rich-text entry content to Markdown.
// Content that doesn't look like HTML is returned unchanged.
func ToMarkdown(content string) string {
	if content == "" {
		return content
	}
	if !IsHTML(content) {
		return content
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		// If conversion fails, return original content
		return content
	}
	return strings.TrimSpace(markdown)
}

// blockTags are elements whose boundaries become line breaks in the
// extracted text.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "pre": true,
}

// ToText strips markup from rich-text entry content, keeping the
// visible text with block boundaries as newlines. Non-HTML content is
// returned unchanged.
func ToText(content string) string {
	if content == "" || !IsHTML(content) {
		return content
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(content))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way, return what we have
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if blockTags[string(name)] {
				sb.WriteByte('\n')
			}
		}
	}
}
