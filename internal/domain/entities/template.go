package entities

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern     = regexp.MustCompile(`<[^>]*>`)
	placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)
)

// ParseTemplateVariables extracts the placeholder names referenced by a
// message template. Templates authored in the rich-text editor carry HTML
// markup, so tags are stripped first (a placeholder split by inline tags
// would otherwise be missed). Order of first appearance is preserved and
// duplicates are collapsed.
func ParseTemplateVariables(template string) []string {
	plain := htmlTagPattern.ReplaceAllString(template, "")

	matches := placeholderPattern.FindAllStringSubmatch(plain, -1)
	seen := make(map[string]struct{}, len(matches))
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.ToLower(m[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, name)
	}
	return vars
}
