package report

import (
	"strconv"
	"strings"
)

// yamlListBlock retourne une liste YAML en mode block.
func yamlListBlock(xs []string) string {
	if len(xs) == 0 {
		return " []" // note l'espace: on l'utilise après 'tags:'
	}
	var b strings.Builder
	for _, s := range xs {
		// on quote pour sécurité (c'est valide YAML): - "mon tag"
		quoted := strconv.Quote(s)
		b.WriteString("\n  - ")
		b.WriteString(quoted)
	}
	return b.String()
}

// quoteBlockPure : préfixe chaque ligne par "> " pour un blockquote Markdown.
func quoteBlockPure(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = "> " + lines[i]
	}
	return strings.Join(lines, "\n")
}
