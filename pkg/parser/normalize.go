// pkg/parser/normalize.go
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidycheck/tidycheck/pkg/model"
)

// fallbackColumnName is assigned to headers that normalize to nothing.
const fallbackColumnName = "unnamed_column"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWordChars  = regexp.MustCompile(`[^\w]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// NormalizeColumnName maps a raw header to a machine-safe identifier:
// trim, lowercase, whitespace to underscores, non-word characters to
// underscores, collapse underscore runs, strip edge underscores. An empty
// result falls back to "unnamed_column".
func NormalizeColumnName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = nonWordChars.ReplaceAllString(name, "_")
	name = underscoreRun.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if name == "" {
		return fallbackColumnName
	}
	return name
}

// EnsureUniqueColumns makes column names unique by appending _1, _2, ... to
// duplicates in first-seen order. The first occurrence keeps its name, and
// a suffixed name is bumped again if it collides with an existing column.
func EnsureUniqueColumns(cols []string) []string {
	counts := make(map[string]int, len(cols))
	used := make(map[string]struct{}, len(cols))
	out := make([]string, len(cols))

	for i, col := range cols {
		name := col
		for {
			if _, taken := used[name]; !taken {
				break
			}
			counts[col]++
			name = fmt.Sprintf("%s_%d", col, counts[col])
		}
		used[name] = struct{}{}
		out[i] = name
	}
	return out
}

// NormalizeHeaders normalizes a raw header list and returns the unique
// normalized names alongside the mapping back to the originals. It always
// produces valid output.
func NormalizeHeaders(raw []string) ([]string, model.ColumnMapping) {
	normalized := make([]string, len(raw))
	for i, name := range raw {
		normalized[i] = NormalizeColumnName(name)
	}
	normalized = EnsureUniqueColumns(normalized)

	mapping := make(model.ColumnMapping, len(raw))
	for i, name := range normalized {
		mapping[name] = raw[i]
	}
	return normalized, mapping
}
