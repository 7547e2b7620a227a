package loot

import (
	"strings"

	"github.com/tavernworks/lootsmith/internal/domain"
)

// composeName joins prefix names before the base name and suffix names
// after it, space-separated. A side with zero modifiers is omitted
// entirely, so zero total modifiers yields the bare base name.
func composeName(baseName string, prefixes, suffixes []domain.ItemModifier) string {
	parts := make([]string, 0, len(prefixes)+1+len(suffixes))
	for _, m := range prefixes {
		parts = append(parts, m.Name)
	}
	parts = append(parts, baseName)
	for _, m := range suffixes {
		parts = append(parts, m.Name)
	}
	return strings.Join(parts, " ")
}
