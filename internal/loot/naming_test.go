package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernworks/lootsmith/internal/domain"
)

func TestComposeName(t *testing.T) {
	sharp := domain.ItemModifier{ID: "sharp", Name: "Sharp"}
	gleaming := domain.ItemModifier{ID: "gleaming", Name: "Gleaming"}
	ofTheFox := domain.ItemModifier{ID: "of_the_fox", Name: "of the Fox"}

	tests := []struct {
		name     string
		prefixes []domain.ItemModifier
		suffixes []domain.ItemModifier
		expected string
	}{
		{"no modifiers", nil, nil, "Goblin Blade"},
		{"prefix only", []domain.ItemModifier{sharp}, nil, "Sharp Goblin Blade"},
		{"suffix only", nil, []domain.ItemModifier{ofTheFox}, "Goblin Blade of the Fox"},
		{"both sides", []domain.ItemModifier{sharp}, []domain.ItemModifier{ofTheFox}, "Sharp Goblin Blade of the Fox"},
		{"stacked prefixes keep selection order", []domain.ItemModifier{gleaming, sharp}, nil, "Gleaming Sharp Goblin Blade"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, composeName("Goblin Blade", tt.prefixes, tt.suffixes))
		})
	}
}
