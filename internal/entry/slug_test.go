// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Owlbear's Cousin (Variant)", want: "owlbears-cousin-(variant)"},
		{name: "Goblin", want: "goblin"},
		{name: "Giant  Ape", want: "giant-ape"},
		{name: "Half-Dragon", want: "half-dragon"},
		{name: "Dragon’s Hoard", want: "dragons-hoard"},
		{name: "Ape - Variant", want: "ape-variant"},
		{name: "  Padded  ", want: "padded"},
		{name: "Couatl: Winged", want: "couatl-winged"},
		{name: "Mummy `Lord`", want: "mummy-lord"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}

func TestLetter(t *testing.T) {
	assert.Equal(t, "A", Letter("Ape"))
	assert.Equal(t, "A", Letter("ant"))
	assert.Equal(t, "É", Letter("éclair"))
	assert.Equal(t, "", Letter(""))
}
