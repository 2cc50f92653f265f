// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/srd-split/pkg/types"
)

var testMarkers = types.EntryMarkers{
	Denylist:   []string{"Actions", "Traits", "Bonus Actions", "Legendary Actions", "Reactions", "Lair Actions", "Regional Effects"},
	Sizes:      []string{"Tiny", "Small", "Medium", "Large", "Huge", "Gargantuan"},
	MinNameLen: 2,
	MaxNameLen: 60,
}

func names(entries []types.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestDetect_DuplicateNameAndSizeLine(t *testing.T) {
	lines := []string{
		"Goblin",
		"",
		"Goblin",
		"Small humanoid, neutral evil",
		"Armor Class 15",
		"Hobgoblin",
		"Medium Fey (Goblinoid), Lawful Evil",
		"Armor Class 18",
	}
	entries := NewDetector(testMarkers).Detect(lines)
	require.Len(t, entries, 2)

	goblin := entries[0]
	assert.Equal(t, "Goblin", goblin.Name)
	assert.Equal(t, 0, goblin.StartLine)
	assert.Equal(t, 5, goblin.EndLine)
	assert.Equal(t, "Goblin\n\nGoblin\nSmall humanoid, neutral evil\nArmor Class 15", goblin.Block)
	assert.Equal(t, "goblin", goblin.Slug)
	assert.Equal(t, "G", goblin.Letter)

	hob := entries[1]
	assert.Equal(t, "Hobgoblin", hob.Name)
	assert.Equal(t, 5, hob.StartLine)
	assert.Equal(t, len(lines), hob.EndLine)
	assert.Equal(t, "H", hob.Letter)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "denylisted heading with duplicate is never an entry",
			lines: []string{"Actions", "", "Actions", "Multiattack. The goblin attacks twice."},
			want:  []string{},
		},
		{
			name: "denylisted heading inside an entry stays in the block",
			lines: []string{
				"Ape", "Medium Beast, Unaligned",
				"Actions", "Actions",
				"Fist. Melee Attack Roll: +5",
				"Bat", "Tiny Beast, Unaligned",
			},
			want: []string{"Ape", "Bat"},
		},
		{
			name:  "candidate without confirming line is absorbed",
			lines: []string{"Ape", "Medium Beast, Unaligned", "Climb Speed", "The ape climbs.", "Bat", "", "", "Bat"},
			want:  []string{"Ape", "Bat"},
		},
		{
			name:  "leading boilerplate belongs to no entry",
			lines: []string{"<!-- Source: srd.pdf -->", "", "# Monsters A–Z (Aggregate)", "", "Monsters A–Z", "Intro text.", "Owlbear", "Large Monstrosity, Unaligned"},
			want:  []string{"Owlbear"},
		},
		{
			name:  "heading lines are skipped even if title-like after the marker",
			lines: []string{"# Goblin", "# Goblin"},
			want:  []string{},
		},
		{
			name:  "size marker requires a comma",
			lines: []string{"Lion", "Large cats hunt in prides"},
			want:  []string{},
		},
		{
			name:  "size word must be whole",
			lines: []string{"Smallfolk", "Smallish thing, odd"},
			want:  []string{},
		},
		{
			name:  "names too short or too long are ignored",
			lines: []string{"Ox", "Ox", strings.Repeat("A", 60), strings.Repeat("A", 60)},
			want:  []string{},
		},
		{
			name:  "apostrophes and parentheses are title-like",
			lines: []string{"Owlbear's Cousin (Variant)", "Large Monstrosity, Unaligned"},
			want:  []string{"Owlbear's Cousin (Variant)"},
		},
		{
			name:  "lowercase or punctuated lines are not candidates",
			lines: []string{"goblin", "goblin", "Goblin, the", "Goblin, the"},
			want:  []string{},
		},
		{
			name:  "confirming line is not reused as a new start",
			lines: []string{"Imp", "Imp", "Imp", "Tiny Fiend (Devil), Lawful Evil"},
			want:  []string{"Imp", "Imp"},
		},
		{
			name:  "candidate at end of input",
			lines: []string{"Ape", "Medium Beast, Unaligned", "", "Bat", "", ""},
			want:  []string{"Ape"},
		},
	}
	d := NewDetector(testMarkers)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(d.Detect(tt.lines))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_SpansCoverInput(t *testing.T) {
	lines := []string{
		"Preamble",
		"Ape", "Medium Beast, Unaligned", "Fist.",
		"Bat", "", "Bat", "Tiny Beast, Unaligned",
		"Cat", "Tiny Beast, Unaligned", "Claws.",
	}
	entries := NewDetector(testMarkers).Detect(lines)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].StartLine)
	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].EndLine, entries[i].StartLine, "entries must be contiguous")
	}
	assert.Equal(t, len(lines), entries[len(entries)-1].EndLine)
}

func TestIsCandidate(t *testing.T) {
	d := NewDetector(testMarkers)
	assert.True(t, d.IsCandidate("Goblin"))
	assert.True(t, d.IsCandidate("Giant Ape"))
	assert.True(t, d.IsCandidate("Half-Dragon"))
	assert.True(t, d.IsCandidate("Dragon’s Hoard"))
	assert.False(t, d.IsCandidate("Legendary Actions"))
	assert.False(t, d.IsCandidate("Ox"))
	assert.False(t, d.IsCandidate("Hit Points 7 (2d6)."))
}

func TestConfirms(t *testing.T) {
	d := NewDetector(testMarkers)
	assert.True(t, d.Confirms("Goblin", "Goblin"))
	assert.True(t, d.Confirms("Goblin", "Small Fey (Goblinoid), Chaotic Neutral"))
	assert.True(t, d.Confirms("Kraken", "Gargantuan Monstrosity (Titan), Chaotic Evil"))
	assert.False(t, d.Confirms("Goblin", "Goblin Boss"))
	assert.False(t, d.Confirms("Goblin", "Armor Class 15"))
}
