// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout loads, validates, and serializes document layouts: the
// section headings, topic headings, footer patterns, and entry markers that
// tune the slicer and splitter to one source document.
package layout

import (
	"fmt"
	"os"
	"regexp"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/srd-split/pkg/types"
)

// Default returns the layout of the SRD 5.2.1 PDF.
func Default() types.Layout {
	return types.Layout{
		Source: types.SourceConfig{
			PDF:   "docs/srd/SRD_CC_v5.2.1.pdf",
			Cache: "docs/srd/.tmp/all.txt",
		},
		Sanitize: types.SanitizeConfig{
			FooterPatterns: []string{
				`^[ \t]*\d+[ \t]+System Reference Document 5\.2\.1[ \t]*$`,
			},
		},
		Sections: []types.SectionSpec{
			{
				Name:  "rules-glossary",
				Title: "Rules Glossary",
				Start: `^\s*Rules Glossary\b`,
				End:   `^\s*Gameplay Toolbox\b`,
				Dir:   "docs/srd/09-rules-glossary",
				File:  "rules-glossary.md",
				Mode:  types.ModeSingle,
				Description: "This folder contains the SRD 5.2.1 Rules Glossary in Markdown form. " +
					"The content is provided as a single file mirroring the SRD text.",
			},
			{
				Name:        "gameplay-toolbox",
				Title:       "Gameplay Toolbox",
				Start:       `^\s*Gameplay Toolbox\b`,
				End:         `^\s*Monsters\b`,
				Dir:         "docs/srd/10-gameplay-toolbox",
				Mode:        types.ModeTopics,
				Description: "Rules and procedures for overland travel, background creation, hazards, traps, encounters, and magic item usage.",
				Topics: []types.TopicSpec{
					{Slug: "travel-pace", Pattern: `^.*Travel Pace.*$`},
					{Slug: "creating-a-background", Pattern: `^.*Creating a Background.*$`},
					{Slug: "curses-and-magical-contagions", Pattern: `^.*Curses and Magical Contagions.*$`},
					{Slug: "environmental-effects", Pattern: `^.*Environmental Effects.*$`},
					{Slug: "fear-and-mental-stress", Pattern: `^.*Fear and Mental Stress.*$`},
					{Slug: "poison", Pattern: `^.*Poison.*$`},
					{Slug: "traps", Pattern: `^.*Traps.*$`},
					{Slug: "combat-encounters", Pattern: `^.*Combat Encounters.*$`},
					{Slug: "magic-items", Pattern: `^.*Magic Items.*$`},
				},
			},
			{
				Name:  "monsters",
				Title: "Monsters A–Z",
				Start: `^\s*Monsters A–Z\b`,
				End:   `^\s*Animals\b`,
				Dir:   "docs/srd/07-monsters/a-z",
				File:  "ALL.md",
				Mode:  types.ModeAggregate,

				KeepLines: true,
			},
			{
				Name:  "animals",
				Title: "Animals",
				Start: `^\s*Animals\b`,
				Dir:   "docs/srd/08-animals/a-z",
				File:  "ALL.md",
				Mode:  types.ModeAggregate,

				KeepLines: true,
			},
		},
		Markers: types.EntryMarkers{
			Denylist: []string{
				"Actions",
				"Bonus Actions",
				"Reactions",
				"Traits",
				"Legendary Actions",
				"Lair Actions",
				"Regional Effects",
				"Monsters",
				"Animals",
				"Gameplay Toolbox",
				"Rules Glossary",
			},
			Sizes:      []string{"Tiny", "Small", "Medium", "Large", "Huge", "Gargantuan"},
			MinNameLen: 2,
			MaxNameLen: 60,
		},
		Categories: []types.CategorySpec{
			{Title: "Monsters", Aggregate: "docs/srd/07-monsters/a-z/ALL.md", Source: "Monsters A–Z"},
			{Title: "Animals", Aggregate: "docs/srd/08-animals/a-z/ALL.md", Source: "Animals"},
		},
	}
}

// Load reads a layout from a YAML file and validates it.
func Load(path string) (types.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Layout{}, fmt.Errorf("reading layout file: %w", err)
	}
	var l types.Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return types.Layout{}, fmt.Errorf("parsing layout file %s: %w", path, err)
	}
	if err := Validate(l); err != nil {
		return types.Layout{}, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return l, nil
}

// Write saves a layout as YAML, typically the default layout as a starting
// point for a new document.
func Write(path string, l types.Layout) error {
	data, err := yaml.Marshal(&l)
	if err != nil {
		return fmt.Errorf("marshaling layout: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that every pattern compiles and that every section has
// what its mode needs.
func Validate(l types.Layout) error {
	if l.Source.PDF == "" || l.Source.Cache == "" {
		return fmt.Errorf("source.pdf and source.cache are required")
	}
	for _, p := range l.Sanitize.FooterPatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("footer pattern %q: %w", p, err)
		}
	}
	for _, s := range l.Sections {
		if s.Name == "" || s.Dir == "" {
			return fmt.Errorf("section %q: name and dir are required", s.Title)
		}
		for _, p := range []string{s.Start, s.End} {
			if p == "" {
				continue
			}
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("section %s: pattern %q: %w", s.Name, p, err)
			}
		}
		if s.Start == "" {
			return fmt.Errorf("section %s: start pattern is required", s.Name)
		}
		switch s.Mode {
		case types.ModeSingle, types.ModeAggregate:
			if s.File == "" {
				return fmt.Errorf("section %s: %s mode requires file", s.Name, s.Mode)
			}
		case types.ModeTopics:
			if len(s.Topics) == 0 {
				return fmt.Errorf("section %s: topics mode requires at least one topic", s.Name)
			}
			for _, t := range s.Topics {
				if _, err := regexp.Compile(t.Pattern); err != nil {
					return fmt.Errorf("section %s: topic %s: %w", s.Name, t.Slug, err)
				}
			}
		default:
			return fmt.Errorf("section %s: unknown mode %q", s.Name, s.Mode)
		}
	}
	if l.Markers.MaxNameLen <= l.Markers.MinNameLen {
		return fmt.Errorf("markers: max_name_len (%d) must exceed min_name_len (%d)",
			l.Markers.MaxNameLen, l.Markers.MinNameLen)
	}
	if len(l.Markers.Sizes) == 0 {
		return fmt.Errorf("markers: at least one size is required")
	}
	for _, c := range l.Categories {
		if c.Title == "" || c.Aggregate == "" {
			return fmt.Errorf("category %q: title and aggregate are required", c.Title)
		}
	}
	return nil
}
