package types

// ExtractionBackend identifies the PDF text extraction tool.
type ExtractionBackend string

const (
	BackendPdftotext ExtractionBackend = "pdftotext"
	BackendNative    ExtractionBackend = "native"
)

// SectionMode selects how a located section is written.
type SectionMode string

const (
	// ModeSingle writes the whole section to one file.
	ModeSingle SectionMode = "single"
	// ModeTopics splits the section into one file per topic heading.
	ModeTopics SectionMode = "topics"
	// ModeAggregate writes the section to an aggregate file that the entry
	// splitter consumes later.
	ModeAggregate SectionMode = "aggregate"
)

// SourceConfig locates the input document and its cached text dump.
type SourceConfig struct {
	// PDF is the path to the source document, relative to the output root.
	PDF string `json:"pdf" yaml:"pdf"`

	// Cache is the path of the plain-text dump reused across runs.
	Cache string `json:"cache" yaml:"cache"`
}

// SanitizeConfig holds the document-specific patterns removed during
// sanitation.
type SanitizeConfig struct {
	// FooterPatterns are line-anchored regular expressions for running
	// headers and footers (e.g. "178   System Reference Document 5.2.1").
	FooterPatterns []string `json:"footer_patterns" yaml:"footer_patterns"`
}

// TopicSpec names one sub-topic inside a section and the heading that
// starts it.
type TopicSpec struct {
	Slug    string `json:"slug" yaml:"slug"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// SectionSpec describes one top-level section of the corpus and where it
// is written.
type SectionSpec struct {
	// Name is the section slug (e.g. "rules-glossary").
	Name string `json:"name" yaml:"name"`

	// Title is the human-readable heading (e.g. "Rules Glossary").
	Title string `json:"title" yaml:"title"`

	// Start and End are line-anchored patterns for the section heading and
	// the heading that follows it. An empty End runs to the end of the corpus.
	Start string `json:"start" yaml:"start"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`

	// Dir is the output directory relative to the output root.
	Dir string `json:"dir" yaml:"dir"`

	// File is the output file name for single and aggregate modes.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	Mode SectionMode `json:"mode" yaml:"mode"`

	// KeepLines skips prose reflow so that short lines, such as entry names
	// in aggregate sections, stay on their own line.
	KeepLines bool `json:"keep_lines,omitempty" yaml:"keep_lines,omitempty"`

	// Description is the prose paragraph placed in the section README.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Topics lists sub-topic headings for topics mode.
	Topics []TopicSpec `json:"topics,omitempty" yaml:"topics,omitempty"`
}

// EntryMarkers holds the tunable vocabulary of the entry boundary detector.
type EntryMarkers struct {
	// Denylist holds structural headings that are never entry names.
	Denylist []string `json:"denylist" yaml:"denylist"`

	// Sizes is the creature-size vocabulary that confirms an entry start.
	Sizes []string `json:"sizes" yaml:"sizes"`

	// MinNameLen and MaxNameLen bound the candidate length exclusively.
	MinNameLen int `json:"min_name_len" yaml:"min_name_len"`
	MaxNameLen int `json:"max_name_len" yaml:"max_name_len"`
}

// CategorySpec names one aggregate file for the entry splitter.
type CategorySpec struct {
	// Title is used in index headings (e.g. "Monsters").
	Title string `json:"title" yaml:"title"`

	// Aggregate is the aggregate file path relative to the output root.
	// Entries are written next to it.
	Aggregate string `json:"aggregate" yaml:"aggregate"`

	// Source is the label cited in each entry's source comment.
	Source string `json:"source" yaml:"source"`
}

// Layout describes a whole source document: where to find it, how to clean
// it, and how to slice it.
type Layout struct {
	Source     SourceConfig   `json:"source" yaml:"source"`
	Sanitize   SanitizeConfig `json:"sanitize" yaml:"sanitize"`
	Sections   []SectionSpec  `json:"sections" yaml:"sections"`
	Markers    EntryMarkers   `json:"markers" yaml:"markers"`
	Categories []CategorySpec `json:"categories" yaml:"categories"`
}

// RunConfig holds the CLI settings shared by every command.
type RunConfig struct {
	// Root is the output root; layout paths are resolved against it.
	Root string `json:"root" yaml:"root" mapstructure:"root"`

	// LayoutFile is an optional YAML layout; the built-in SRD layout is used
	// when empty.
	LayoutFile string `json:"layout" yaml:"layout" mapstructure:"layout"`

	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`
}
