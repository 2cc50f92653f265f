// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package section

import (
	"sort"
	"strings"

	"github.com/pdiddy/srd-split/pkg/types"
)

// SplitTopics slices a section's text at the first match of each topic
// heading. Topics whose heading does not occur are omitted; the rest are
// returned in document order, each running to the next found heading or to
// the end of the text. section names the section in the error returned when
// no heading matches.
func SplitTopics(section, text string, specs []types.TopicSpec) ([]types.Topic, error) {
	var found []types.Topic
	for _, spec := range specs {
		re, err := compile(spec.Pattern)
		if err != nil {
			return nil, err
		}
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		found = append(found, types.Topic{Slug: spec.Slug, Offset: loc[0]})
	}
	if len(found) == 0 {
		return nil, &NoTopicsFoundError{Section: section}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Offset < found[j].Offset })

	for i := range found {
		end := len(text)
		if i+1 < len(found) {
			end = found[i+1].Offset
		}
		found[i].Content = strings.TrimSpace(text[found[i].Offset:end])
	}
	return found, nil
}
