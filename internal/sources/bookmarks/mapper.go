package bookmarks

import (
	"maps"
	"slices"
	"strings"

	"github.com/MrSnakeDoc/tubenotes/internal/service"
)

// ToInputs flattens the seed file into bookmark inputs, in file order.
//
// The bookmark name becomes the title. The category name (lowercased) is
// prepended to the entry's own tags, and a non-empty abbr is kept as a tag
// too. Entries without href are skipped.
func ToInputs(config Config) []service.BookmarkInput {
	inputs := make([]service.BookmarkInput, 0)

	for _, category := range config {
		for _, categoryName := range slices.Sorted(maps.Keys(category)) {
			for _, item := range category[categoryName] {
				for _, name := range slices.Sorted(maps.Keys(item)) {
					entries := item[name]
					if len(entries) == 0 || entries[0].Href == "" {
						continue
					}
					inputs = append(inputs, toInput(categoryName, name, entries[0]))
				}
			}
		}
	}
	return inputs
}

func toInput(category, name string, e Entry) service.BookmarkInput {
	tags := make([]string, 0, len(e.Tags)+2)
	tags = appendTag(tags, strings.ToLower(category))
	for _, t := range e.Tags {
		tags = appendTag(tags, t)
	}
	tags = appendTag(tags, strings.ToLower(e.Abbr))

	in := service.BookmarkInput{
		Title: strings.TrimSpace(name),
		URL:   e.Href,
		Tags:  tags,
	}
	if d := strings.TrimSpace(e.Description); d != "" {
		in.Description = &d
	}
	return in
}

func appendTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(tags, tag) {
		return tags
	}
	return append(tags, tag)
}
