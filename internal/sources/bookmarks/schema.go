package bookmarks

// Entry is one bookmark in the seed file.
type Entry struct {
	Abbr        string   `yaml:"abbr"`
	Href        string   `yaml:"href"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Category groups bookmarks under a name. The file follows the Homepage
// bookmarks.yaml layout, where each category is a list of single-key maps
// from bookmark name to a one-entry list:
//
//	# - Developer:
//	#     - Github:
//	#         - abbr: GH
//	#           href: https://github.com/
type Category map[string][]map[string][]Entry

// Config is the root of the seed file.
type Config []Category
