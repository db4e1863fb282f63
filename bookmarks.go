package remodel

// AppendLinkSuffix is an option that determines whether the bookmark
// generator appends the configured suffix to the "link" field
//
// by default, the suffix is appended
type AppendLinkSuffix bool

// LinkSuffix is an option specifying the suffix appended to the "link" field
//
// if this option is not used, DefaultLinkSuffix is appended
type LinkSuffix string

// DefaultLinkSuffix is the suffix appended to bookmark links
const DefaultLinkSuffix = "?ref=bookmarksfor.dev"

const linkField = "link"

// bookmarkMappings is the fixed default mapping table for bookmark/article
// shaped records - the candidate preference orders are relied upon by
// downstream consumers and must not be re-ordered
var bookmarkMappings = FieldMappings{
	"id":          {"_id", "bookmarkId", "objectId", "id"},
	"title":       {"title", "name", "headline"},
	"link":        {"location", "link", "url", "href"},
	"description": {"description", "summary", "excerpt"},
	"tags":        {"tags", "keywords", "categories"},
	"publishedOn": {"publishedOn", "published", "createdAt"},
	"author":      {"author", "createdBy.name", "owner.name"},
	"language":    {"language", "lang"},
}

// BookmarkMappings returns a copy of the default bookmark field mapping table
func BookmarkMappings() FieldMappings {
	return bookmarkMappings.copy()
}

// NewBookmarkGenerator creates a Generator preconfigured with the bookmark
// field mapping table and link decoration
//
// overrides replace the default candidate list for any field they name -
// fields not named retain their defaults; Transformers and Defaults options
// are merged key-by-key
//
// a caller-supplied PostProcessor replaces the built-in link decoration
// (only one post-process hook runs per call)
//
// options can be any of: AppendLinkSuffix, LinkSuffix, Transformers,
// Defaults, PostProcessor or PostProcessorFunc
func NewBookmarkGenerator(overrides FieldMappings, options ...any) (Generator, error) {
	mappings := bookmarkMappings.copy()
	for k, v := range overrides {
		mappings[k] = v
	}
	appendSuffix := true
	suffix := DefaultLinkSuffix
	rest := make([]any, 0, len(options))
	for _, o := range options {
		if o != nil {
			switch option := o.(type) {
			case AppendLinkSuffix:
				appendSuffix = bool(option)
			case LinkSuffix:
				suffix = string(option)
			default:
				rest = append(rest, o)
			}
		}
	}
	use := make([]any, 0, len(rest)+1)
	if appendSuffix {
		use = append(use, linkDecorator(suffix))
	}
	use = append(use, rest...)
	return NewGenerator(mappings, use...)
}

// MustNewBookmarkGenerator is the same as NewBookmarkGenerator, except it
// panics on error
func MustNewBookmarkGenerator(overrides FieldMappings, options ...any) Generator {
	g, err := NewBookmarkGenerator(overrides, options...)
	if err != nil {
		panic(err)
	}
	return g
}

// GenerateBookmarks maps records into bookmark models using a one-off
// bookmark generator
//
// see NewBookmarkGenerator for options and merge semantics
func GenerateBookmarks(records []Record, overrides FieldMappings, options ...any) ([]Model, error) {
	g, err := NewBookmarkGenerator(overrides, options...)
	if err != nil {
		return nil, err
	}
	return g.Models(records)
}

// linkDecorator appends the suffix to the model's link - but only when the
// link is present and is a string
func linkDecorator(suffix string) PostProcessorFunc {
	return func(model Model, record Record, index int) Model {
		if link, ok := model[linkField].(string); ok {
			model[linkField] = link + suffix
		}
		return model
	}
}
