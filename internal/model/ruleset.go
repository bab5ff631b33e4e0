package model

// Uncategorized is the reserved default category. It always exists in a
// Ruleset and its keywords are never matched against.
const Uncategorized = "Uncategorized"

// Category is a named bucket with an ordered keyword list.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Ruleset is the full category->keyword mapping. Category order is
// significant: the categorizer iterates in this order and later matches win.
type Ruleset struct {
	Categories []Category `yaml:"categories"`
}

// DefaultRuleset returns a ruleset containing only Uncategorized.
func DefaultRuleset() Ruleset {
	return Ruleset{Categories: []Category{{Name: Uncategorized, Keywords: []string{}}}}
}

// Lookup returns the category with the given name.
func (rs Ruleset) Lookup(name string) (Category, bool) {
	for _, c := range rs.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Has reports whether a category name exists.
func (rs Ruleset) Has(name string) bool {
	_, ok := rs.Lookup(name)
	return ok
}

// Names returns category names in ruleset order.
func (rs Ruleset) Names() []string {
	names := make([]string, len(rs.Categories))
	for i, c := range rs.Categories {
		names[i] = c.Name
	}
	return names
}

// Clone returns a deep copy, so callers can hold a ruleset without
// aliasing the store's keyword slices.
func (rs Ruleset) Clone() Ruleset {
	out := Ruleset{Categories: make([]Category, len(rs.Categories))}
	for i, c := range rs.Categories {
		kws := make([]string, len(c.Keywords))
		copy(kws, c.Keywords)
		out.Categories[i] = Category{Name: c.Name, Keywords: kws}
	}
	return out
}
