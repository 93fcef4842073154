package gantt

import "strings"

// TagSet records which status tags a task carries.
type TagSet struct {
	Done      bool
	Active    bool
	Crit      bool
	Milestone bool
}

// Has reports whether tag is present.
func (s TagSet) Has(tag Tag) bool {
	switch tag {
	case TagDone:
		return s.Done
	case TagActive:
		return s.Active
	case TagCrit:
		return s.Crit
	case TagMilestone:
		return s.Milestone
	}
	return false
}

func (s *TagSet) add(tag Tag) {
	switch tag {
	case TagDone:
		s.Done = true
	case TagActive:
		s.Active = true
	case TagCrit:
		s.Crit = true
	case TagMilestone:
		s.Milestone = true
	}
}

// Metadata is the decomposed text after a task line's first colon.
type Metadata struct {
	Tags TagSet
	// Items are the user-defined items in source order.
	Items []string
}

// SplitMetadata splits raw on commas, trims every token and drops empty ones.
// A token is a tag only if it exactly equals one of the tag names; its
// position does not matter. All other tokens become Items.
func SplitMetadata(raw string) Metadata {
	var meta Metadata
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if IsTag(token) {
			meta.Tags.add(Tag(token))
			continue
		}
		meta.Items = append(meta.Items, token)
	}
	return meta
}

// Fields is the positional reading of a task's user-defined items.
type Fields struct {
	ID    string
	Start string
	End   string

	HasID    bool
	HasStart bool
	HasEnd   bool

	// Extra holds items past the third, kept verbatim.
	Extra []string
}

// Fields interprets the items by count: one item is the end, two are start
// and end, three are id, start and end.
func (m Metadata) Fields() Fields {
	items := m.Items
	switch len(items) {
	case 0:
		return Fields{}
	case 1:
		return Fields{End: items[0], HasEnd: true}
	case 2:
		return Fields{Start: items[0], End: items[1], HasStart: true, HasEnd: true}
	}
	f := Fields{
		ID:       items[0],
		Start:    items[1],
		End:      items[2],
		HasID:    true,
		HasStart: true,
		HasEnd:   true,
	}
	if len(items) > 3 {
		f.Extra = append([]string(nil), items[3:]...)
	}
	return f
}
