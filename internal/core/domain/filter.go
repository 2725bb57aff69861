package domain

// All is the sentinel value that disables a filter stage
const All = "all"

// Filter holds the two view filters of the gallery
type Filter struct {
	Program string
	Tag     string
}

// NewFilter returns a filter that lets everything through
func NewFilter() Filter {
	return Filter{Program: All, Tag: All}
}

// Normalize maps empty values to All
func (f Filter) Normalize() Filter {
	if f.Program == "" {
		f.Program = All
	}
	if f.Tag == "" {
		f.Tag = All
	}
	return f
}

// WithProgram selects a program and resets the tag filter
func (f Filter) WithProgram(program string) Filter {
	f.Program = program
	f.Tag = All
	return f.Normalize()
}

// WithTag selects a tag and keeps the program filter
func (f Filter) WithTag(tag string) Filter {
	f.Tag = tag
	return f.Normalize()
}

// Reset clears the tag filter only
func (f Filter) Reset() Filter {
	return f.WithTag(All)
}

// IsAll reports whether neither stage filters anything
func (f Filter) IsAll() bool {
	f = f.Normalize()
	return f.Program == All && f.Tag == All
}

// Matches reports whether an asset passes both stages
func (f Filter) Matches(a Asset) bool {
	f = f.Normalize()
	if f.Program != All && !a.InProgram(f.Program) {
		return false
	}
	if f.Tag != All && !a.HasTag(f.Tag) {
		return false
	}
	return true
}
