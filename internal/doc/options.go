package doc

// Options is the id/styles/fallback side-channel attached to customizable
// nodes. Nodes acquire ids and styles incrementally across parse and
// rewrite, so Options values must combine cleanly: Merge is associative
// and NoOptions is its two-sided identity.
type Options struct {
	ID       string
	Styles   []string
	Fallback Element
}

// NoOptions is the distinguished empty value. Merging with it changes
// nothing.
var NoOptions = Options{}

// Merge combines two Options values. The right operand's id and fallback
// win if present; styles are unioned preserving first-seen order with
// duplicates removed.
func (o Options) Merge(other Options) Options {
	merged := Options{
		ID:       o.ID,
		Fallback: o.Fallback,
	}
	if other.ID != "" {
		merged.ID = other.ID
	}
	if other.Fallback != nil {
		merged.Fallback = other.Fallback
	}
	merged.Styles = mergeStyles(o.Styles, other.Styles)
	return merged
}

// WithID returns a copy with the id replaced.
func (o Options) WithID(id string) Options {
	o.ID = id
	return o
}

// IsEmpty reports whether the value carries no id, styles or fallback.
func (o Options) IsEmpty() bool {
	return o.ID == "" && len(o.Styles) == 0 && o.Fallback == nil
}

func mergeStyles(left, right []string) []string {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))
	for _, s := range left {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range right {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Styled builds an Options value carrying only style names.
func Styled(styles ...string) Options {
	return Options{Styles: styles}
}

// WithIDOption builds an Options value carrying only an id.
func WithIDOption(id string) Options {
	return Options{ID: id}
}
