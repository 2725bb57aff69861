package domain

import (
	"encoding/json"
)

// StatusPublished is the only item status the gallery ever shows
const StatusPublished = "published"

// Item is a raw record of the success stories collection
type Item struct {
	ID             json.RawMessage `json:"id,omitempty"`
	Status         string          `json:"status"`
	AssetImage     string          `json:"asset_image"`
	AssetMessage   string          `json:"asset_message"`
	TransitionType StringList      `json:"transition_type"`
	ProgramName    StringList      `json:"program_name"`
}

// StringList decodes a CMS multi-select field.
// An array keeps its string elements and skips the rest; anything else
// (null, a bare string, a number) decodes to an empty list instead of
// failing the whole response.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	values := StringList{}

	var elems []any
	if err := json.Unmarshal(data, &elems); err != nil {
		*l = values
		return nil
	}
	for _, e := range elems {
		if s, ok := e.(string); ok {
			values = append(values, s)
		}
	}
	*l = values
	return nil
}
