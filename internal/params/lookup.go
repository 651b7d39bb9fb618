package params

// LookupRequest backs the typeahead fields on the console (merchant search,
// player search).
type LookupRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

// LookupOption is one autocomplete entry: Label is shown, Value is submitted.
type LookupOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
