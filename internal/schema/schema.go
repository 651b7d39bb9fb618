package schema

// Column is one field of an admin screen's table. Visible columns render in
// the data table, searchable columns render in the filter form; order of each
// follows the name lists the screen was built with.
type Column struct {
	Field      string
	Label      string
	Visible    bool
	Searchable bool
}

// Table is the declarative schema of one list screen. It is built once at
// startup and consulted for column projection and for the filter allow-list:
// a filter key the schema does not mark searchable never reaches the data
// layer.
type Table struct {
	Entity  string
	Columns []Column
}

// New projects a superset of column definitions through two ordered name
// lists. Names in table become the visible columns in that order, names in
// search become the filter fields in that order; a definition present in
// neither list is dropped from the screen entirely. Unknown names in either
// list are ignored.
func New(entity string, defs []Column, table, search []string) Table {
	byField := make(map[string]Column, len(defs))
	for _, d := range defs {
		byField[d.Field] = d
	}

	searchable := make(map[string]bool, len(search))
	for _, name := range search {
		searchable[name] = true
	}

	var columns []Column
	seen := make(map[string]bool)
	for _, name := range table {
		d, ok := byField[name]
		if !ok {
			continue
		}
		d.Visible = true
		d.Searchable = searchable[name]
		columns = append(columns, d)
		seen[name] = true
	}
	// search-only fields keep the search list's order after the visible set
	for _, name := range search {
		if seen[name] {
			continue
		}
		d, ok := byField[name]
		if !ok {
			continue
		}
		d.Visible = false
		d.Searchable = true
		columns = append(columns, d)
		seen[name] = true
	}
	return Table{Entity: entity, Columns: columns}
}

// VisibleFields returns the display columns in render order.
func (t Table) VisibleFields() []string {
	var fields []string
	for _, c := range t.Columns {
		if c.Visible {
			fields = append(fields, c.Field)
		}
	}
	return fields
}

// SearchFields returns the filterable fields in filter-form order.
func (t Table) SearchFields() []string {
	var fields []string
	for _, c := range t.Columns {
		if c.Searchable {
			fields = append(fields, c.Field)
		}
	}
	return fields
}

func (t Table) CanFilter(field string) bool {
	for _, c := range t.Columns {
		if c.Field == field {
			return c.Searchable
		}
	}
	return false
}

func (t Table) CanSort(field string) bool {
	for _, c := range t.Columns {
		if c.Field == field {
			return c.Visible
		}
	}
	return false
}

func (t Table) Label(field string) string {
	for _, c := range t.Columns {
		if c.Field == field {
			return c.Label
		}
	}
	return field
}
