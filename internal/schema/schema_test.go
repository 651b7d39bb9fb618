package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-payment-admin/internal/schema"
)

func testTable() schema.Table {
	defs := []schema.Column{
		{Field: "id", Label: "ID"},
		{Field: "uuid", Label: "UUID"},
		{Field: "amount", Label: "Amount"},
		{Field: "status", Label: "Status"},
		{Field: "internal_note", Label: "Note"},
	}
	return schema.New("things", defs,
		[]string{"id", "amount", "status"},
		[]string{"uuid", "status"},
	)
}

func TestNew_VisibleFieldsFollowTableOrder(t *testing.T) {
	tbl := testTable()
	assert.Equal(t, []string{"id", "amount", "status"}, tbl.VisibleFields())
}

func TestNew_SearchOnlyFieldsAppended(t *testing.T) {
	tbl := testTable()
	assert.Equal(t, []string{"status", "uuid"}, tbl.SearchFields())
}

func TestNew_DropsFieldsInNeitherList(t *testing.T) {
	tbl := testTable()
	for _, c := range tbl.Columns {
		assert.NotEqual(t, "internal_note", c.Field)
	}
}

func TestNew_IgnoresUnknownNames(t *testing.T) {
	tbl := schema.New("things",
		[]schema.Column{{Field: "id", Label: "ID"}},
		[]string{"id", "ghost"},
		[]string{"phantom"},
	)
	assert.Equal(t, []string{"id"}, tbl.VisibleFields())
	assert.Empty(t, tbl.SearchFields())
}

func TestCanFilterAndCanSort(t *testing.T) {
	tbl := testTable()

	assert.True(t, tbl.CanFilter("uuid"))
	assert.True(t, tbl.CanFilter("status"))
	assert.False(t, tbl.CanFilter("amount"))
	assert.False(t, tbl.CanFilter("internal_note"))
	assert.False(t, tbl.CanFilter("unknown"))

	assert.True(t, tbl.CanSort("amount"))
	assert.False(t, tbl.CanSort("uuid"))
}

func TestLabel(t *testing.T) {
	tbl := testTable()
	assert.Equal(t, "Amount", tbl.Label("amount"))
	assert.Equal(t, "missing", tbl.Label("missing"))
}

func TestScreens_TransactionScreensFilterByUUID(t *testing.T) {
	screens := []schema.Table{
		schema.Payins(),
		schema.Payouts(),
		schema.Settlements(),
		schema.Chargebacks(),
	}
	for _, tbl := range screens {
		assert.True(t, tbl.CanFilter("uuid"), "screen %s should allow uuid filter", tbl.Entity)
		assert.False(t, tbl.CanFilter("id"), "screen %s must not filter by raw id", tbl.Entity)
	}
}
