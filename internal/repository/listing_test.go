package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"
)

type listingRow struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Status    string
	Amount    float64
	CreatedAt time.Time
}

func listingSchema() schema.Table {
	defs := []schema.Column{
		{Field: "id", Label: "ID"},
		{Field: "uuid", Label: "UUID"},
		{Field: "name", Label: "Name"},
		{Field: "status", Label: "Status"},
		{Field: "amount", Label: "Amount"},
		{Field: "from_date", Label: "From"},
		{Field: "to_date", Label: "To"},
		{Field: "created_at", Label: "Created"},
	}
	return schema.New("rows", defs,
		[]string{"id", "name", "status", "amount", "created_at"},
		[]string{"uuid", "name", "status", "amount", "from_date", "to_date"},
	)
}

func setupListingDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&listingRow{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	rows := []listingRow{
		{ID: "a1", Name: "Acme Gaming", Status: "success", Amount: 100, CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "b2", Name: "Bravo Bets", Status: "failed", Amount: 250, CreatedAt: time.Date(2025, 5, 3, 10, 0, 0, 0, time.UTC)},
		{ID: "c3", Name: "Acme Sports", Status: "success", Amount: 250, CreatedAt: time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("failed to seed rows: %v", err)
	}
	return db
}

func queryListing(t *testing.T, db *gorm.DB, filters map[string]interface{}) []listingRow {
	scoped, err := applyFilters(db.Model(&listingRow{}), listingSchema(), filters)
	assert.NoError(t, err)

	var got []listingRow
	assert.NoError(t, scoped.Find(&got).Error)
	return got
}

func TestApplyFilters_Equality(t *testing.T) {
	db := setupListingDB(t)

	got := queryListing(t, db, map[string]interface{}{"status": "success"})
	assert.Len(t, got, 2)

	got = queryListing(t, db, map[string]interface{}{"amount": 250, "status": "failed"})
	assert.Len(t, got, 1)
	assert.Equal(t, "b2", got[0].ID)
}

func TestApplyFilters_LikeFields(t *testing.T) {
	db := setupListingDB(t)

	got := queryListing(t, db, map[string]interface{}{"name": "Acme"})
	assert.Len(t, got, 2)
}

func TestApplyFilters_UUIDTargetsPrimaryKey(t *testing.T) {
	db := setupListingDB(t)

	got := queryListing(t, db, map[string]interface{}{"uuid": "c3"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Acme Sports", got[0].Name)
}

func TestApplyFilters_DateRange(t *testing.T) {
	db := setupListingDB(t)

	got := queryListing(t, db, map[string]interface{}{
		"from_date": "2025-05-02",
		"to_date":   "2025-05-04",
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "b2", got[0].ID)
}

func TestApplyFilters_RejectsUnlistedColumn(t *testing.T) {
	db := setupListingDB(t)

	_, err := applyFilters(db.Model(&listingRow{}), listingSchema(), map[string]interface{}{"id": "a1"})
	assert.Error(t, err)
}

func TestApplyFilters_RejectsBadDate(t *testing.T) {
	db := setupListingDB(t)

	_, err := applyFilters(db.Model(&listingRow{}), listingSchema(), map[string]interface{}{"from_date": "May 1"})
	assert.Error(t, err)
}

func TestApplyOrder(t *testing.T) {
	db := setupListingDB(t)

	var got []listingRow
	page := &params.PageRequest{SortField: "amount", SortOrder: "ascend"}
	err := applyOrder(db.Model(&listingRow{}), listingSchema(), page).Find(&got).Error
	assert.NoError(t, err)
	assert.Equal(t, "a1", got[0].ID)

	// unknown sort fields fall back to newest first
	got = nil
	page = &params.PageRequest{SortField: "password"}
	err = applyOrder(db.Model(&listingRow{}), listingSchema(), page).Find(&got).Error
	assert.NoError(t, err)
	assert.Equal(t, "c3", got[0].ID)
}
