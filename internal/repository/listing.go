package repository

import (
	"fmt"

	"gorm.io/gorm"

	"go-payment-admin/internal/commons/timeutil"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"
)

// Fields matched with a contains search instead of equality.
var likeFields = map[string]bool{
	"name":           true,
	"code":           true,
	"email":          true,
	"username":       true,
	"contact":        true,
	"account_holder": true,
	"bank_name":      true,
}

// applyFilters translates an allow-listed filter map into WHERE clauses.
// Every key must be searchable on the screen's schema; the schema is the only
// source of column names, so no raw user input reaches the query text.
// "uuid" targets the primary key, "from_date"/"to_date" bound created_at.
func applyFilters(db *gorm.DB, tbl schema.Table, filters map[string]interface{}) (*gorm.DB, error) {
	for key, value := range filters {
		if !tbl.CanFilter(key) {
			return nil, fmt.Errorf("filter %q is not searchable on %s", key, tbl.Entity)
		}
		switch key {
		case "uuid":
			db = db.Where("id = ?", value)
		case "from_date":
			t, err := timeutil.ParseDate(fmt.Sprint(value))
			if err != nil {
				return nil, fmt.Errorf("from_date must be YYYY-MM-DD")
			}
			db = db.Where("created_at >= ?", t)
		case "to_date":
			t, err := timeutil.ParseDate(fmt.Sprint(value))
			if err != nil {
				return nil, fmt.Errorf("to_date must be YYYY-MM-DD")
			}
			db = db.Where("created_at < ?", t.AddDate(0, 0, 1))
		default:
			if likeFields[key] {
				db = db.Where(key+" LIKE ?", "%"+fmt.Sprint(value)+"%")
			} else {
				db = db.Where(key+" = ?", value)
			}
		}
	}
	return db, nil
}

// applyOrder applies the requested sort when the schema allows it, defaulting
// to newest first.
func applyOrder(db *gorm.DB, tbl schema.Table, page *params.PageRequest) *gorm.DB {
	if page.SortField != "" && tbl.CanSort(page.SortField) {
		dir := "ASC"
		if page.SortOrder == "desc" || page.SortOrder == "descend" {
			dir = "DESC"
		}
		return db.Order(page.SortField + " " + dir)
	}
	return db.Order("created_at DESC")
}
