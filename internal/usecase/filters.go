package usecase

import (
	"fmt"

	"go-payment-admin/internal/commons/response"
	"go-payment-admin/internal/params"
	"go-payment-admin/internal/schema"
)

// checkFilters cleans and validates a screen's filter map and enforces the
// schema allow-list. Requests with unknown or malformed filters never reach
// the repository.
func checkFilters(tbl schema.Table, filters map[string]interface{}) (map[string]interface{}, *response.CustomError) {
	cleaned, err := params.ValidateFilters(filters)
	if err != nil {
		return nil, response.BadRequestError(err.Error())
	}
	for key := range cleaned {
		if !tbl.CanFilter(key) {
			return nil, response.BadRequestError(fmt.Sprintf("filter %q is not searchable on %s", key, tbl.Entity))
		}
	}
	return cleaned, nil
}
