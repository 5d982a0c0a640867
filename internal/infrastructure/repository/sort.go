package repository

// orderClause builds a safe ORDER BY from user-supplied sort parameters.
// The column must come from the caller's allowed set; anything else
// falls back to created_at so list sorting cannot smuggle SQL into the
// query. Direction defaults to DESC.
func orderClause(sortBy, sortOrder string, allowed map[string]bool) string {
	column := "created_at"
	if allowed[sortBy] {
		column = sortBy
	}
	direction := "DESC"
	if sortOrder == "ASC" || sortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

var (
	saleSortColumns = map[string]bool{
		"created_at": true, "date": true, "sale_no": true,
		"customer_name": true, "grand_total": true, "due": true, "status": true,
	}
	purchaseSortColumns = map[string]bool{
		"created_at": true, "date": true, "purchase_no": true,
		"supplier_name": true, "grand_total": true, "due": true, "status": true,
	}
	serviceJobSortColumns = map[string]bool{
		"created_at": true, "date": true, "job_no": true,
		"customer_name": true, "grand_total": true, "due": true, "status": true,
	}
	expenseSortColumns = map[string]bool{
		"created_at": true, "date": true, "voucher_no": true,
		"payee_name": true, "grand_total": true, "status": true,
	}
	itemSortColumns = map[string]bool{
		"created_at": true, "name": true, "code": true,
		"sale_rate": true, "purchase_rate": true, "stock": true,
	}
	partySortColumns = map[string]bool{
		"created_at": true, "name": true, "phone": true,
	}
)
