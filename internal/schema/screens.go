package schema

// Per-screen schemas. Each screen picks its visible and searchable fields
// from the entity's column superset; the lists mirror what the console
// renders left to right.

func Payins() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "uuid", Label: "UUID"},
		{Field: "merchant_id", Label: "Merchant"},
		{Field: "merchant_order_id", Label: "Order ID"},
		{Field: "agent_id", Label: "Agent"},
		{Field: "amount", Label: "Amount"},
		{Field: "status", Label: "Status"},
		{Field: "utr", Label: "UTR"},
		{Field: "player_id", Label: "Player"},
		{Field: "proof_url", Label: "Proof"},
		{Field: "from_date", Label: "From"},
		{Field: "to_date", Label: "To"},
		{Field: "created_at", Label: "Created"},
		{Field: "updated_at", Label: "Updated"},
	}
	return New("payins", defs,
		[]string{"id", "merchant_order_id", "merchant_id", "agent_id", "amount", "status", "utr", "player_id", "created_at"},
		[]string{"uuid", "merchant_order_id", "utr", "status", "player_id", "amount", "from_date", "to_date"},
	)
}

func Payouts() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "uuid", Label: "UUID"},
		{Field: "merchant_id", Label: "Merchant"},
		{Field: "merchant_order_id", Label: "Order ID"},
		{Field: "amount", Label: "Amount"},
		{Field: "status", Label: "Status"},
		{Field: "method", Label: "Method"},
		{Field: "utr", Label: "UTR"},
		{Field: "account_holder", Label: "Account Holder"},
		{Field: "account_number", Label: "Account Number"},
		{Field: "ifsc", Label: "IFSC"},
		{Field: "player_id", Label: "Player"},
		{Field: "from_date", Label: "From"},
		{Field: "to_date", Label: "To"},
		{Field: "created_at", Label: "Created"},
	}
	return New("payouts", defs,
		[]string{"id", "merchant_order_id", "merchant_id", "amount", "status", "method", "utr", "account_number", "created_at"},
		[]string{"uuid", "merchant_order_id", "utr", "status", "account_number", "player_id", "amount", "from_date", "to_date"},
	)
}

func Settlements() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "uuid", Label: "UUID"},
		{Field: "merchant_id", Label: "Merchant"},
		{Field: "amount", Label: "Amount"},
		{Field: "method", Label: "Method"},
		{Field: "status", Label: "Status"},
		{Field: "reference", Label: "Reference"},
		{Field: "from_date", Label: "From"},
		{Field: "to_date", Label: "To"},
		{Field: "created_at", Label: "Created"},
	}
	return New("settlements", defs,
		[]string{"id", "merchant_id", "amount", "method", "status", "reference", "created_at"},
		[]string{"uuid", "merchant_id", "status", "method", "from_date", "to_date"},
	)
}

func Chargebacks() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "uuid", Label: "UUID"},
		{Field: "merchant_id", Label: "Merchant"},
		{Field: "payin_id", Label: "Payin"},
		{Field: "amount", Label: "Amount"},
		{Field: "status", Label: "Status"},
		{Field: "reason", Label: "Reason"},
		{Field: "created_at", Label: "Created"},
	}
	return New("chargebacks", defs,
		[]string{"id", "merchant_id", "payin_id", "amount", "status", "reason", "created_at"},
		[]string{"uuid", "merchant_id", "status"},
	)
}

func Merchants() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "code", Label: "Code"},
		{Field: "name", Label: "Name"},
		{Field: "email", Label: "Email"},
		{Field: "status", Label: "Status"},
		{Field: "balance", Label: "Balance"},
		{Field: "test_mode", Label: "Test Mode"},
		{Field: "created_at", Label: "Created"},
	}
	return New("merchants", defs,
		[]string{"id", "code", "name", "email", "status", "balance", "created_at"},
		[]string{"code", "name", "status"},
	)
}

func Agents() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "name", Label: "Name"},
		{Field: "email", Label: "Email"},
		{Field: "phone", Label: "Phone"},
		{Field: "status", Label: "Status"},
		{Field: "created_at", Label: "Created"},
	}
	return New("agents", defs,
		[]string{"id", "name", "email", "phone", "status", "created_at"},
		[]string{"name", "email", "status"},
	)
}

func BankAccounts() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "account_holder", Label: "Account Holder"},
		{Field: "account_number", Label: "Account Number"},
		{Field: "ifsc", Label: "IFSC"},
		{Field: "bank_name", Label: "Bank"},
		{Field: "upi_id", Label: "UPI"},
		{Field: "min_amount", Label: "Min"},
		{Field: "max_amount", Label: "Max"},
		{Field: "status", Label: "Status"},
		{Field: "created_at", Label: "Created"},
	}
	return New("bank-accounts", defs,
		[]string{"id", "account_holder", "account_number", "ifsc", "bank_name", "upi_id", "min_amount", "max_amount", "status"},
		[]string{"account_number", "ifsc", "bank_name", "status"},
	)
}

func AdminUsers() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "username", Label: "Username"},
		{Field: "role", Label: "Role"},
		{Field: "merchant_id", Label: "Merchant"},
		{Field: "last_login_at", Label: "Last Login"},
		{Field: "created_at", Label: "Created"},
	}
	return New("admin-users", defs,
		[]string{"id", "username", "role", "merchant_id", "last_login_at", "created_at"},
		[]string{"username", "role"},
	)
}

func Paylinks() Table {
	defs := []Column{
		{Field: "id", Label: "ID"},
		{Field: "uuid", Label: "UUID"},
		{Field: "merchant_id", Label: "Merchant"},
		{Field: "code", Label: "Code"},
		{Field: "one_time", Label: "One Time"},
		{Field: "amount", Label: "Amount"},
		{Field: "contact", Label: "Contact"},
		{Field: "status", Label: "Status"},
		{Field: "created_at", Label: "Created"},
	}
	return New("paylinks", defs,
		[]string{"id", "merchant_id", "code", "one_time", "amount", "contact", "status", "created_at"},
		[]string{"code", "merchant_id", "status"},
	)
}
