package domain

// Summary 儀表板統計 (總餘額以最小單位計)
type Summary struct {
	TotalBalance      int64
	Accounts          int
	Customers         int
	VerifiedCustomers int
	Transactions      int
	Invoices          int
}
