package loan

type LedgerEntry struct {
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
}
