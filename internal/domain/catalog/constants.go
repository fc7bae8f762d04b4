package catalog

// LoanStatus describes the availability of a single book copy.
type LoanStatus string

// Loan status constants
const (
	StatusMaintenance LoanStatus = "maintenance"
	StatusOnLoan      LoanStatus = "on loan"
	StatusAvailable   LoanStatus = "available"
	StatusReserved    LoanStatus = "reserved"
)

var validLoanStatuses = map[LoanStatus]bool{
	StatusMaintenance: true,
	StatusOnLoan:      true,
	StatusAvailable:   true,
	StatusReserved:    true,
}

// IsValidLoanStatus reports whether status belongs to the closed status set.
func IsValidLoanStatus(status LoanStatus) bool {
	return validLoanStatuses[status]
}

// DefaultPageSize is the number of records shown per list page.
const DefaultPageSize = 10
