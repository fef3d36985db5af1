package records

// State is the unit of persistence: both record tables, the business-id
// index, and the two id counters. The JSON layout is part of the wire
// contract and must round-trip exactly.
type State struct {
	Customers          *FieldMap `json:"customers"`
	SalesInvoices      *FieldMap `json:"salesinvoices"`
	CustomersCount     int       `json:"customersCount"`
	SalesInvoicesCount int       `json:"salesinvoicesCount"`
	BusinessIDIndex    *FieldMap `json:"businessIdCustomerMap"`
}

// NewState creates an empty state with all counters at zero.
func NewState() *State {
	return &State{
		Customers:       NewFieldMap(),
		SalesInvoices:   NewFieldMap(),
		BusinessIDIndex: NewFieldMap(),
	}
}

// Normalize replaces nil tables with empty ones. Loaded snapshots may omit
// keys that were never written.
func (s *State) Normalize() {
	if s.Customers == nil {
		s.Customers = NewFieldMap()
	}
	if s.SalesInvoices == nil {
		s.SalesInvoices = NewFieldMap()
	}
	if s.BusinessIDIndex == nil {
		s.BusinessIDIndex = NewFieldMap()
	}
}
