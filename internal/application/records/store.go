package records

import (
	"iter"
	"strconv"
	"sync"

	"github.com/nvmock/backend/internal/domain/records"
)

// Store owns all mutable record state: the customer and sales-invoice
// tables, the business-id index, and the two id counters. Every mutation
// rewrites the full snapshot through the repository before it is reported
// as successful.
//
// Mutations are serialized under one lock together with the persist step;
// reads never observe a partially applied mutation.
type Store struct {
	mu    sync.RWMutex
	state *records.State
	repo  records.SnapshotRepository
}

// NewStore creates a store from the persisted snapshot, or from empty
// defaults when no snapshot exists yet. A fresh store persists its empty
// state immediately so the snapshot file always exists.
func NewStore(repo records.SnapshotRepository) (*Store, error) {
	state, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = records.NewState()
		if err := repo.Save(state); err != nil {
			return nil, err
		}
	}
	state.Normalize()
	return &Store{state: state, repo: repo}, nil
}

// Reset clears all tables and counters. Ids assigned after a reset restart
// at "1".
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := records.NewState()
	if err := s.repo.Save(fresh); err != nil {
		return err
	}
	s.state = fresh
	return nil
}

// CreateCustomer assigns the next customer id to the customer block of the
// decoded payload and indexes it under its business identifier. Returns
// ErrMissingField when the payload carries no extractable business id.
func (s *Store) CreateCustomer(payload *records.FieldMap) (string, error) {
	fields := payload.Map("root").Map("customer")
	if fields == nil {
		return "", records.ErrMissingField
	}
	businessID, err := records.CustomerFromFields(fields).ExternalIdentifier()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CustomersCount++
	id := strconv.Itoa(s.state.CustomersCount)
	s.state.Customers.Set(id, fields)
	s.state.BusinessIDIndex.Set(businessID, id)
	if err := s.repo.Save(s.state); err != nil {
		return "", err
	}
	return id, nil
}

// EditCustomer overwrites the stored fields for id. There is no existence
// check: editing an id that was never created stores a new entry under that
// key. The business-id index is deliberately left untouched even when the
// edited payload carries a different business id; existing fixtures depend
// on the index reflecting creation-time values only.
func (s *Store) EditCustomer(id string, payload *records.FieldMap) (string, error) {
	fields := payload.Map("root").Map("customer")
	if fields == nil {
		return "", records.ErrMissingField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Customers.Set(id, fields)
	if err := s.repo.Save(s.state); err != nil {
		return "", err
	}
	return id, nil
}

// CreateSalesInvoice assigns the next invoice id to the salesinvoice block
// of the decoded payload. The customer reference inside the payload is not
// validated here; it is checked lazily when a response needs it.
func (s *Store) CreateSalesInvoice(payload *records.FieldMap) (string, error) {
	fields := payload.Map("root").Map("salesinvoice")
	if fields == nil {
		return "", records.ErrMissingField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SalesInvoicesCount++
	id := strconv.Itoa(s.state.SalesInvoicesCount)
	s.state.SalesInvoices.Set(id, fields)
	if err := s.repo.Save(s.state); err != nil {
		return "", err
	}
	return id, nil
}

// ListCustomers iterates (id, customer) pairs in insertion order. A
// non-empty keyword restricts the sequence to customers whose business id
// equals it. Filtering is a linear scan over the table, not an index
// lookup, so duplicated business ids all still appear in an unfiltered
// list. The sequence is recomputed on every range.
func (s *Store) ListCustomers(keyword string) iter.Seq2[string, records.Customer] {
	return func(yield func(string, records.Customer) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		for id, v := range s.state.Customers.All() {
			fields, _ := v.(*records.FieldMap)
			customer := records.CustomerFromFields(fields)
			if keyword != "" {
				businessID, err := customer.ExternalIdentifier()
				if err != nil || businessID != keyword {
					continue
				}
			}
			if !yield(id, customer) {
				return
			}
		}
	}
}

// GetCustomer returns the customer stored under id, or ErrNotFound.
func (s *Store) GetCustomer(id string) (records.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fields := s.state.Customers.Map(id)
	if fields == nil {
		return records.Customer{}, records.ErrNotFound
	}
	return records.CustomerFromFields(fields), nil
}

// GetSalesInvoice returns the invoice stored under id, or ErrNotFound.
func (s *Store) GetSalesInvoice(id string) (records.SalesInvoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fields := s.state.SalesInvoices.Map(id)
	if fields == nil {
		return records.SalesInvoice{}, records.ErrNotFound
	}
	return records.SalesInvoiceFromFields(fields), nil
}

// CustomerForInvoice resolves the customer an invoice references. Returns
// ErrMissingField when the invoice carries no reference and
// ErrBrokenReference when the reference does not resolve to a stored
// customer.
func (s *Store) CustomerForInvoice(invoice records.SalesInvoice) (string, records.Customer, error) {
	customerID, err := invoice.CustomerID()
	if err != nil {
		return "", records.Customer{}, err
	}
	customer, err := s.GetCustomer(customerID)
	if err != nil {
		return "", records.Customer{}, records.ErrBrokenReference
	}
	return customerID, customer, nil
}

// Snapshot returns the current state for inspection. Callers must not
// mutate the result.
func (s *Store) Snapshot() *records.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
