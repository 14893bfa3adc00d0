package repository

import (
	"sync"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"go.uber.org/zap"
)

// CustomerRegistry owns the customers, keyed by normalized email.
type CustomerRegistry struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
	order     []string
	logger    *zap.Logger
}

func NewCustomerRegistry(log *zap.Logger) *CustomerRegistry {
	return &CustomerRegistry{
		customers: make(map[string]domain.Customer),
		logger:    logger.OrNop(log),
	}
}

// AddCustomer registers a customer once per normalized email. Later adds with the
// same email are ignored.
func (r *CustomerRegistry) AddCustomer(email, firstName, lastName string) error {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		return err
	}
	customer, err := domain.NewCustomer(firstName, lastName, normalized)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[normalized]; exists {
		r.logger.Debug("customer already registered", zap.String("email", normalized))
		return nil
	}
	r.customers[normalized] = customer
	r.order = append(r.order, normalized)
	return nil
}

func (r *CustomerRegistry) GetCustomer(email string) (domain.Customer, bool) {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		return domain.Customer{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[normalized]
	return customer, ok
}

func (r *CustomerRegistry) ListCustomers() []domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]domain.Customer, 0, len(r.order))
	for _, email := range r.order {
		customers = append(customers, r.customers[email])
	}
	return customers
}
