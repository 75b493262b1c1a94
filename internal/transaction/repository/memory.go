package repository

import (
	"context"
	"sync"
	"time"

	"merchantapp/internal/transaction"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]transaction.Transaction
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byOwner: make(map[string][]transaction.Transaction),
	}
}

func seedTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		{ID: "1", CustomerName: "John Doe", CustomerUPI: "john.doe@paytm", Amount: 129900, Products: []string{"iPhone 15 Pro"}, PaymentMethod: "UPI", Status: transaction.StatusCompleted, PayoutStatus: transaction.PayoutPaid, Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), TransactionID: "TXN001234567"},
		{ID: "2", CustomerName: "Jane Smith", CustomerUPI: "jane.smith@gpay", Amount: 89999, Products: []string{"Samsung Galaxy S24"}, PaymentMethod: "UPI", Status: transaction.StatusCompleted, PayoutStatus: transaction.PayoutPending, Timestamp: time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC), TransactionID: "TXN001234568"},
		{ID: "3", CustomerName: "Mike Johnson", CustomerUPI: "mike.j@phonepe", Amount: 45999, Products: []string{"Smart Watch", "Bluetooth Earbuds"}, PaymentMethod: "UPI", Status: transaction.StatusPending, PayoutStatus: transaction.PayoutProcessing, Timestamp: time.Date(2024, 1, 15, 8, 45, 0, 0, time.UTC), TransactionID: "TXN001234569"},
		{ID: "4", CustomerName: "Sarah Wilson", CustomerUPI: "sarah.w@paytm", Amount: 134900, Products: []string{"MacBook Air M3"}, PaymentMethod: "UPI", Status: transaction.StatusCompleted, PayoutStatus: transaction.PayoutPaid, Timestamp: time.Date(2024, 1, 14, 16, 20, 0, 0, time.UTC), TransactionID: "TXN001234570"},
	}
}

func (r *MemoryRepository) List(ctx context.Context, merchantID string) ([]transaction.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOwner[merchantID]; !ok {
		r.byOwner[merchantID] = seedTransactions()
	}

	items := r.byOwner[merchantID]
	out := make([]transaction.Transaction, len(items))
	copy(out, items)
	return out, nil
}
