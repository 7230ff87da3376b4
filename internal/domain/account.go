package domain

import (
	"math"
	"sync"
	"sync/atomic"

	"bank-account/internal/errors"
)

// Account holds a single balance kept at 2 decimal digits.
//
// Only the add/subtract step is serialized by mu. Validation, including the
// sufficient-funds check in Withdraw, runs before the lock is taken, and
// Balance never takes it. The balance is stored as float64 bits so lock-free
// reads stay well defined.
//
// The zero value is an empty account ready for use.
type Account struct {
	mu      sync.Mutex
	balance atomic.Uint64
}

// NewAccount opens an account with the given opening balance rounded to 2 digits.
func NewAccount(initial Amount) (*Account, error) {
	if !initial.Valid() {
		return nil, errors.ErrInvalidOpeningBalance
	}

	a := &Account{}
	a.store(initial.Round())
	return a, nil
}

// NewEmptyAccount opens an account with a zero balance.
func NewEmptyAccount() *Account {
	return &Account{}
}

// Deposit credits round(amount, 2).
func (a *Account) Deposit(amount Amount) error {
	if !amount.Valid() {
		return errors.ErrInvalidDepositAmount
	}
	delta := amount.Round()

	a.mu.Lock()
	a.store(a.load().plus(delta))
	a.mu.Unlock()
	return nil
}

// Withdraw debits round(amount, 2).
//
// The funds check reads the balance before the lock is acquired, so two
// concurrent withdrawals can both pass it against the same balance and leave
// the account below zero. Callers that need check-and-debit atomicity must
// serialize withdrawals themselves.
func (a *Account) Withdraw(amount Amount) error {
	if !amount.Valid() {
		return errors.ErrInvalidWithdrawAmount
	}
	rounded := amount.Round()
	if rounded > a.load() {
		return errors.ErrInsufficientBalance
	}

	a.mu.Lock()
	a.store(a.load().minus(rounded))
	a.mu.Unlock()
	return nil
}

// Balance returns the current balance without locking.
func (a *Account) Balance() Amount {
	return a.load()
}

func (a *Account) load() Amount {
	return Amount(math.Float64frombits(a.balance.Load()))
}

func (a *Account) store(v Amount) {
	a.balance.Store(math.Float64bits(float64(v)))
}
