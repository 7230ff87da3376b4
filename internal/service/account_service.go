package service

import (
	"log/slog"

	"github.com/google/uuid"

	"bank-account/internal/domain"
	"bank-account/internal/errors"
)

// AccountService exposes the process's single account to callers that hold
// untyped input, and logs every operation.
type AccountService struct {
	id      uuid.UUID
	account *domain.Account
	logger  *slog.Logger
}

func NewAccountService(account *domain.Account, logger *slog.Logger) *AccountService {
	return &AccountService{
		id:      uuid.New(),
		account: account,
		logger:  logger,
	}
}

// OpenAccount opens an account from a float literal such as "120.50".
func OpenAccount(openingBalance string) (*domain.Account, error) {
	initial, ok := domain.ParseAmountLiteral(openingBalance)
	if !ok {
		return nil, errors.ErrInvalidOpeningBalance
	}
	return domain.NewAccount(initial)
}

func (s *AccountService) ID() uuid.UUID {
	return s.id
}

func (s *AccountService) Balance() domain.Amount {
	return s.account.Balance()
}

// Deposit credits the account. raw must be a floating-point value.
func (s *AccountService) Deposit(raw any) (domain.Amount, error) {
	s.logger.Info("Processing deposit", "account_id", s.id, "amount", raw)

	amount, ok := domain.ParseAmount(raw)
	if !ok {
		s.logger.Warn("Deposit rejected", "account_id", s.id, "error", errors.ErrInvalidDepositAmount)
		return s.account.Balance(), errors.ErrInvalidDepositAmount
	}

	if err := s.account.Deposit(amount); err != nil {
		s.logger.Warn("Deposit rejected", "account_id", s.id, "error", err)
		return s.account.Balance(), err
	}

	balance := s.account.Balance()
	s.logger.Info("Deposit completed", "account_id", s.id, "amount", amount.Round(), "balance", balance)
	return balance, nil
}

// Withdraw debits the account. raw must be a floating-point value.
func (s *AccountService) Withdraw(raw any) (domain.Amount, error) {
	s.logger.Info("Processing withdrawal", "account_id", s.id, "amount", raw)

	amount, ok := domain.ParseAmount(raw)
	if !ok {
		s.logger.Warn("Withdrawal rejected", "account_id", s.id, "error", errors.ErrInvalidWithdrawAmount)
		return s.account.Balance(), errors.ErrInvalidWithdrawAmount
	}

	if err := s.account.Withdraw(amount); err != nil {
		s.logger.Warn("Withdrawal rejected", "account_id", s.id, "error", err)
		return s.account.Balance(), err
	}

	balance := s.account.Balance()
	s.logger.Info("Withdrawal completed", "account_id", s.id, "amount", amount.Round(), "balance", balance)
	return balance, nil
}
