package tasks

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Auther orchestrates registration and login against the account store,
// the password hasher, and the token service.
type Auther struct {
	accounts *AccountStore
	tokens   TokenService
	logger   Logger
}

// NewAuthenticator returns a new Auther
func NewAuthenticator(accounts *AccountStore, tokens TokenService) *Auther {
	return &Auther{
		accounts: accounts,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// TokenService returns the TokenService instance used by this Auther
func (s *Auther) TokenService() TokenService {
	return s.tokens
}

// Register hashes the password and creates the account. A taken email
// returns ErrAccountExists. No token is issued: the caller must log in
// separately.
func (s *Auther) Register(ctx context.Context, email, password string) (*Account, error) {
	hash, err := HashPassword(password)
	if err != nil {
		s.logger.Error("Register hash password error", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	account, err := s.accounts.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, ErrAccountExists) {
			s.logger.Info("Register rejected existing email", "email", email)
		} else {
			s.logger.Error("Register create account error", "error", err)
		}
		return nil, err
	}

	return account, nil
}

// Login verifies the credentials and issues a signed token keyed on the
// account id. Unknown email and wrong password stay distinct errors.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			s.logger.Error("Login find account error", "error", err)
		}
		return "", err
	}

	if err := ComparePasswordAndHash(password, account.PasswordHash); err != nil {
		s.logger.Info("Login rejected bad credentials", "account_id", account.ID)
		return "", ErrBadCredentials
	}

	token, err := s.tokens.Generate(account.ID)
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return "", err
	}

	return token, nil
}
