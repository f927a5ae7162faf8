package tasks

import "context"

// AccountStore persists the account collection in one flat JSON
// document and enforces email uniqueness on registration.
type AccountStore struct {
	col    *Collection[Account]
	logger Logger
}

func NewAccountStore(path string) *AccountStore {
	return &AccountStore{
		col:    NewCollection[Account](path),
		logger: defLogger{},
	}
}

func (s *AccountStore) WithLogger(logger Logger) *AccountStore {
	s.logger = logger
	return s
}

// All returns every registered account.
func (s *AccountStore) All(ctx context.Context) ([]Account, error) {
	return s.col.Load()
}

// FindByEmail scans the collection for an exact, case-sensitive email
// match. A miss returns ErrAccountNotFound.
func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	records, err := s.col.Load()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Email == email {
			account := records[i]
			return &account, nil
		}
	}

	return nil, ErrAccountNotFound
}

// Create appends a new account and rewrites the collection. The
// duplicate-email check and the write happen under the collection lock,
// so two concurrent registrations for the same email cannot both land.
func (s *AccountStore) Create(ctx context.Context, email, passwordHash string) (*Account, error) {
	var created Account

	err := s.col.Update(func(records []Account) ([]Account, error) {
		var lastID int64
		for _, r := range records {
			if r.Email == email {
				return nil, ErrAccountExists
			}
			if r.ID > lastID {
				lastID = r.ID
			}
		}

		created = Account{
			ID:           nextID(lastID),
			Email:        email,
			PasswordHash: passwordHash,
		}

		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("account created", "account_id", created.ID)

	return &created, nil
}
