package user

import "context"

// Repository persists accounts. Lookup methods return (nil, nil) when no
// account matches; errors are reserved for infrastructure failures.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, account *Account) error

	// AssignUsername sets the username on an account whose username is
	// still null, as a single guarded update. It fails with a duplicate
	// error when the username is already taken, so callers can retry with
	// the next candidate. The optional avatar URL is applied in the same
	// write.
	AssignUsername(ctx context.Context, id uint, username string, avatarURL *string) error
}

// OAuthAccountRepository persists provider identity links.
type OAuthAccountRepository interface {
	Create(ctx context.Context, link *OAuthAccount) error
	GetByProvider(ctx context.Context, provider, providerUserID string) (*OAuthAccount, error)
	ListByUserID(ctx context.Context, userID uint) ([]*OAuthAccount, error)
}

// PasswordHasher abstracts the hashing scheme used for stored credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
