package user

import (
	"fmt"
	"time"

	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
)

// Account is the user identity aggregate. Email is always present and
// unique. Username is unique but nullable until assigned; it is assigned
// exactly once (at registration on the credential path, or synthesized on
// first OAuth login) and has no update path. PasswordHash is nil for
// accounts created through an external identity provider.
type Account struct {
	id           uint
	email        *vo.Email
	username     *vo.Username
	name         string
	passwordHash *string
	avatarURL    *string
	bio          *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAccount creates an account for the credential registration path. The
// username is supplied by the user; the password is set separately through
// SetPassword.
func NewAccount(email *vo.Email, username *vo.Username, name *vo.Name) (*Account, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &Account{
		email:     email,
		username:  username,
		name:      name.String(),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewProviderAccount creates an account for the first OAuth login of an
// email address. Username and password hash start out null; the username is
// synthesized afterwards by the identity linker.
func NewProviderAccount(email *vo.Email, name string, avatarURL string) (*Account, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		name = email.LocalPart()
	}

	account := &Account{
		email:     email,
		name:      name,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	if avatarURL != "" {
		account.avatarURL = &avatarURL
	}
	return account, nil
}

// ReconstructAccount rebuilds an account from persistence.
func ReconstructAccount(
	id uint,
	email *vo.Email,
	username *vo.Username,
	name string,
	passwordHash *string,
	avatarURL *string,
	bio *string,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &Account{
		id:           id,
		email:        email,
		username:     username,
		name:         name,
		passwordHash: passwordHash,
		avatarURL:    avatarURL,
		bio:          bio,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Account) ID() uint            { return a.id }
func (a *Account) Email() *vo.Email    { return a.email }
func (a *Account) Name() string        { return a.name }
func (a *Account) PasswordHash() *string { return a.passwordHash }
func (a *Account) AvatarURL() *string  { return a.avatarURL }
func (a *Account) Bio() *string        { return a.bio }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// Username returns the assigned username, or nil if none has been assigned
// yet (an OAuth account before its first-login repair completes).
func (a *Account) Username() *vo.Username {
	return a.username
}

// UsernameString returns the username or empty string when unassigned.
func (a *Account) UsernameString() string {
	if a.username == nil {
		return ""
	}
	return a.username.String()
}

// AvatarURLString returns the avatar URL or empty string when unset.
func (a *Account) AvatarURLString() string {
	if a.avatarURL == nil {
		return ""
	}
	return *a.avatarURL
}

// SetID sets the account ID (persistence layer use only).
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetPassword hashes and stores the password.
func (a *Account) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password is required")
	}
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	a.passwordHash = &hash
	a.updatedAt = time.Now()
	return nil
}

// VerifyPassword checks the plaintext password against the stored hash. It
// fails when the account has no hash (provider-only account) or when the
// comparison fails; callers must collapse both into the same opaque
// credential error.
func (a *Account) VerifyPassword(password string, hasher PasswordHasher) error {
	if a.passwordHash == nil {
		return fmt.Errorf("account has no password")
	}
	return hasher.Verify(password, *a.passwordHash)
}

// AssignUsername records a synthesized username on an account that has
// none. The username transitions from null to assigned at most once.
func (a *Account) AssignUsername(username *vo.Username) error {
	if a.username != nil {
		return fmt.Errorf("username is already assigned")
	}
	if username == nil {
		return fmt.Errorf("username is required")
	}
	a.username = username
	a.updatedAt = time.Now()
	return nil
}

// UpdateProfile applies profile edits. Empty name keeps the current value;
// a nil bio keeps the stored bio (an omitted field is not a clear); the
// avatar is replaced as given, nil clears it.
func (a *Account) UpdateProfile(name *vo.Name, bio *string, avatarURL *string) {
	if name != nil {
		a.name = name.String()
	}
	if bio != nil {
		a.bio = bio
	}
	a.avatarURL = avatarURL
	a.updatedAt = time.Now()
}

// PublicProfile is the account shape exposed by the API. It never includes
// the password hash.
type PublicProfile struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username,omitempty"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// Profile returns the public view of the account.
func (a *Account) Profile() PublicProfile {
	return PublicProfile{
		ID:        a.id,
		Email:     a.email.String(),
		Username:  a.UsernameString(),
		Name:      a.name,
		AvatarURL: a.avatarURL,
		Bio:       a.bio,
	}
}
