package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mado-app/mado/internal/domain/user"
	vo "github.com/mado-app/mado/internal/domain/user/valueobjects"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/id"
	"github.com/mado-app/mado/internal/shared/logger"
)

// maxSuffixAttempts bounds the numbered candidates tried during username
// synthesis before falling back to a random suffix.
const maxSuffixAttempts = 100

type HandleOAuthCallbackCommand struct {
	Provider string
	Code     string
	State    string
}

type HandleOAuthCallbackResult struct {
	Account      *user.Account
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	IsNewUser    bool
}

// HandleOAuthCallbackUseCase completes an OAuth sign-in. It reconciles the
// provider identity with the account store by email, creating the account
// and the provider link as needed, and repairs a missing username by
// synthesizing one from the email local part. Any failure to end up with a
// usable, username-bearing account fails the sign-in closed.
type HandleOAuthCallbackUseCase struct {
	userRepo     user.Repository
	oauthRepo    user.OAuthAccountRepository
	clients      map[string]OAuthClient
	states       StateVerifier
	tokenService TokenService
	mailer       WelcomeMailer
	logger       logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	userRepo user.Repository,
	oauthRepo user.OAuthAccountRepository,
	googleClient OAuthClient,
	githubClient OAuthClient,
	states StateVerifier,
	tokenService TokenService,
	mailer WelcomeMailer,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		userRepo:  userRepo,
		oauthRepo: oauthRepo,
		clients: map[string]OAuthClient{
			user.ProviderGoogle: googleClient,
			user.ProviderGitHub: githubClient,
		},
		states:       states,
		tokenService: tokenService,
		mailer:       mailer,
		logger:       logger,
	}
}

func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	if !uc.states.Redeem(cmd.State) {
		return nil, errors.NewUnauthorizedError("Invalid or expired state parameter")
	}

	client, ok := uc.clients[cmd.Provider]
	if !ok || client == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("Unsupported provider: %s", cmd.Provider))
	}

	identity, err := client.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to exchange authorization code", "error", err, "provider", cmd.Provider)
		return nil, errors.NewUnauthorizedError("Authentication with provider failed")
	}

	account, isNewUser, err := uc.resolveAccount(ctx, cmd.Provider, identity)
	if err != nil {
		return nil, err
	}

	if account.Username() == nil {
		account, err = uc.repairUsername(ctx, account, identity)
		if err != nil {
			return nil, err
		}
	}

	tokens, err := uc.tokenService.Generate(account)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", account.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if isNewUser && uc.mailer != nil {
		if mailErr := uc.mailer.SendWelcome(account.Email().String(), account.Name()); mailErr != nil {
			uc.logger.Warnw("failed to send welcome email", "error", mailErr, "user_id", account.ID())
		}
	}

	uc.logger.Infow("oauth login successful",
		"user_id", account.ID(),
		"provider", cmd.Provider,
		"is_new_user", isNewUser,
	)

	return &HandleOAuthCallbackResult{
		Account:      account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		IsNewUser:    isNewUser,
	}, nil
}

// resolveAccount maps the provider identity onto an account: by existing
// provider link first, then by email, creating the account when neither
// exists. Concurrent sign-ins with the same identity are settled by the
// unique indexes; losing a creation race falls back to the winner's row.
func (uc *HandleOAuthCallbackUseCase) resolveAccount(ctx context.Context, provider string, identity *ProviderIdentity) (*user.Account, bool, error) {
	link, err := uc.oauthRepo.GetByProvider(ctx, provider, identity.ProviderUserID)
	if err != nil {
		uc.logger.Errorw("failed to get oauth link", "error", err)
		return nil, false, fmt.Errorf("failed to get oauth link: %w", err)
	}

	if link != nil {
		account, err := uc.userRepo.GetByID(ctx, link.UserID())
		if err != nil {
			uc.logger.Errorw("failed to get user", "error", err, "user_id", link.UserID())
			return nil, false, fmt.Errorf("failed to get user: %w", err)
		}
		if account == nil {
			uc.logger.Errorw("oauth link points to missing user", "user_id", link.UserID())
			return nil, false, errors.NewLinkingFailedError("Sign-in could not be completed")
		}
		return account, false, nil
	}

	email, err := vo.NewEmail(identity.Email)
	if err != nil {
		return nil, false, errors.NewValidationError("Provider returned an invalid email address")
	}

	account, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, false, fmt.Errorf("failed to get user by email: %w", err)
	}

	isNewUser := false
	if account == nil {
		account, err = user.NewProviderAccount(email, identity.Name, identity.AvatarURL)
		if err != nil {
			return nil, false, fmt.Errorf("failed to create account: %w", err)
		}

		if err := uc.userRepo.Create(ctx, account); err != nil {
			if !errors.IsConflictError(err) {
				uc.logger.Errorw("failed to create account", "error", err)
				return nil, false, fmt.Errorf("failed to create account: %w", err)
			}
			// Lost the creation race; use the row the winner inserted.
			account, err = uc.userRepo.GetByEmail(ctx, email.String())
			if err != nil || account == nil {
				uc.logger.Errorw("failed to load account after creation race", "error", err)
				return nil, false, errors.NewLinkingFailedError("Sign-in could not be completed")
			}
		} else {
			isNewUser = true
		}
	}

	newLink, err := user.NewOAuthAccount(account.ID(), provider, identity.ProviderUserID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create oauth link: %w", err)
	}
	if err := uc.oauthRepo.Create(ctx, newLink); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create oauth link", "error", err)
			return nil, false, errors.NewLinkingFailedError("Sign-in could not be completed")
		}
		// A concurrent callback already linked this identity.
	}

	return account, isNewUser, nil
}

// repairUsername synthesizes and assigns a username for an account that has
// none. Candidates are tried in order against the unique index: the base
// derived from the email local part, then base1 through base100, then the
// base with a random suffix. Failure fails the sign-in closed.
func (uc *HandleOAuthCallbackUseCase) repairUsername(ctx context.Context, account *user.Account, identity *ProviderIdentity) (*user.Account, error) {
	base := synthesizeUsernameBase(account.Email().LocalPart())

	var avatarURL *string
	if identity.AvatarURL != "" && account.AvatarURL() == nil {
		avatarURL = &identity.AvatarURL
	}

	assigned := false
	for attempt := 0; attempt <= maxSuffixAttempts+1; attempt++ {
		candidate := usernameCandidate(base, attempt)

		err := uc.userRepo.AssignUsername(ctx, account.ID(), candidate, avatarURL)
		if err == nil {
			assigned = true
			break
		}
		if errors.IsDuplicateError(err) {
			continue
		}
		uc.logger.Errorw("failed to assign username", "error", err, "user_id", account.ID())
		return nil, errors.NewLinkingFailedError("Sign-in could not be completed")
	}

	// Re-read so the session carries the username that actually stuck,
	// whether assigned here or by a concurrent callback.
	fresh, err := uc.userRepo.GetByID(ctx, account.ID())
	if err != nil || fresh == nil {
		uc.logger.Errorw("failed to reload account after username assignment", "error", err, "user_id", account.ID())
		return nil, errors.NewLinkingFailedError("Sign-in could not be completed")
	}
	if fresh.Username() == nil {
		if !assigned {
			uc.logger.Errorw("exhausted username candidates", "user_id", account.ID(), "base", base)
		}
		return nil, errors.NewLinkingFailedError("Sign-in could not be completed")
	}
	return fresh, nil
}

// synthesizeUsernameBase derives the base candidate from an email local
// part: lower-cased with every character outside [a-z0-9_] removed, then
// fitted to the username length bounds.
func synthesizeUsernameBase(localPart string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(localPart) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			b.WriteRune(c)
		}
	}

	base := b.String()
	if len(base) > vo.UsernameMaxLength {
		base = base[:vo.UsernameMaxLength]
	}
	if len(base) < vo.UsernameMinLength {
		base = "user" + base
	}
	return base
}

// usernameCandidate returns the attempt-th candidate for the base: the base
// itself, then numbered suffixes, then a random suffix. Suffixed candidates
// truncate the base so the whole username stays within the length cap.
func usernameCandidate(base string, attempt int) string {
	var suffix string
	switch {
	case attempt == 0:
		return base
	case attempt <= maxSuffixAttempts:
		suffix = strconv.Itoa(attempt)
	default:
		suffix = id.MustGenerate(id.DefaultLength)
	}

	if len(base)+len(suffix) > vo.UsernameMaxLength {
		base = base[:vo.UsernameMaxLength-len(suffix)]
	}
	return base + suffix
}
