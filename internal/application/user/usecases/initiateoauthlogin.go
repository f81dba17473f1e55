package usecases

import (
	"context"
	"fmt"

	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/shared/errors"
	"github.com/mado-app/mado/internal/shared/logger"
)

type InitiateOAuthLoginCommand struct {
	Provider string
}

type InitiateOAuthLoginResult struct {
	AuthURL string
	State   string
}

// InitiateOAuthLoginUseCase starts the OAuth round trip: it issues a
// single-use state token and builds the provider authorization URL.
type InitiateOAuthLoginUseCase struct {
	clients map[string]OAuthClient
	states  StateVerifier
	logger  logger.Interface
}

func NewInitiateOAuthLoginUseCase(
	googleClient OAuthClient,
	githubClient OAuthClient,
	states StateVerifier,
	logger logger.Interface,
) *InitiateOAuthLoginUseCase {
	return &InitiateOAuthLoginUseCase{
		clients: map[string]OAuthClient{
			user.ProviderGoogle: googleClient,
			user.ProviderGitHub: githubClient,
		},
		states: states,
		logger: logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute(ctx context.Context, cmd InitiateOAuthLoginCommand) (*InitiateOAuthLoginResult, error) {
	client, ok := uc.clients[cmd.Provider]
	if !ok || client == nil {
		return nil, errors.NewValidationError(fmt.Sprintf("Unsupported provider: %s", cmd.Provider))
	}

	state, err := uc.states.Issue()
	if err != nil {
		uc.logger.Errorw("failed to issue oauth state", "error", err)
		return nil, fmt.Errorf("failed to issue state: %w", err)
	}

	return &InitiateOAuthLoginResult{
		AuthURL: client.AuthURL(state),
		State:   state,
	}, nil
}
