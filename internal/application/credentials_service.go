package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
)

// CredentialsService reads and writes the developer credentials through the
// secret store under two configured keys.
type CredentialsService struct {
	store      ports.SecretStore
	devIDRef   string
	authKeyRef string
}

func NewCredentialsService(store ports.SecretStore, devIDRef, authKeyRef string) *CredentialsService {
	return &CredentialsService{store: store, devIDRef: devIDRef, authKeyRef: authKeyRef}
}

func (s *CredentialsService) Load(ctx context.Context) (domain.Credentials, error) {
	devID, err := s.get(ctx, s.devIDRef)
	if err != nil {
		return domain.Credentials{}, err
	}
	authKey, err := s.get(ctx, s.authKeyRef)
	if err != nil {
		return domain.Credentials{}, err
	}

	creds := domain.Credentials{DevID: devID, AuthKey: authKey}
	if err := creds.Validate(); err != nil {
		return domain.Credentials{}, err
	}

	return creds, nil
}

// Set stores both values. If the auth key cannot be stored the previous developer id is restored.
func (s *CredentialsService) Set(ctx context.Context, cmd SetCredentialsCommand) error {
	creds := domain.Credentials{DevID: strings.TrimSpace(cmd.DevID), AuthKey: strings.TrimSpace(cmd.AuthKey)}
	if err := creds.Validate(); err != nil {
		return err
	}

	previousDevID, err := s.store.Get(ctx, s.devIDRef)
	if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		return fmt.Errorf("read current developer id: %w", err)
	}
	hadPrevious := err == nil

	if err := s.store.Put(ctx, s.devIDRef, creds.DevID); err != nil {
		return fmt.Errorf("store developer id: %w", err)
	}

	if err := s.store.Put(ctx, s.authKeyRef, creds.AuthKey); err != nil {
		var rollbackErr error
		if hadPrevious {
			rollbackErr = s.store.Put(ctx, s.devIDRef, previousDevID)
		} else {
			rollbackErr = s.store.Delete(ctx, s.devIDRef)
		}
		if rollbackErr != nil {
			return fmt.Errorf("store auth key and rollback developer id: %w", errors.Join(err, rollbackErr))
		}

		return fmt.Errorf("store auth key: %w", err)
	}

	return nil
}

// Remove deletes both values. Missing values are not an error.
func (s *CredentialsService) Remove(ctx context.Context) error {
	var errs error
	for _, ref := range []string{s.authKeyRef, s.devIDRef} {
		if err := s.store.Delete(ctx, ref); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			errs = errors.Join(errs, fmt.Errorf("delete %s: %w", ref, err))
		}
	}

	return errs
}

func (s *CredentialsService) get(ctx context.Context, ref string) (string, error) {
	value, err := s.store.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", fmt.Errorf("%w: %s is not set", domain.ErrCredentialsMissing, ref)
		}
		return "", fmt.Errorf("read %s: %w", ref, err)
	}

	return strings.TrimSpace(value), nil
}
