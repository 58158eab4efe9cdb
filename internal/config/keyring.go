package config

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService is the service name in the OS keychain:
	// - macOS: Keychain Access → "GitSift"
	// - Windows: Credential Manager → "GitSift"
	// - Linux: Secret Service (requires libsecret)
	KeyringService = "GitSift"

	// KeyringGitHubTokenItem is the item key for the GitHub token.
	KeyringGitHubTokenItem = "github-token"
)

// KeyringManager stores credentials in the OS keychain.
type KeyringManager struct{}

// NewKeyringManager creates a new keyring manager.
func NewKeyringManager() *KeyringManager {
	return &KeyringManager{}
}

// GetGitHubToken retrieves the GitHub token from the OS keychain. An
// unset token is not an error.
func (km *KeyringManager) GetGitHubToken() (string, error) {
	token, err := keyring.Get(KeyringService, KeyringGitHubTokenItem)
	if err == keyring.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading from OS keychain: %w", err)
	}
	return token, nil
}

// SetGitHubToken stores the GitHub token in the OS keychain.
func (km *KeyringManager) SetGitHubToken(token string) error {
	if token == "" {
		return fmt.Errorf("github token cannot be empty")
	}
	if err := keyring.Set(KeyringService, KeyringGitHubTokenItem, token); err != nil {
		return fmt.Errorf("saving to OS keychain: %w", err)
	}
	return nil
}

// DeleteGitHubToken removes the GitHub token from the OS keychain.
// Deleting an unset token is not an error.
func (km *KeyringManager) DeleteGitHubToken() error {
	err := keyring.Delete(KeyringService, KeyringGitHubTokenItem)
	if err == keyring.ErrNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting from OS keychain: %w", err)
	}
	return nil
}

// IsAvailable checks whether an OS keychain can be reached. Headless
// systems (CI) typically have none.
func (km *KeyringManager) IsAvailable() bool {
	_, err := keyring.Get(KeyringService, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}

// MaskToken masks a token for display, keeping just enough to
// recognize it: "ghp_abc...x9k2".
func MaskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) < 12 {
		return "***"
	}
	return fmt.Sprintf("%s...%s", token[:7], token[len(token)-4:])
}
