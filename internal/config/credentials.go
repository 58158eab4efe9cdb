package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// CredentialManager resolves the GitHub token through a priority chain:
// environment variables → OS keychain → credentials file → interactive
// prompt. The token is optional for public repositories, so an empty
// result is not an error.
type CredentialManager struct {
	keyring  *KeyringManager
	credPath string
}

// Credentials holds secrets kept outside the main config file.
type Credentials struct {
	GitHubToken string `yaml:"github_token"`
}

// NewCredentialManager creates a credential manager using the standard
// credentials file location.
func NewCredentialManager() *CredentialManager {
	home, _ := os.UserHomeDir()
	return &CredentialManager{
		keyring:  NewKeyringManager(),
		credPath: filepath.Join(home, ".config", "gitsift", "credentials.yaml"),
	}
}

// GetGitHubToken retrieves the GitHub token using the priority chain.
func (cm *CredentialManager) GetGitHubToken() (string, error) {
	// 1. Environment variables (highest priority)
	for _, envVar := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(envVar); token != "" {
			return token, nil
		}
	}

	// 2. OS keychain
	if cm.keyring.IsAvailable() {
		if token, err := cm.keyring.GetGitHubToken(); err == nil && token != "" {
			return token, nil
		}
	}

	// 3. Credentials file
	if creds, err := cm.loadCredentialsFile(); err == nil && creds.GitHubToken != "" {
		return creds.GitHubToken, nil
	}

	// 4. Interactive prompt (skipped when stdin is piped, e.g. in CI)
	if isInteractive() {
		fmt.Println("\nGitHub token not found (optional for public repositories).")
		fmt.Println("Required for: private repositories, higher rate limits.")
		fmt.Println("Create one at: https://github.com/settings/tokens")
		fmt.Print("Enter GitHub token (or press Enter to skip): ")

		token, err := readSecurely()
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		if token != "" && cm.keyring.IsAvailable() {
			_ = cm.keyring.SetGitHubToken(token)
		}
		return token, nil
	}

	return "", nil
}

// SaveCredentials stores the token in the keychain, falling back to the
// credentials file on systems without one.
func (cm *CredentialManager) SaveCredentials(creds Credentials) error {
	if creds.GitHubToken == "" {
		return nil
	}

	if cm.keyring.IsAvailable() {
		if err := cm.keyring.SetGitHubToken(creds.GitHubToken); err != nil {
			return fmt.Errorf("saving token to keychain: %w", err)
		}
		return nil
	}

	return cm.saveCredentialsFile(creds)
}

// CredentialsPath returns the fallback credentials file location.
func (cm *CredentialManager) CredentialsPath() string {
	return cm.credPath
}

func (cm *CredentialManager) loadCredentialsFile() (*Credentials, error) {
	data, err := os.ReadFile(cm.credPath)
	if err != nil {
		return nil, err
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

func (cm *CredentialManager) saveCredentialsFile(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(cm.credPath), 0o700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	// User-only permissions: the file holds a live token.
	if err := os.WriteFile(cm.credPath, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}

	return nil
}

// readSecurely reads a token from stdin without echoing when stdin is a
// terminal, falling back to a plain line read for piped input.
func readSecurely() (string, error) {
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// isInteractive reports whether stdin is a terminal rather than a pipe.
func isInteractive() bool {
	return term.IsTerminal(int(syscall.Stdin))
}
