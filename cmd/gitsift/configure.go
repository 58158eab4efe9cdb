package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitsift/gitsift/internal/config"
	"github.com/gitsift/gitsift/internal/render"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactive setup wizard (with OS keychain support)",
	Long: `Walk through GitSift configuration step-by-step.

This will configure:
1. GitHub token (stored in the OS keychain when available, never in
   the config file)
2. Default output format
3. Default history window`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 GitSift Configuration Wizard")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	var response string

	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	loaded, err := config.Load(configPath)
	if err != nil {
		loaded = config.Default()
	}

	km := config.NewKeyringManager()
	keychainAvailable := km.IsAvailable()
	if !keychainAvailable {
		fmt.Println("⚠️  OS keychain not available (headless system or Linux without libsecret)")
		fmt.Println("   The token will be stored in the credentials file instead.")
		fmt.Println()
	}

	// Step 1: GitHub token
	fmt.Println("Step 1/3: GitHub Token")
	fmt.Println()

	current, _ := km.GetGitHubToken()
	if current == "" {
		current = loaded.GitHub.Token
	}

	if current != "" {
		fmt.Printf("Current: %s\n", config.MaskToken(current))
		fmt.Print("Keep existing token? (Y/n): ")

		response, _ = reader.ReadString('\n')
		response = strings.TrimSpace(response)

		if response != "" && strings.ToLower(response) != "y" {
			if err := promptAndStoreToken(reader, km, keychainAvailable); err != nil {
				return err
			}
		}
	} else {
		fmt.Println("A token is optional for public repositories but raises API rate")
		fmt.Println("limits and unlocks private ones.")
		fmt.Println("Create one at: https://github.com/settings/tokens")
		fmt.Println()
		if err := promptAndStoreToken(reader, km, keychainAvailable); err != nil {
			return err
		}
	}

	// Step 2: Default output format
	fmt.Println()
	fmt.Println("Step 2/3: Default Output Format")
	fmt.Println()
	fmt.Printf("Available: %s\n", strings.Join(render.Formats(), ", "))
	fmt.Printf("Current: %s\n", loaded.Output.Format)
	fmt.Print("New format (or press Enter to keep): ")

	response, _ = reader.ReadString('\n')
	if format := strings.TrimSpace(response); format != "" {
		if _, err := render.New(render.Format(format)); err != nil {
			fmt.Printf("⚠️  %v, keeping %s\n", err, loaded.Output.Format)
		} else {
			loaded.Output.Format = format
			fmt.Printf("✅ Using %s\n", format)
		}
	}

	// Step 3: History window
	fmt.Println()
	fmt.Println("Step 3/3: History Window")
	fmt.Println()
	fmt.Printf("Current: %s\n", describeWindow(loaded.History.Days))
	fmt.Print("Days of history to analyze (0 = all, press Enter to keep): ")

	response, _ = reader.ReadString('\n')
	if trimmed := strings.TrimSpace(response); trimmed != "" {
		if days, err := strconv.Atoi(trimmed); err == nil && days >= 0 {
			loaded.History.Days = days
			fmt.Printf("✅ Analyzing %s\n", describeWindow(days))
		} else {
			fmt.Println("⚠️  Not a number, keeping current value")
		}
	}

	// Save
	fmt.Println()
	fmt.Printf("Save configuration to %s? (Y/n): ", configPath)

	response, _ = reader.ReadString('\n')
	response = strings.TrimSpace(response)

	if response == "" || strings.ToLower(response) == "y" {
		// Tokens live in the keychain or credentials file, never here.
		loaded.GitHub.Token = ""
		if err := loaded.Save(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println("✅ Configuration saved!")
		fmt.Println()
		fmt.Println("Try it out:")
		fmt.Println("  gitsift analyze            # current repository")
		fmt.Println("  gitsift analyze golang/go  # via the GitHub API")
	} else {
		fmt.Println("⏭️  Configuration not saved")
	}

	return nil
}

func promptAndStoreToken(reader *bufio.Reader, km *config.KeyringManager, keychainAvailable bool) error {
	fmt.Print("Enter GitHub token (or press Enter to skip): ")

	response, _ := reader.ReadString('\n')
	token := strings.TrimSpace(response)
	if token == "" {
		fmt.Println("⏭️  Skipped")
		return nil
	}

	if keychainAvailable {
		if err := km.SetGitHubToken(token); err != nil {
			return fmt.Errorf("saving token: %w", err)
		}
		fmt.Printf("✅ Token saved to OS keychain\n")
		fmt.Printf("   📍 %s\n", keychainLocation())
		return nil
	}

	cm := config.NewCredentialManager()
	if err := cm.SaveCredentials(config.Credentials{GitHubToken: token}); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Printf("✅ Token saved to %s\n", cm.CredentialsPath())
	return nil
}

func keychainLocation() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS Keychain Access.app → 'GitSift'"
	case "windows":
		return "Windows Credential Manager → 'GitSift'"
	case "linux":
		return "Linux Secret Service (libsecret)"
	default:
		return "OS keychain"
	}
}

func describeWindow(days int) string {
	if days <= 0 {
		return "full history"
	}
	return fmt.Sprintf("last %d days", days)
}
