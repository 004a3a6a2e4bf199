package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dori/clockin/internal/api"
	"github.com/dori/clockin/internal/browser"
	"github.com/dori/clockin/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the service connection",
	Long: `Walk through connecting clockin to the HR service, either with a
personal API key or through the OAuth flow. Credentials are stored under the
user config directory and verified before being saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup()
	},
}

func runSetup() error {
	reader := bufio.NewReader(os.Stdin)

	domain, err := prompt(reader, "Company domain (the part before .bamboohr.com): ")
	if err != nil {
		return err
	}
	if domain == "" {
		return fmt.Errorf("domain is required")
	}

	method, err := prompt(reader, "Auth method: [1] API key  [2] OAuth app (default 1): ")
	if err != nil {
		return err
	}

	var creds *config.Credentials
	switch method {
	case "", "1":
		creds, err = setupAPIKey(reader, domain)
	case "2":
		creds, err = setupOAuth(reader, domain)
	default:
		return fmt.Errorf("unknown choice %q", method)
	}
	if err != nil {
		return err
	}

	// Verify before saving so a typo'd key never sticks.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client := api.New(creds)
	emp, err := client.GetEmployee(ctx, "")
	if err != nil {
		return fmt.Errorf("verifying credentials: %w", err)
	}

	if err := config.SaveCredentials(creds); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	fmt.Printf("Connected as %s.\n", emp.Name())
	fmt.Println("Run `clockin` to open the calendar.")
	return nil
}

func setupAPIKey(reader *bufio.Reader, domain string) (*config.Credentials, error) {
	url := fmt.Sprintf("https://%s.bamboohr.com/settings/permissions/api.php", domain)
	fmt.Printf("Opening %s\n", url)
	browser.Open(url)

	apiKey, err := prompt(reader, "API key: ")
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &config.Credentials{
		Type:          config.CredentialBasic,
		CompanyDomain: domain,
		APIKey:        apiKey,
	}, nil
}

func setupOAuth(reader *bufio.Reader, domain string) (*config.Credentials, error) {
	clientID, err := prompt(reader, "OAuth client ID: ")
	if err != nil {
		return nil, err
	}
	clientSecret, err := prompt(reader, "OAuth client secret: ")
	if err != nil {
		return nil, err
	}
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("client ID and secret are required")
	}

	fmt.Println("Waiting for authorization in the browser...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	return api.Authorize(ctx, domain, clientID, clientSecret, browser.Open)
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

