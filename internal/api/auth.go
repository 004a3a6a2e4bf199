package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dori/clockin/internal/config"
)

// callbackPort is the fixed local port the OAuth app registration redirects
// to. It must match the redirect URI configured on the service side.
const callbackPort = 8742

func oauthConfig(domain, clientID, clientSecret string) *oauth2.Config {
	base := fmt.Sprintf("https://%s.%s", domain, apiHost)
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", callbackPort),
		Endpoint: oauth2.Endpoint{
			AuthURL:  base + "/authorize.php",
			TokenURL: base + "/token.php",
		},
	}
}

func credentialsFromToken(domain, clientID, clientSecret string, tok *oauth2.Token) *config.Credentials {
	return &config.Credentials{
		Type:          config.CredentialOAuth,
		CompanyDomain: domain,
		ClientID:      clientID,
		ClientSecret:  clientSecret,
		AccessToken:   tok.AccessToken,
		RefreshToken:  tok.RefreshToken,
		ExpiresAt:     tok.Expiry.UnixMilli(),
	}
}

// refreshCredentials exchanges the stored refresh token for a new access
// token. The service rotates refresh tokens, so the returned credentials
// must replace the stored ones.
func refreshCredentials(ctx context.Context, creds *config.Credentials) (*config.Credentials, error) {
	if creds.RefreshToken == "" {
		return nil, &APIError{Kind: KindAuth, Message: "access token expired and no refresh token stored; run setup again"}
	}
	conf := oauthConfig(creds.CompanyDomain, creds.ClientID, creds.ClientSecret)
	source := conf.TokenSource(ctx, &oauth2.Token{
		RefreshToken: creds.RefreshToken,
		Expiry:       time.UnixMilli(creds.ExpiresAt),
	})
	tok, err := source.Token()
	if err != nil {
		return nil, &APIError{Kind: KindAuth, Message: fmt.Sprintf("refreshing token: %v", err)}
	}
	refreshed := credentialsFromToken(creds.CompanyDomain, creds.ClientID, creds.ClientSecret, tok)
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = creds.RefreshToken
	}
	return refreshed, nil
}

// Authorize runs the interactive authorization-code flow: it starts a local
// callback listener, hands the consent URL to openURL, waits for the
// redirect, and exchanges the code. The random state parameter guards the
// callback against unrelated local requests.
func Authorize(ctx context.Context, domain, clientID, clientSecret string, openURL func(string) error) (*config.Credentials, error) {
	conf := oauthConfig(domain, clientID, clientSecret)
	state := uuid.New().String()

	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", callbackPort))
	if err != nil {
		return nil, fmt.Errorf("starting callback listener: %w", err)
	}

	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/callback" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- result{err: fmt.Errorf("authorization state mismatch")}
			return
		}
		if errCode := q.Get("error"); errCode != "" {
			http.Error(w, "authorization denied", http.StatusBadRequest)
			results <- result{err: fmt.Errorf("authorization denied: %s", errCode)}
			return
		}
		fmt.Fprintln(w, "Authorized. You can close this tab and return to the terminal.")
		results <- result{code: q.Get("code")}
	})}
	go server.Serve(listener)
	defer server.Close()

	if err := openURL(conf.AuthCodeURL(state)); err != nil {
		return nil, fmt.Errorf("opening browser: %w", err)
	}

	var code string
	select {
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		code = res.code
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, &APIError{Kind: KindAuth, Message: fmt.Sprintf("exchanging authorization code: %v", err)}
	}
	return credentialsFromToken(domain, clientID, clientSecret, tok), nil
}
