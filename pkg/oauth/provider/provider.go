// Package provider implements the OAuth clients of the supported identity providers.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/chainsafe/card-bridge/pkg/oauth"
)

const maxPayloadSize = 1 << 20

// Provider is one OAuth client registration.
//
//go:generate mockery --name Provider --output mocks --outpkg mocks --filename mock_provider.go --with-expecter
type Provider interface {
	Name() oauth.Provider
	UsesPKCE() bool
	// AuthCodeURL builds the browser redirect. verifier is ignored unless UsesPKCE.
	AuthCodeURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	Identity(ctx context.Context, token *oauth2.Token) (*oauth.Identity, error)
}

// client is the x/oauth2 plumbing shared by all providers.
type client struct {
	name        oauth.Provider
	config      *oauth2.Config
	pkce        bool
	userInfoURL string
	httpClient  *http.Client
	validate    *validator.Validate
	logger      *zap.Logger
}

func (c *client) Name() oauth.Provider { return c.name }

func (c *client) UsesPKCE() bool { return c.pkce }

func (c *client) AuthCodeURL(state, verifier string) string {
	if c.pkce && verifier != "" {
		return c.config.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	}
	return c.config.AuthCodeURL(state)
}

func (c *client) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	var opts []oauth2.AuthCodeOption
	if c.pkce {
		opts = append(opts, oauth2.VerifierOption(verifier))
	}
	tok, err := c.config.Exchange(c.withHTTPClient(ctx), code, opts...)
	if err != nil {
		return nil, c.tokenError("token exchange", err)
	}
	return tok, nil
}

func (c *client) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	tok, err := c.config.TokenSource(c.withHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, c.tokenError("token refresh", err)
	}
	return tok, nil
}

func (c *client) withHTTPClient(ctx context.Context) context.Context {
	if c.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

func (c *client) tokenError(op string, err error) error {
	pErr := &oauth.ProviderError{Provider: c.name, Op: op, Err: err}
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		pErr.Code = re.ErrorCode
		pErr.Description = re.ErrorDescription
		if re.Response != nil {
			pErr.StatusCode = re.Response.StatusCode
		}
	}
	return pErr
}

// getJSON fetches url with the bearer token and decodes a validated payload into v.
func (c *client) getJSON(ctx context.Context, token *oauth2.Token, op, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}

	hc := oauth2.NewClient(c.withHTTPClient(ctx), oauth2.StaticTokenSource(token))
	resp, err := hc.Do(req)
	if err != nil {
		return &oauth.ProviderError{Provider: c.name, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return &oauth.ProviderError{Provider: c.name, Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeErrorBody(c.name, op, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &oauth.ProviderError{Provider: c.name, Op: op, StatusCode: resp.StatusCode,
			Code: "malformed_payload", Err: err}
	}
	if err := c.validatePayload(v); err != nil {
		return &oauth.ProviderError{Provider: c.name, Op: op, StatusCode: resp.StatusCode,
			Code: "unexpected_payload", Err: err}
	}
	return nil
}

func (c *client) validatePayload(v any) error {
	if err := c.validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return c.validate.Var(v, "dive")
		}
		return err
	}
	return nil
}

// errorBody covers the machine-readable error shapes of the supported providers.
type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Title            string `json:"title"`
	Detail           string `json:"detail"`
	Message          string `json:"message"`
}

func decodeErrorBody(name oauth.Provider, op string, status int, body []byte) error {
	pErr := &oauth.ProviderError{Provider: name, Op: op, StatusCode: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return pErr
	}
	pErr.Code = firstNonEmpty(eb.Error, eb.Title)
	pErr.Description = firstNonEmpty(eb.ErrorDescription, eb.Detail, eb.Message)
	return pErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
