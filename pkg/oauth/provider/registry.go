package provider

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/chainsafe/card-bridge/pkg/config"
	"github.com/chainsafe/card-bridge/pkg/oauth"
)

// Registry holds the enabled providers by name.
type Registry map[oauth.Provider]Provider

// Get returns the named provider or ErrUnknownProvider
func (r Registry) Get(name oauth.Provider) (Provider, error) {
	p, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", oauth.ErrUnknownProvider, name)
	}
	return p, nil
}

// Option customises provider construction
type Option func(*options)

type options struct {
	httpClient *http.Client
	getenv     func(string) string
}

// WithHTTPClient routes all provider calls through hc
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// NewRegistry builds a client for every enabled provider in cfg. Client
// secrets are read through getenv from the variables named in cfg.
func NewRegistry(cfg config.OAuthConfig, getenv func(string) string, logger *zap.Logger, opts ...Option) (Registry, error) {
	o := &options{getenv: getenv}
	for _, opt := range opts {
		opt(o)
	}

	validate := validator.New()
	reg := Registry{}

	if pc := cfg.Providers.X; pc.Enabled {
		c, err := newClient(oauth.ProviderX, pc, cfg.RedirectURI, o, validate, logger,
			XAuthURL, XTokenURL, XUserInfoURL, xDefaultScopes)
		if err != nil {
			return nil, err
		}
		// X rejects authorization requests without PKCE.
		c.pkce = true
		c.config.Endpoint.AuthStyle = oauth2.AuthStyleInHeader
		reg[oauth.ProviderX] = &xProvider{client: c}
	}

	if pc := cfg.Providers.Discord; pc.Enabled {
		scopes := discordDefaultScopes
		if pc.GuildID != "" {
			scopes = append(slices.Clone(scopes), "guilds")
		}
		c, err := newClient(oauth.ProviderDiscord, pc, cfg.RedirectURI, o, validate, logger,
			DiscordAuthURL, DiscordTokenURL, DiscordUserInfoURL, scopes)
		if err != nil {
			return nil, err
		}
		c.pkce = pc.PKCE
		reg[oauth.ProviderDiscord] = &discordProvider{client: c, guildID: pc.GuildID}
	}

	return reg, nil
}

func newClient(
	name oauth.Provider,
	pc config.ProviderConfig,
	redirectURI string,
	o *options,
	validate *validator.Validate,
	logger *zap.Logger,
	authURL, tokenURL, userInfoURL string,
	defaultScopes []string,
) (*client, error) {
	var secret string
	if pc.ClientSecretEnv != "" {
		secret = o.getenv(pc.ClientSecretEnv)
		if secret == "" {
			return nil, fmt.Errorf("%s client secret env %s is empty", name, pc.ClientSecretEnv)
		}
	}

	scopes := pc.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &client{
		name: name,
		config: &oauth2.Config{
			ClientID:     pc.ClientID,
			ClientSecret: secret,
			RedirectURL:  redirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  orDefault(pc.AuthURL, authURL),
				TokenURL: orDefault(pc.TokenURL, tokenURL),
			},
		},
		pkce:        pc.PKCE,
		userInfoURL: orDefault(pc.UserInfoURL, userInfoURL),
		httpClient:  o.httpClient,
		validate:    validate,
		logger:      logger.Named(string(name)),
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
