package provider

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/chainsafe/card-bridge/pkg/oauth"
)

// X public endpoints
const (
	XAuthURL     = "https://twitter.com/i/oauth2/authorize"
	XTokenURL    = "https://api.twitter.com/2/oauth2/token"
	XUserInfoURL = "https://api.twitter.com/2/users/me?user.fields=profile_image_url"
)

var xDefaultScopes = []string{"tweet.read", "users.read", "offline.access"}

type xProvider struct {
	*client
}

// xUserResponse is the users/me envelope. Payloads without data are rejected.
type xUserResponse struct {
	Data *xUser `json:"data" validate:"required"`
}

type xUser struct {
	ID              string `json:"id" validate:"required,numeric"`
	Username        string `json:"username" validate:"required,max=15"`
	Name            string `json:"name" validate:"max=50"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

func (p *xProvider) Identity(ctx context.Context, token *oauth2.Token) (*oauth.Identity, error) {
	var payload xUserResponse
	if err := p.getJSON(ctx, token, "userinfo", p.userInfoURL, &payload); err != nil {
		return nil, err
	}

	return &oauth.Identity{
		ExternalUserID: payload.Data.ID,
		Handle:         payload.Data.Username,
		DisplayName:    payload.Data.Name,
		AvatarURL:      payload.Data.ProfileImageURL,
	}, nil
}
