package provider

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/chainsafe/card-bridge/pkg/oauth"
)

// Discord public endpoints
const (
	DiscordAuthURL     = "https://discord.com/oauth2/authorize"
	DiscordTokenURL    = "https://discord.com/api/oauth2/token"
	DiscordUserInfoURL = "https://discord.com/api/users/@me"

	discordCDN = "https://cdn.discordapp.com"
)

var discordDefaultScopes = []string{"identify"}

type discordProvider struct {
	*client
	guildID string
}

type discordUser struct {
	ID         string  `json:"id" validate:"required,numeric"`
	Username   string  `json:"username" validate:"required,min=2,max=32"`
	GlobalName *string `json:"global_name"`
	Avatar     *string `json:"avatar" validate:"omitempty,hexadecimal|startswith=a_"`
}

type discordGuild struct {
	ID   string `json:"id" validate:"required,numeric"`
	Name string `json:"name"`
}

func (p *discordProvider) Identity(ctx context.Context, token *oauth2.Token) (*oauth.Identity, error) {
	var u discordUser
	if err := p.getJSON(ctx, token, "userinfo", p.userInfoURL, &u); err != nil {
		return nil, err
	}

	identity := &oauth.Identity{
		ExternalUserID: u.ID,
		Handle:         u.Username,
		DisplayName:    u.Username,
	}
	if u.GlobalName != nil && *u.GlobalName != "" {
		identity.DisplayName = *u.GlobalName
	}
	if u.Avatar != nil && *u.Avatar != "" {
		identity.AvatarURL = fmt.Sprintf("%s/avatars/%s/%s.png", discordCDN, u.ID, *u.Avatar)
	}

	if p.guildID != "" {
		// membership is informational; a failed lookup never fails the link
		member, err := p.isGuildMember(ctx, token)
		if err != nil {
			p.logger.Warn("Discord guild membership lookup failed",
				zap.String("external_user_id", u.ID),
				zap.String("guild_id", p.guildID),
				zap.Error(err))
		} else {
			identity.GuildMember = &member
		}
	}

	return identity, nil
}

func (p *discordProvider) isGuildMember(ctx context.Context, token *oauth2.Token) (bool, error) {
	var guilds []discordGuild
	if err := p.getJSON(ctx, token, "guilds", p.userInfoURL+"/guilds", &guilds); err != nil {
		return false, err
	}
	for _, g := range guilds {
		if g.ID == p.guildID {
			return true, nil
		}
	}
	return false, nil
}
