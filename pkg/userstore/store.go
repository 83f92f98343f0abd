package userstore

import (
	"context"
	"errors"

	"github.com/chainsafe/card-bridge/pkg/user"
)

// ErrUserExists is returned when a wallet is registered twice.
var ErrUserExists = errors.New("user already exists")

// Store defines the interface for user registration data persistence
type Store interface {
	CreateUser(ctx context.Context, user *user.User) error
	UserExists(ctx context.Context, walletAddress string) (bool, error)
}
