package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	"github.com/chainsafe/card-bridge/pkg/auth"
	"github.com/chainsafe/card-bridge/pkg/user"
	"github.com/chainsafe/card-bridge/pkg/userstore"
)

// ErrUserAlreadyRegistered is returned when the signing wallet already has an account.
var ErrUserAlreadyRegistered = errors.New("user already registered")

// Store is the narrow data-access interface for the registration service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	UserExists(ctx context.Context, walletAddress string) (bool, error)
	CreateUser(ctx context.Context, user *user.User) error
}

// Service defines the interface for the registration business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResponse, error)
}

type registrationService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new registration service
func NewService(store Store, logger *zap.Logger) Service {
	return &registrationService{
		store:  store,
		logger: logger,
	}
}

// Register registers the wallet that signed req.Message.
//
// The registration process:
//  1. Verifies the EIP-191 signature to prove wallet ownership
//  2. Checks if the wallet is already registered
//  3. Saves the user
func (s *registrationService) Register(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResponse, error) {
	recoveredAddr, err := auth.VerifyEIP191Signature(req.Message, req.Signature)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid signature")
	}

	walletAddress := auth.NormalizeAddress(recoveredAddr.Hex())

	exists, err := s.store.UserExists(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, apperrors.ConflictError(ErrUserAlreadyRegistered, "user already registered")
	}

	usr := user.New(walletAddress)
	if err = s.store.CreateUser(ctx, usr); err != nil {
		// lost a race with a concurrent registration of the same wallet
		if errors.Is(err, userstore.ErrUserExists) {
			return nil, apperrors.ConflictError(ErrUserAlreadyRegistered, "user already registered")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &user.RegisterResponse{
		WalletAddress: usr.WalletAddress,
		CreatedAt:     usr.CreatedAt,
	}, nil
}
