package user

import "time"

// User is a registered card holder, keyed by the wallet that signed up.
type User struct {
	WalletAddress string
	CreatedAt     time.Time
}

// New creates a User for the given checksummed wallet address.
func New(walletAddress string) *User {
	return &User{
		WalletAddress: walletAddress,
		CreatedAt:     time.Now().UTC(),
	}
}

// RegisterRequest represents a registration request signed with EIP-191 (personal_sign).
// Signature and message may also be sent through the X-Signature and X-Message headers.
type RegisterRequest struct {
	Signature string `json:"signature,omitzero"`
	Message   string `json:"message,omitzero"`
}

// RegisterResponse represents a registration response
type RegisterResponse struct {
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}
