//go:build ignore

// This script issues a bearer token for POST /bridge/transfer.
// Run with: go run scripts/generate-jwt.go -sub operator
//
// The secret is read from the same env var the api server uses.

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/card-bridge/pkg/auth"
)

func main() {
	secretEnv := flag.String("secret-env", "CARD_BRIDGE_JWT_SECRET", "env var holding the HS256 secret")
	issuer := flag.String("iss", "", "issuer, must match auth.jwt_issuer")
	subject := flag.String("sub", "operator", "token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	v, err := auth.NewJWTValidator([]byte(os.Getenv(*secretEnv)), *issuer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (is %s set?)\n", err, *secretEnv)
		os.Exit(1)
	}

	token, err := v.Issue(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "\nUse with: curl -H \"Authorization: Bearer <token>\" ...\n")
}
