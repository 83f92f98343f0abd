package auth

import (
	"net/http"
	"strings"
	"time"

	apperrors "github.com/chainsafe/card-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/card-bridge/pkg/app/http"
)

// Signature headers carried by wallet-authenticated requests.
const (
	HeaderSignature = "X-Signature"
	HeaderMessage   = "X-Message"
)

// RequireWalletSignature authenticates requests with an EIP-191 signature over
// X-Message. The message must carry a timestamp no older than maxAge; the
// recovered, checksummed address is stored in the request context.
func RequireWalletSignature(maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get(HeaderSignature)
			message := r.Header.Get(HeaderMessage)
			if signature == "" || message == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "signature and message required"))
				return
			}

			signedAt, err := SignedAt(message)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "signed message must include a timestamp"))
				return
			}
			if age := time.Since(signedAt); age > maxAge || age < -maxAge {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "signed message expired"))
				return
			}

			addr, err := VerifyEIP191Signature(message, signature)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid signature"))
				return
			}

			ctx := WithWalletAddress(r.Context(), NormalizeAddress(addr.Hex()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireBearer authenticates requests with an HS256 bearer token.
func RequireBearer(v *JWTValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "bearer token required"))
				return
			}

			claims, err := v.ValidateToken(token)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject)))
		})
	}
}
