package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"shipping/internal/handlers/rest/response"
	"shipping/internal/pkg/identity"
	"shipping/pkg/logger"
)

const bearerPrefix = "Bearer "

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrRevokedToken = errors.New("token revoked")
)

// Claims выпускает внешний каталог учётных записей.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// LoadPublicKey читает PEM с публичным RSA-ключом каталога учётных записей.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return key, nil
}

func Middleware(log handlerLogger, publicKey *rsa.PublicKey, revoked RevocationList) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	keyFunc := func(*jwt.Token) (any, error) {
		return publicKey, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				writeUnauthorized(w, log, ErrMissingToken)
				return
			}

			var claims Claims
			_, err := parser.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), &claims, keyFunc)
			if err != nil || claims.UserID <= 0 {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("rejected bearer token")
				writeUnauthorized(w, log, ErrInvalidToken)
				return
			}

			if claims.ID != "" {
				isRevoked, err := revoked.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					response.Error(w, log, http.StatusInternalServerError, fmt.Errorf("check token revocation: %w", err))
					return
				}
				if isRevoked {
					writeUnauthorized(w, log, ErrRevokedToken)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(identity.WithUserID(r.Context(), claims.UserID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, log handlerLogger, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="shipping"`)
	response.Error(w, log, http.StatusUnauthorized, err)
}
