package utils

import (
	"clinic-portal-service/internal/pkg/constvars"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/nacl/secretbox"
)

const sealNonceSize = 24

var (
	errSealedTokenTooShort = errors.New("sealed token is too short")
	errSealedTokenInvalid  = errors.New("sealed token cannot be opened")
	errSessionClaimMissing = errors.New("session_id claim missing")
)

// ParseSessionJWT verifies a session token issued by this service and
// returns the session id it carries.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims[constvars.ClaimSessionID].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", errSessionClaimMissing
}

// DecodeClinicToken reads the claims of a token issued by the clinic
// backend. The signature is not verified because the backend owns the key.
func DecodeClinicToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// IsTokenExpired reports whether the clinic token is past its exp claim.
// Tokens that cannot be decoded or carry no exp are treated as expired.
func IsTokenExpired(tokenString string, now time.Time) bool {
	claims, err := DecodeClinicToken(tokenString)
	if err != nil {
		return true
	}

	exp, ok := numericClaim(claims[constvars.ClaimExpiration])
	if !ok {
		return true
	}
	return exp <= now.Unix()
}

// TokenExpiresAt returns the exp claim as a time, or the zero time.
func TokenExpiresAt(tokenString string) time.Time {
	claims, err := DecodeClinicToken(tokenString)
	if err != nil {
		return time.Time{}
	}
	exp, ok := numericClaim(claims[constvars.ClaimExpiration])
	if !ok {
		return time.Time{}
	}
	return time.Unix(exp, 0)
}

// ExtractRoleClaim looks the role up under every key the backend is known
// to use and normalizes its casing. An unknown role yields "".
func ExtractRoleClaim(claims jwt.MapClaims) string {
	raw := ClaimString(claims, constvars.ClaimRole, constvars.ClaimRoleCapitalized, constvars.ClaimRoleWSFederation)
	return NormalizeRole(raw)
}

func NormalizeRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case strings.ToLower(constvars.RolePatient):
		return constvars.RolePatient
	case strings.ToLower(constvars.RoleDoctor):
		return constvars.RoleDoctor
	case strings.ToLower(constvars.RoleStaff):
		return constvars.RoleStaff
	case strings.ToLower(constvars.RoleManager):
		return constvars.RoleManager
	case strings.ToLower(constvars.RoleAdmin):
		return constvars.RoleAdmin
	default:
		return ""
	}
}

// ClaimString returns the first non-empty claim among keys. Array claims
// yield their first string element.
func ClaimString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		switch value := claims[key].(type) {
		case string:
			if value != "" {
				return value
			}
		case float64:
			return strconv.FormatInt(int64(value), 10)
		case []interface{}:
			for _, item := range value {
				if s, ok := item.(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}

func numericClaim(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func DeriveSealKey(secret string) *[32]byte {
	key := sha256.Sum256([]byte(secret))
	return &key
}

// SealToken encrypts a clinic token before it is written to redis.
func SealToken(plain string, key *[32]byte) (string, error) {
	var nonce [sealNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plain), &nonce, key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func OpenToken(sealed string, key *[32]byte) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}
	if len(raw) < sealNonceSize+secretbox.Overhead {
		return "", errSealedTokenTooShort
	}

	var nonce [sealNonceSize]byte
	copy(nonce[:], raw[:sealNonceSize])
	plain, ok := secretbox.Open(nil, raw[sealNonceSize:], &nonce, key)
	if !ok {
		return "", errSealedTokenInvalid
	}
	return string(plain), nil
}
