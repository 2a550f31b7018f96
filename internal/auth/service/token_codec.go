package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/userauth/internal/auth/domain"
	apperrors "github.com/allisson/userauth/internal/errors"
)

// jwtTokenCodec implements TokenCodec using HMAC-signed JWTs.
//
// The codec is pure-functional given its key, algorithm, and the wall clock:
// it holds no mutable state and is safe for concurrent use.
type jwtTokenCodec struct {
	secretKey  []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

// NewJWTTokenCodec creates a TokenCodec signing with the given secret key and
// algorithm name (an HMAC variant such as "HS256"). The configuration is
// captured once at construction; in-flight tokens assume it never changes
// during the process lifetime.
func NewJWTTokenCodec(secretKey []byte, algorithm string, defaultTTL time.Duration) (TokenCodec, error) {
	if len(secretKey) == 0 {
		return nil, apperrors.New("token codec requires a non-empty secret key")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s (only HMAC variants are supported)", algorithm)
	}

	if defaultTTL <= 0 {
		return nil, apperrors.New("token codec requires a positive default ttl")
	}

	return &jwtTokenCodec{
		secretKey:  secretKey,
		method:     method,
		defaultTTL: defaultTTL,
	}, nil
}

// Encode signs the claims with the codec's default lifetime.
func (c *jwtTokenCodec) Encode(claims map[string]any) (string, error) {
	return c.EncodeWithTTL(claims, c.defaultTTL)
}

// EncodeWithTTL stamps issued-at and expiry onto the claims and signs them.
// The subject claim must be present and string-valued at encoding time.
func (c *jwtTokenCodec) EncodeWithTTL(claims map[string]any, ttl time.Duration) (string, error) {
	sub, ok := claims[authDomain.ClaimSubject]
	if !ok {
		return "", authDomain.ErrMissingSubject
	}
	if _, ok := sub.(string); !ok {
		return "", authDomain.ErrMissingSubject
	}

	// Timestamps use UTC wall-clock so expiry comparisons are timezone-independent.
	now := time.Now().UTC()

	tokenClaims := jwt.MapClaims{}
	for name, value := range claims {
		tokenClaims[name] = value
	}
	tokenClaims[authDomain.ClaimIssuedAt] = jwt.NewNumericDate(now)
	tokenClaims[authDomain.ClaimExpiry] = jwt.NewNumericDate(now.Add(ttl))

	tokenString, err := jwt.NewWithClaims(c.method, tokenClaims).SignedString(c.secretKey)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return tokenString, nil
}

// Decode verifies the signature, algorithm, and expiry of a token.
//
// Expiry is checked here against the same UTC wall clock used at issuance, in
// addition to the library's own validation, so "expired" and "malformed" are
// indistinguishable to callers: both are simply a decode failure.
func (c *jwtTokenCodec) Decode(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) {
			return c.secretKey, nil
		},
		jwt.WithValidMethods([]string{c.method.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if expiry != nil && expiry.Time.Before(time.Now().UTC()) {
		return nil, jwt.ErrTokenExpired
	}

	return claims, nil
}
