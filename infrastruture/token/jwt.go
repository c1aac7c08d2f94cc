package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrSigningMethod  = errors.New("unexpected signing method")
	ErrIssuerMismatch = errors.New("token issued by another issuer")
	ErrEmptySecret    = errors.New("empty signing secret")
	ErrNonPositiveTTL = errors.New("token lifetime must be positive")
)

var _ i.Tokenizer = &JwtService{}

// JwtService signs and verifies HS256 bearer tokens for the maze API.
// Every token it issues carries its issuer, and Decode rejects tokens from any
// other issuer.
type JwtService struct {
	secretKey []byte
	issuer    string
}

// NewJwtService creates a JwtService. The secret must not be empty.
func NewJwtService(secretKey, issuer string) (*JwtService, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}, nil
}

// Generate creates a token holding claims plus the "iss", "iat" and "exp" claims.
// Caller supplied values for those three are overwritten.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["iss"] = s.issuer
	jwtClaims["iat"] = now.Unix()
	jwtClaims["exp"] = now.Add(expTime).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString(s.secretKey)
}

// Issue creates a token for subject that expires after ttl.
func (s *JwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrNonPositiveTTL
	}
	return s.Generate(map[string]interface{}{"sub": subject}, ttl)
}

// Decode parses and validates a token, returning its claims.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.signingKey)
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Inner == ErrSigningMethod {
			return nil, ErrSigningMethod
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrIssuerMismatch
	}

	return claims, nil
}

func (s *JwtService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrSigningMethod
	}
	return s.secretKey, nil
}
