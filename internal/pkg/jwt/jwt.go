package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const revocationGrace = 24 * time.Hour

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	tokenAuth     *jwtauth.JWTAuth
	revokedTokens map[string]int64 // token -> unix time after which the entry can be dropped
	mu            sync.RWMutex
	now           func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth:     jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens: make(map[string]int64),
		now:           time.Now,
	}
}

// RevokeToken marks the token as unusable until it expires. Entries for
// expired tokens are pruned on each call.
func (j *JWTService) RevokeToken(token string) {
	now := j.now()
	until := now.Add(revocationGrace).Unix()
	if decoded, err := j.tokenAuth.Decode(token); err == nil && !decoded.Expiration().IsZero() {
		until = decoded.Expiration().Unix()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	for t, exp := range j.revokedTokens {
		if exp < now.Unix() {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = until
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
