package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/medico/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sourceClaims  = "claims"
	sourceProfile = "profile"
)

var (
	errNotSelfDescribing = errors.New("token does not carry the identity")
	errTokenExpired      = errors.New("token already expired")
)

var (
	subjectClaims = []string{"user_id", "sub"}
	roleClaims    = []string{"rol_id", "role_id"}
)

// identityFromClaims reads subject, role and expiry from the token payload.
// The signature is not checked: the server stays the authority, this only
// saves a round trip.
func identityFromClaims(token string, now time.Time) (*models.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotSelfDescribing, err)
	}

	subject, ok := stringClaim(claims, subjectClaims...)
	if !ok {
		return nil, fmt.Errorf("%w: no subject", errNotSelfDescribing)
	}
	role, ok := intClaim(claims, roleClaims...)
	if !ok {
		return nil, fmt.Errorf("%w: no role", errNotSelfDescribing)
	}

	id := &models.Identity{SubjectID: subject, RoleID: role, Source: sourceClaims}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNotSelfDescribing, err)
	}
	if exp != nil {
		if !exp.After(now) {
			return nil, fmt.Errorf("%w at %s", errTokenExpired, exp.UTC().Format(time.RFC3339))
		}
		id.ExpiresAt = exp.Time
	}

	return id, nil
}

func stringClaim(claims jwt.MapClaims, keys ...string) (string, bool) {
	for _, k := range keys {
		switch v := claims[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s, true
			}
		case float64:
			if v == math.Trunc(v) {
				return strconv.FormatInt(int64(v), 10), true
			}
		case json.Number:
			return v.String(), true
		}
	}
	return "", false
}

func intClaim(claims jwt.MapClaims, keys ...string) (int, bool) {
	for _, k := range keys {
		switch v := claims[k].(type) {
		case float64:
			if v == math.Trunc(v) {
				return int(v), true
			}
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return int(n), true
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
