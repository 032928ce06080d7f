// Package services contains the application services behind the CLI.
// This file holds the authentication service: the login state machine with
// its role gate, logout, and identity lookups.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/medico/internal/client/client"
	"github.com/dmitrijs2005/medico/internal/client/config"
	"github.com/dmitrijs2005/medico/internal/client/models"
	"github.com/dmitrijs2005/medico/internal/logging"
)

// AuthService drives the session through its states:
// anonymous, authenticating, then authenticated or back to anonymous.
//
// Contract:
//   - Login: exchange credentials for a token, resolve who it belongs to and
//     enforce the clinician role. On return the session is either fully
//     authenticated or fully anonymous, except that rejected credentials leave
//     an existing session as it was.
//   - Logout: drop the session; safe to call repeatedly.
//   - IsAuthenticated: session populated with the clinician role.
//   - Identity: snapshot of the current subject, role and expiry.
//   - Profile: the doctor's profile, read with the current session.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	Logout(ctx context.Context)
	IsAuthenticated() bool
	Identity() (models.Identity, bool)
	Profile(ctx context.Context) (*models.Profile, error)
}

type authService struct {
	client   client.Client
	session  *client.Session
	roleID   int
	strategy string
	log      logging.Logger
	now      func() time.Time
}

// NewAuthService binds the service to the API client and the session that
// client authorizes with. An empty strategy means config.IdentityAuto.
func NewAuthService(c client.Client, session *client.Session, roleID int, strategy string, log logging.Logger) AuthService {
	if strategy == "" {
		strategy = config.IdentityAuto
	}
	if log == nil {
		log = logging.Discard()
	}
	return &authService{
		client:   c,
		session:  session,
		roleID:   roleID,
		strategy: strategy,
		log:      log,
		now:      time.Now,
	}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.session.Clear()
		}
		a.log.Info(ctx, "login failed", "user", username, "kind", client.KindOf(err).String())
		return nil, err
	}

	id, err := a.resolveIdentity(ctx, token)
	if err != nil {
		a.session.Clear()
		a.log.Info(ctx, "identity resolution failed", "strategy", a.strategy, "err", err)
		return nil, err
	}

	if id.RoleID != a.roleID {
		a.session.Clear()
		a.log.Info(ctx, "login rejected by role gate", "subject", id.SubjectID, "role", id.RoleID)
		return nil, fmt.Errorf("%w: role %d", client.ErrWrongRole, id.RoleID)
	}

	if err := a.session.Set(token, id.SubjectID, id.RoleID, id.ExpiresAt); err != nil {
		a.session.Clear()
		return nil, fmt.Errorf("%w: %v", client.ErrInvalidToken, err)
	}

	a.log.Info(ctx, "logged in", "subject", id.SubjectID, "source", id.Source)
	return id, nil
}

func (a *authService) resolveIdentity(ctx context.Context, token string) (*models.Identity, error) {
	switch a.strategy {
	case config.IdentityClaims:
		id, err := identityFromClaims(token, a.now())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", client.ErrInvalidToken, err)
		}
		return id, nil

	case config.IdentityProfile:
		return a.identityFromProfile(ctx, token)

	default:
		id, err := identityFromClaims(token, a.now())
		if err == nil {
			return id, nil
		}
		if errors.Is(err, errTokenExpired) {
			return nil, fmt.Errorf("%w: %v", client.ErrInvalidToken, err)
		}
		a.log.Debug(ctx, "token not self-describing, asking the profile", "reason", err)
		return a.identityFromProfile(ctx, token)
	}
}

// identityFromProfile reads the profile with the freshly issued token, which
// is not in the session yet.
func (a *authService) identityFromProfile(ctx context.Context, token string) (*models.Identity, error) {
	p, err := a.client.Profile(client.WithAccessToken(ctx, token))
	if err != nil {
		return nil, err
	}
	if p.UserID == "" || p.RoleID == nil {
		return nil, fmt.Errorf("%w: profile lacks user_id or rol_id", client.ErrMalformedResponse)
	}
	return &models.Identity{
		SubjectID: string(p.UserID),
		RoleID:    *p.RoleID,
		Source:    sourceProfile,
	}, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Clear()
	a.log.Info(ctx, "logged out")
}

func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated(a.roleID)
}

func (a *authService) Identity() (models.Identity, bool) {
	st := a.session.Snapshot()
	if st.Empty() {
		return models.Identity{}, false
	}
	return models.Identity{SubjectID: st.SubjectID, RoleID: st.RoleID, ExpiresAt: st.ExpiresAt}, true
}

func (a *authService) Profile(ctx context.Context) (*models.Profile, error) {
	return a.client.Profile(ctx)
}
