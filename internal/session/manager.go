package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager issues signed tokens that reference a stored session. A token is
// only honored while its session exists, so logout takes effect at once.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

type claims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func (m *Manager) Issue(ctx context.Context, userID uint, role string) (string, *Session, error) {
	now := m.now()

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, sess, m.ttl); err != nil {
		return "", nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: sess.ID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		_ = m.store.Delete(ctx, sess.ID)
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, sess, nil
}

func (m *Manager) parse(token string) (*claims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || c.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return &c, nil
}

// Resolve validates the token and loads its session.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	c, err := m.parse(token)
	if err != nil {
		return nil, err
	}

	sess, err := m.store.Get(ctx, c.SessionID)
	if err != nil {
		return nil, err
	}

	if strconv.FormatUint(uint64(sess.UserID), 10) != c.Subject {
		return nil, ErrInvalidToken
	}
	return sess, nil
}

// Revoke removes the session behind token. Unknown sessions are not an
// error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	c, err := m.parse(token)
	if err != nil {
		return err
	}
	if err := m.store.Delete(ctx, c.SessionID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
