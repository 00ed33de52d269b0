package session

import (
	"context"
	"sync"

	"github.com/go-faster/jx"

	"github.com/docnova/go-docnova-client/docnova/api"
	"github.com/docnova/go-docnova-client/docnova/i18n"
	"github.com/docnova/go-docnova-client/docnova/model"
)

// Session is a snapshot of the authenticated state. IsAuthenticated is true
// iff the token is non-empty.
type Session struct {
	User            jx.Raw
	Token           string
	IsAuthenticated bool
}

// Store owns the session. All mutation goes through its methods, reads get
// value snapshots. A login in flight does not block a second one, the last
// write wins.
type Store struct {
	auth    api.AuthService
	persist Persistence
	msg     *i18n.Localizer

	mu      sync.Mutex
	token   string
	user    jx.Raw
	lastErr string
}

func New(auth api.AuthService, persist Persistence, msg *i18n.Localizer) *Store {
	return &Store{auth: auth, persist: persist, msg: msg}
}

// Restore adopts a previously persisted session if both the token and a
// parseable user record are present. A corrupt user record is logged and
// cleared, the session stays unauthenticated and the application carries on.
func (s *Store) Restore() {
	rawToken, ok, err := s.persist.Get(KeyToken)
	if err != nil || !ok {
		return
	}
	token, err := decodeString(rawToken)
	if err != nil || token == "" {
		return
	}

	rawUser, ok, err := s.persist.Get(KeyUser)
	if err != nil || !ok {
		return
	}
	if !validUserRecord(rawUser) {
		logger.Warn("persisted user record does not parse, discarding")
		_ = s.persist.Delete(KeyUser)
		return
	}

	s.mu.Lock()
	s.token = token
	s.user = rawUser
	s.mu.Unlock()
	logger.Debug("session restored from persistence")
}

// Login authenticates and, on success, adopts and persists the session. On
// failure the session stays unauthenticated and Err carries the user-facing
// message.
func (s *Store) Login(ctx context.Context, creds model.Credentials) error {
	res, err := s.auth.Authenticate(ctx, creds)
	if err != nil {
		s.mu.Lock()
		s.lastErr = s.msg.MessageFor(err)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.token = res.Token
	s.user = res.User
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.persist.Set(KeyToken, encodeString(res.Token)); err != nil {
		logger.Warnf("can't persist token: %v", err)
	}
	if err := s.persist.Set(KeyUser, res.User); err != nil {
		logger.Warnf("can't persist user record: %v", err)
	}
	return nil
}

// Logout clears the session and its persisted copy. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.lastErr = ""
	s.mu.Unlock()

	_ = s.persist.Delete(KeyToken)
	_ = s.persist.Delete(KeyUser)
}

// Expire is the subscriber side of the transport's session-expired signal.
// The forced teardown shares the Logout path.
func (s *Store) Expire() {
	logger.Info("session expired, forcing logout")
	s.Logout()
	s.mu.Lock()
	s.lastErr = s.msg.Category(api.CategorySessionExpired)
	s.mu.Unlock()
}

func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.token != "",
	}
}

// Err is the message recorded by the last failed login or forced expiry.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// validUserRecord accepts any fully parseable JSON object. The record is
// opaque, only its integrity is checked.
func validUserRecord(raw jx.Raw) bool {
	d := jx.DecodeBytes(raw)
	if d.Next() != jx.Object {
		return false
	}
	return d.Skip() == nil
}

func decodeString(raw jx.Raw) (string, error) {
	return jx.DecodeBytes(raw).Str()
}

func encodeString(v string) jx.Raw {
	e := &jx.Encoder{}
	e.Str(v)
	return e.Bytes()
}
