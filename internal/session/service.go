package session

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"backend-echomate/internal/shared/ident"
	"backend-echomate/internal/store"
)

// Login fabricates the same account every time; only the username and
// email vary with the input.
const (
	mockLoginID   = "1"
	mockFullName  = "John Doe"
	mockBio       = "Welcome to my EchoMate profile!"
	defaultAvatar = "https://images.pexels.com/photos/771742/pexels-photo-771742.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop"
)

var (
	sleepFn = time.Sleep
	nowFn   = time.Now
)

// Service holds at most one active user and mirrors it into durable
// storage. Storage failures are logged and swallowed; the worst outcome
// is that the user appears logged out after a restart.
type Service struct {
	kv    store.Store
	delay time.Duration

	mu   sync.RWMutex
	user *User
}

// NewService returns a session store backed by kv. The delay stands in
// for the network round trip a real identity provider would cost.
func NewService(kv store.Store, delay time.Duration) *Service {
	return &Service{kv: kv, delay: delay}
}

// Restore loads a previously persisted session, if any. A missing or
// corrupt record simply means no session.
func (s *Service) Restore(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, store.UserKey)
	if err != nil {
		log.Printf("session restore: %v", err)
		return
	}
	if !ok {
		return
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("session restore: discarding corrupt record: %v", err)
		return
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// Login simulates the remote round trip and then fabricates an account
// derived from the email. There is no credential verification; the call
// fails only when either input is empty, and then leaves state untouched.
func (s *Service) Login(ctx context.Context, email, password string) bool {
	sleepFn(s.delay)

	if email == "" || password == "" {
		return false
	}

	u := User{
		ID:             mockLoginID,
		Username:       localPart(email),
		Email:          email,
		FullName:       mockFullName,
		Bio:            mockBio,
		ProfilePicture: defaultAvatar,
		JoinedDate:     nowFn(),
		FollowersCount: 42,
		FollowingCount: 38,
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	s.persist(ctx, u)
	return true
}

// Signup always succeeds: there is no uniqueness check and no validation
// beyond defaulting. A known limitation of this core, not a bug.
func (s *Service) Signup(ctx context.Context, in SignupInput) bool {
	sleepFn(s.delay)

	username := in.Username
	if username == "" {
		username = localPart(in.Email)
	}
	picture := in.ProfilePicture
	if picture == "" {
		picture = defaultAvatar
	}

	u := User{
		ID:             ident.TimeID(),
		Username:       username,
		Email:          in.Email,
		FullName:       in.FullName,
		Bio:            in.Bio,
		ProfilePicture: picture,
		JoinedDate:     nowFn(),
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	s.persist(ctx, u)
	return true
}

// Logout clears the active session. Per-user post lists stay persisted so
// a later login for the same id picks them up again.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, store.UserKey); err != nil {
		log.Printf("session logout: %v", err)
	}
}

// UpdateProfile merges the provided fields into the active user and
// re-persists. Without an active session it does nothing.
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	if upd.Username != nil {
		s.user.Username = *upd.Username
	}
	if upd.Email != nil {
		s.user.Email = *upd.Email
	}
	if upd.FullName != nil {
		s.user.FullName = *upd.FullName
	}
	if upd.Bio != nil {
		s.user.Bio = *upd.Bio
	}
	if upd.ProfilePicture != nil {
		s.user.ProfilePicture = *upd.ProfilePicture
	}
	if upd.FollowersCount != nil {
		s.user.FollowersCount = *upd.FollowersCount
	}
	if upd.FollowingCount != nil {
		s.user.FollowingCount = *upd.FollowingCount
	}
	u := *s.user
	s.mu.Unlock()

	s.persist(ctx, u)
}

// Current returns a copy of the active user, if any.
func (s *Service) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Service) persist(ctx context.Context, u User) {
	raw, err := json.Marshal(u)
	if err != nil {
		log.Printf("session persist: %v", err)
		return
	}
	if err := s.kv.Set(ctx, store.UserKey, string(raw)); err != nil {
		log.Printf("session persist: %v", err)
	}
}

func localPart(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}
