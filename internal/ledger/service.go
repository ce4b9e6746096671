package ledger

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"backend-echomate/internal/session"
	"backend-echomate/internal/shared/ident"
	"backend-echomate/internal/store"
)

// MaxContentLength bounds post bodies, matching the composer's limit.
const MaxContentLength = 280

var nowFn = time.Now

// Sessions is the slice of the session store the ledger needs: who, if
// anyone, is active right now.
type Sessions interface {
	Current() (session.User, bool)
}

// Service is the append-only list of posts authored by the active user,
// persisted per user id. It is inert without a session: mutating calls
// report false and change nothing.
type Service struct {
	kv       store.Store
	sessions Sessions

	mu     sync.Mutex
	userID string
	posts  []Post
}

func NewService(kv store.Store, sessions Sessions) *Service {
	return &Service{kv: kv, sessions: sessions}
}

// Restore primes the cache for a session restored at startup. Only here is
// the bootstrap key consulted: it covers records persisted before a keyed
// list existed for the restored user.
func (s *Service) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.sessions.Current()
	if !ok {
		return
	}
	s.userID = user.ID

	raw, found, err := s.kv.Get(ctx, store.PostsKey(user.ID))
	if err != nil {
		log.Printf("ledger restore: %v", err)
		return
	}
	if !found {
		raw, found, err = s.kv.Get(ctx, store.LastPostsKey)
		if err != nil {
			log.Printf("ledger restore: %v", err)
			return
		}
	}
	if !found {
		return
	}
	s.posts = decodePosts(raw)
}

// AddPost prepends a post stamped with the active user's identity. The
// second return is false when no user is active.
func (s *Service) AddPost(ctx context.Context, content, imageURL string) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.syncLocked(ctx)
	if !ok {
		return Post{}, false
	}

	p := Post{
		ID:                 ident.TimeID(),
		UserID:             user.ID,
		Username:           user.Username,
		UserProfilePicture: user.ProfilePicture,
		Content:            content,
		ImageURL:           imageURL,
		Timestamp:          nowFn(),
	}

	s.posts = append([]Post{p}, s.posts...)
	s.persistLocked(ctx, user.ID)
	return p, true
}

// List returns the active user's posts, newest first. Empty when no user
// is active.
func (s *Service) List(ctx context.Context) []Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.syncLocked(ctx); !ok {
		return []Post{}
	}
	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// syncLocked aligns the cached list with the active user, reloading from
// storage when the user changed since the last call.
func (s *Service) syncLocked(ctx context.Context) (session.User, bool) {
	user, ok := s.sessions.Current()
	if !ok {
		s.userID = ""
		s.posts = nil
		return session.User{}, false
	}
	if user.ID == s.userID {
		return user, true
	}

	s.userID = user.ID
	s.posts = s.loadLocked(ctx, user.ID)
	return user, true
}

func (s *Service) loadLocked(ctx context.Context, userID string) []Post {
	raw, ok, err := s.kv.Get(ctx, store.PostsKey(userID))
	if err != nil {
		log.Printf("ledger load: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	return decodePosts(raw)
}

func decodePosts(raw string) []Post {
	var posts []Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		log.Printf("ledger load: discarding corrupt list: %v", err)
		return nil
	}
	return posts
}

func (s *Service) persistLocked(ctx context.Context, userID string) {
	raw, err := json.Marshal(s.posts)
	if err != nil {
		log.Printf("ledger persist: %v", err)
		return
	}
	if err := s.kv.Set(ctx, store.PostsKey(userID), string(raw)); err != nil {
		log.Printf("ledger persist: %v", err)
	}
	if err := s.kv.Set(ctx, store.LastPostsKey, string(raw)); err != nil {
		log.Printf("ledger persist: %v", err)
	}
}
