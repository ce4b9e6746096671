// Package feed serves the browsed demo feed. It is a separate data path
// from the ledger: likes toggled here are session-ephemeral and never
// reach durable storage.
package feed

import (
	"sync"
	"time"

	"backend-echomate/internal/ledger"

	"github.com/google/uuid"
)

var nowFn = time.Now

type Service struct {
	mu    sync.Mutex
	posts []ledger.Post
}

func NewService() *Service {
	return &Service{posts: seedPosts(nowFn())}
}

// List returns the browsed feed, newest first.
func (s *Service) List() []ledger.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ledger.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// ToggleLike flips the viewer's like on one post and adjusts its count.
// The second return is false for an unknown id.
func (s *Service) ToggleLike(id string) (ledger.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if s.posts[i].IsLiked {
			s.posts[i].LikesCount--
		} else {
			s.posts[i].LikesCount++
		}
		s.posts[i].IsLiked = !s.posts[i].IsLiked
		return s.posts[i], true
	}
	return ledger.Post{}, false
}

func seedPosts(now time.Time) []ledger.Post {
	return []ledger.Post{
		{
			ID:                 uuid.NewString(),
			UserID:             "2",
			Username:           "sarah_dev",
			UserProfilePicture: "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Content:            "Just launched my new project! Excited to share it with the community. Built with a modern design and smooth animations.",
			ImageURL:           "https://images.pexels.com/photos/1181472/pexels-photo-1181472.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			Timestamp:          now.Add(-2 * time.Hour),
			LikesCount:         24,
			CommentsCount:      8,
		},
		{
			ID:                 uuid.NewString(),
			UserID:             "3",
			Username:           "mike_designer",
			UserProfilePicture: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Content:            "Beautiful sunset today! Sometimes you just need to step back and appreciate the simple things in life. Nature has a way of putting everything into perspective.",
			ImageURL:           "https://images.pexels.com/photos/1181677/pexels-photo-1181677.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			Timestamp:          now.Add(-4 * time.Hour),
			LikesCount:         42,
			CommentsCount:      12,
			IsLiked:            true,
		},
		{
			ID:                 uuid.NewString(),
			UserID:             "4",
			Username:           "alex_explorer",
			UserProfilePicture: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Content:            "Coffee and coding - the perfect combination for a productive morning! Working on some exciting features for our upcoming release.",
			Timestamp:          now.Add(-6 * time.Hour),
			LikesCount:         18,
			CommentsCount:      5,
		},
		{
			ID:                 uuid.NewString(),
			UserID:             "5",
			Username:           "emma_creative",
			UserProfilePicture: "https://images.pexels.com/photos/1181391/pexels-photo-1181391.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			Content:            "Thrilled to announce that our team just won the hackathon! Three days of intense coding, but totally worth it. Huge thanks to my amazing teammates!",
			ImageURL:           "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&fit=crop",
			Timestamp:          now.Add(-8 * time.Hour),
			LikesCount:         67,
			CommentsCount:      23,
			IsLiked:            true,
		},
	}
}
