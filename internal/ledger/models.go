package ledger

import "time"

// Post is one piece of content authored by the active user. The author
// fields are denormalized copies taken at creation time and never
// re-synced when the profile changes later.
type Post struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Username           string    `json:"username"`
	UserProfilePicture string    `json:"userProfilePicture"`
	Content            string    `json:"content"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
	LikesCount         int       `json:"likesCount"`
	CommentsCount      int       `json:"commentsCount"`
	IsLiked            bool      `json:"isLiked"`
}
