package session

import "time"

// User is the single account a session can hold. The JSON shape doubles as
// the persisted record format, so field names must stay stable.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	JoinedDate     time.Time `json:"joinedDate"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}

// ProfileUpdate carries a partial edit; nil fields are left untouched.
// The id is not editable.
type ProfileUpdate struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	FullName       *string `json:"fullName"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
	FollowersCount *int    `json:"followersCount"`
	FollowingCount *int    `json:"followingCount"`
}
