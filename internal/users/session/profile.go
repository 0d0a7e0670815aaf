package session

// UserProfile is the single account profile attached to the active
// session. The password, when set, is kept verbatim in memory; there is
// no credential verification anywhere in the login flow, which is a
// known and accepted property of the mock login.
type UserProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"-"`
	Bio            string   `json:"bio"`
	FavoriteGenres []string `json:"favoriteGenres"`
	Role           string   `json:"role"`
	AvatarURL      string   `json:"avatarUrl"`
}

// Profile defaults applied at login when the form leaves them blank.
const (
	DefaultAdminName = "System Administrator"
	DefaultUserName  = "Book Lover"
	DefaultBio       = "No bio provided yet."
	DefaultAvatarURL = "https://picsum.photos/seed/user/200/200"
)

// Global field names for validation
const (
	FieldEmail = "email"
	FieldName  = "name"
)
