package domain

// User is an account record. No route reads or writes users yet;
// the store keeps them so the data model stays complete.
type User struct {
	ID       int
	Username string
	Password string
}

// UserDraft is a user that has not been stored yet.
type UserDraft struct {
	Username string
	Password string
}

// WithID returns the stored form of the draft.
func (d UserDraft) WithID(id int) User {
	return User{ID: id, Username: d.Username, Password: d.Password}
}
