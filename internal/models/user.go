package models

// User is a registered account. The table exists for parity with the site's
// schema; no route currently exercises it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser is the payload for creating a user record.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
