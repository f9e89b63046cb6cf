package model

// User mirrors the 'usuarios' table. The password is stored as a bcrypt
// hash and never leaves the repository/auth layers.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"rol"`
}
