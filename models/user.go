package models

// User is a registered account. Movies holds the ids of the movies the user
// added to their watchlist, in insertion order.
type User struct {
	ID       string   `bson:"_id" json:"id"`
	Email    string   `bson:"email" json:"email"`
	Password string   `bson:"password" json:"-"` // bcrypt hash, never the plaintext
	Movies   []string `bson:"movies" json:"movies"`
}
