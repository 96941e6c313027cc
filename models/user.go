package models

type User struct {
	ID           string `bson:"_id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Name         string `bson:"name" json:"name"`
	Bio          string `bson:"bio" json:"bio"`
	ImageURL     string `bson:"imageUrl" json:"imageUrl"`
	CreatedAt    int64  `bson:"createdAt" json:"createdAt"`
}

// UserPreview is the minimal projection exposed inside post responses,
// so full profiles never leak through the feed.
type UserPreview struct {
	Username string `json:"username"`
	ImageURL string `json:"imageUrl"`
}

// Preview strips a User down to the fields post responses carry.
func (u *User) Preview() UserPreview {
	return UserPreview{Username: u.Username, ImageURL: u.ImageURL}
}
