package models

// Post is the stored aggregate. Comments are append-only and likes
// hold each username at most once.
type Post struct {
	ID        string    `bson:"_id" json:"id"`
	Author    string    `bson:"author" json:"author"`
	ImageURL  string    `bson:"imageUrl" json:"imageUrl"`
	Caption   string    `bson:"caption" json:"caption"`
	Hashtags  []string  `bson:"hashtags" json:"hashtags"`
	UserTags  []string  `bson:"userTags" json:"userTags"`
	Comments  []Comment `bson:"comments" json:"comments"`
	Likes     []string  `bson:"likes" json:"likes"`
	CreatedAt int64     `bson:"createdAt" json:"createdAt"`
}

// Comment lives inside its Post document and is immutable once created.
type Comment struct {
	ID      string `bson:"id" json:"id"`
	Author  string `bson:"author" json:"author"`
	Comment string `bson:"comment" json:"comment"`
}

// IsLikedBy reports whether username already appears in Likes.
func (p *Post) IsLikedBy(username string) bool {
	for _, u := range p.Likes {
		if u == username {
			return true
		}
	}
	return false
}
