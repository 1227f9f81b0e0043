package model

// Post is a blog entry. The id is assigned by the store on insert and
// immutable afterward.
type Post struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title string `json:"title" gorm:"size:255;not null"`
	Body  string `json:"body" gorm:"type:text;not null"`
}
