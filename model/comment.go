package model

type Comment struct {
	DTO
	CafeId uint   `gorm:"not null;index" json:"cafeId"`
	UserId uint   `gorm:"not null;index" json:"userId"`
	Text   string `gorm:"not null" validate:"required" json:"text"`
}

type Comments []Comment

type CreateCommentInput struct {
	Text string `validate:"required" json:"text" form:"text"`
}

// CommentWithAuthor is the row shape of the explicit comments/users join used
// on the cafe detail page.
type CommentWithAuthor struct {
	ID          uint   `json:"id"`
	CafeId      uint   `json:"cafeId"`
	UserId      uint   `json:"userId"`
	Text        string `json:"text"`
	AuthorEmail string `json:"authorEmail"`
}
