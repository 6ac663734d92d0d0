package model

type User struct {
	DTO
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

type Users []User

type RegisterUserInput struct {
	Email    string `validate:"required,email" json:"email" form:"email"`
	Password string `validate:"required" json:"password" form:"password"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email" form:"email"`
	Password string `validate:"required" json:"password" form:"password"`
}
