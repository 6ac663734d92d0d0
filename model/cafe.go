package model

type Cafe struct {
	DTO
	Slug         string  `gorm:"uniqueIndex" json:"slug"`
	Name         string  `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	MapUrl       string  `gorm:"not null" validate:"required" json:"mapUrl"`
	ImgUrl       string  `gorm:"not null" validate:"required" json:"imgUrl"`
	Location     string  `gorm:"not null" validate:"required" json:"location"`
	HasSockets   bool    `gorm:"not null" json:"hasSockets"`
	HasToilet    bool    `gorm:"not null" json:"hasToilet"`
	HasWifi      bool    `gorm:"not null" json:"hasWifi"`
	CanTakeCalls bool    `gorm:"not null" json:"canTakeCalls"`
	Seats        int     `gorm:"not null" json:"seats"`
	CoffeePrice  float64 `gorm:"not null" json:"coffeePrice"`
}

type Cafes []Cafe

// CreateCafeRawInput carries the form values as submitted; the boolean and
// numeric fields stay strings until validate.CreateCafe coerces them.
type CreateCafeRawInput struct {
	Name         string `json:"cafeName" form:"cafeName" validate:"required"`
	MapUrl       string `json:"mapUrl" form:"mapUrl" validate:"required"`
	ImgUrl       string `json:"imgUrl" form:"imgUrl" validate:"required"`
	Location     string `json:"location" form:"location" validate:"required"`
	HasSockets   string `json:"hasSockets" form:"hasSockets" validate:"required"`
	HasToilet    string `json:"hasToilet" form:"hasToilet" validate:"required"`
	HasWifi      string `json:"hasWifi" form:"hasWifi" validate:"required"`
	CanTakeCalls string `json:"canTakeCalls" form:"canTakeCalls" validate:"required"`
	Seats        string `json:"seats" form:"seats" validate:"required"`
	CoffeePrice  string `json:"coffeePrice" form:"coffeePrice" validate:"required"`
}

type CreateCafeInput struct {
	Name         string
	MapUrl       string
	ImgUrl       string
	Location     string
	HasSockets   bool
	HasToilet    bool
	HasWifi      bool
	CanTakeCalls bool
	Seats        int
	CoffeePrice  float64
}
