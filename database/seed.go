package database

import (
	"cafe_directory/model"
	"log"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SeedData inserts a few starter listings so a fresh deployment has something
// to browse. Existing rows are never touched.
func SeedData(db *gorm.DB) {
	cafes := []model.Cafe{
		{
			Name:         "Science Gallery London",
			MapUrl:       "https://g.page/scigallerylon",
			ImgUrl:       "https://atlondonbridge.com/wp-content/uploads/2019/02/Pano_9758_9761-Edit-190918_LTS_Science_Gallery-Medium-Crop-V2.jpg",
			Location:     "London Bridge",
			HasSockets:   true,
			HasToilet:    true,
			HasWifi:      true,
			CanTakeCalls: true,
			Seats:        50,
			CoffeePrice:  2.40,
		},
		{
			Name:         "Ace Hotel Shoreditch",
			MapUrl:       "https://goo.gl/maps/EocLwDXYJ1Ha6pX97",
			ImgUrl:       "https://cdn.vox-cdn.com/thumbor/OhPS-LFLy-v2zXdWCScXBUHPZGw=/0x0:4000x2667/1200x800/filters:focal(1680x1014:2320x1654)/cdn.vox-cdn.com/uploads/chorus_image/image/54671265/5H2A0085.0.jpg",
			Location:     "Shoreditch",
			HasSockets:   true,
			HasToilet:    true,
			HasWifi:      false,
			CanTakeCalls: true,
			Seats:        40,
			CoffeePrice:  3.25,
		},
		{
			Name:         "Goswell Road Coffee",
			MapUrl:       "https://goo.gl/maps/pPvSiiVEQLJLHBLc7",
			ImgUrl:       "https://lh3.googleusercontent.com/p/AF1QipNHI4SNMycBuRYRAl2ApfsZVv5p5ZSQBULHbeWC=s1600-w400",
			Location:     "Clerkenwell",
			HasSockets:   false,
			HasToilet:    true,
			HasWifi:      true,
			CanTakeCalls: false,
			Seats:        25,
			CoffeePrice:  2.10,
		},
	}

	for _, cafe := range cafes {
		cafe.Slug = slug.Make(cafe.Name)
		if err := db.Where(model.Cafe{Name: cafe.Name}).FirstOrCreate(&cafe).Error; err != nil {
			log.Println("failed to seed data for cafe:", cafe.Name, "error:", err)
		}
	}
}
