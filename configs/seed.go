package configs

import (
	"log"

	"foodway-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first operator account from the environment.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads a starter catalog so a fresh install has something to
// browse. Skipped once any restaurant exists.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:        "Mama's Kitchen",
			Description: "Home-style curries and rice plates",
			Address:     "12 Jalan Besar",
			Picture:     "/images/restaurants/mamas-kitchen.jpg",
			Foods: []entity.Food{
				{Name: "Chicken Rice", Description: "Poached chicken with fragrant rice", Price: 850, Picture: "/images/foods/chicken-rice.jpg", Category: "Rice", PrepMinutes: 15, Rating: 4.6},
				{Name: "Veggie Curry", Description: "Mixed vegetable curry with roti", Price: 700, Picture: "/images/foods/veggie-curry.jpg", Vegetarian: true, Category: "Curry", PrepMinutes: 12, Rating: 4.3},
				{Name: "Teh Tarik", Description: "Pulled milk tea", Price: 250, Picture: "/images/foods/teh-tarik.jpg", Vegetarian: true, Category: "Drinks", PrepMinutes: 5, Rating: 4.8},
			},
		},
		{
			Name:        "Pizza Corner",
			Description: "Wood-fired pizzas and pasta",
			Address:     "3 Orchard Lane",
			Picture:     "/images/restaurants/pizza-corner.jpg",
			Foods: []entity.Food{
				{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 1200, Picture: "/images/foods/margherita.jpg", Vegetarian: true, Category: "Pizza", PrepMinutes: 20, Rating: 4.5},
				{Name: "Pepperoni", Description: "Classic pepperoni and cheese", Price: 1400, Picture: "/images/foods/pepperoni.jpg", Category: "Pizza", PrepMinutes: 20, Rating: 4.7},
				{Name: "Carbonara", Description: "Creamy bacon pasta", Price: 1100, Picture: "/images/foods/carbonara.jpg", Category: "Pasta", PrepMinutes: 18, Rating: 4.2},
			},
		},
	}

	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
