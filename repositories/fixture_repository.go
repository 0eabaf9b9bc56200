package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/models"
)

// FixtureRepository serves the built-in demo catalog.
type FixtureRepository struct{}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{}
}

func (r *FixtureRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	return []models.Product{
		fixture("1", "Shoes", 99, "/shoes.jpg", "Clothing",
			"Comfortable running shoes perfect for daily exercise and long-distance runs. Features breathable mesh upper and cushioned sole for maximum comfort.", 3.8),
		fixture("2", "Headphones", 99, "/headphones.jpg", "Electronics",
			"High-quality wireless headphones with noise cancellation technology. Perfect for music lovers and professionals.", 4.5),
		fixture("3", "Backpack", 129, "/backpack.jpg", "Home",
			"Durable and spacious backpack ideal for work, school, or travel. Multiple compartments for organized storage.", 3.9),
		fixture("4", "Smartwatch", 249, "/smartwatch.jpg", "Electronics",
			"Advanced smartwatch with fitness tracking, heart rate monitoring, and smartphone connectivity.", 4.4),
		fixture("5", "Sunglasses", 149, "/sunglasses.jpg", "Clothing",
			"Stylish sunglasses with UV protection. Perfect for outdoor activities and fashion-forward individuals.", 4.5),
		fixture("6", "Camera", 499, "/camera.jpg", "Electronics",
			"Professional-grade digital camera with high-resolution sensor and advanced features for photography enthusiasts.", 3.8),
		fixture("7", "T-shirt", 29, "/tshirt.jpg", "Clothing",
			"Comfortable cotton t-shirt available in various colors. Perfect for casual wear and everyday comfort.", 4),
		fixture("8", "Smartphone", 699, "/smartphone.jpg", "Electronics",
			"Latest smartphone with advanced camera system, fast processor, and long-lasting battery life.", 4.5),
	}, nil
}

func fixture(id, title string, price int64, image, category, description string, rating float64) models.Product {
	return models.Product{
		ID:          id,
		Title:       title,
		Price:       decimal.NewFromInt(price),
		Image:       image,
		Category:    category,
		Description: description,
		Rating:      &rating,
	}
}
