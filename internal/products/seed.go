package products

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/product"
)

// Seed returns the demo catalog every process starts with.
func Seed(now time.Time) []product.Product {
	p := func(id, name, price, category, desc, image string, stock int) product.Product {
		return product.Product{
			ID:          id,
			Name:        name,
			Price:       decimal.RequireFromString(price),
			Category:    category,
			Description: desc,
			Image:       image,
			Stock:       stock,
			CreatedAt:   now,
		}
	}
	return []product.Product{
		p("1", "Wireless Headphones", "99.99", "electronics",
			"Premium wireless headphones with noise cancellation",
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300", 50),
		p("2", "Smart Watch", "249.99", "electronics",
			"Advanced fitness tracking and smart notifications",
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300", 30),
		p("3", "Cotton T-Shirt", "29.99", "clothing",
			"100% organic cotton comfortable t-shirt",
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300", 100),
		p("4", "Denim Jeans", "79.99", "clothing",
			"Classic fit denim jeans with premium quality",
			"https://images.unsplash.com/photo-1542272604-787c3835535d?w=300", 75),
		p("5", "JavaScript Guide", "39.99", "books",
			"Comprehensive guide to modern JavaScript development",
			"https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=300", 200),
		p("6", "Cooking Essentials", "19.99", "books",
			"Master the art of cooking with essential techniques",
			"https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300", 150),
		p("7", "Plant Pot", "24.99", "home",
			"Beautiful ceramic pot perfect for indoor plants",
			"https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=300", 80),
		p("8", "LED Desk Lamp", "59.99", "home",
			"Adjustable LED lamp with multiple brightness settings",
			"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=300", 45),
	}
}
