package domain

// SampleCatalog returns the built-in demo catalog. The store treats the
// catalog as shared immutable data, so callers must not mutate the result.
func SampleCatalog() []Product {
	return []Product{
		{
			ID:                 1,
			Title:              "iPhone 13",
			Description:        "Apple iPhone 13 with A15 Bionic chip, Super Retina XDR display, and advanced dual-camera system",
			Brand:              "Apple",
			Category:           "smartphones",
			Price:              799,
			DiscountPercentage: 10,
			Rating:             4.7,
			Stock:              94,
			Thumbnail:          "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		{
			ID:                 2,
			Title:              "Samsung Galaxy S21",
			Description:        "Samsung Galaxy S21 with Exynos 2100 processor, Dynamic AMOLED display, and versatile camera",
			Brand:              "Samsung",
			Category:           "smartphones",
			Price:              699,
			DiscountPercentage: 15,
			Rating:             4.5,
			Stock:              80,
			Thumbnail:          "https://images.unsplash.com/photo-1610792516307-ea5acd9c3b00?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1610792516307-ea5acd9c3b00?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1565849904461-04a58ad377e0?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		{
			ID:                 3,
			Title:              "MacBook Air",
			Description:        "Apple MacBook Air with M2 chip, 13.6-inch Liquid Retina display, and all-day battery life",
			Brand:              "Apple",
			Category:           "laptops",
			Price:              1199,
			DiscountPercentage: 5,
			Rating:             4.8,
			Stock:              50,
			Thumbnail:          "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1530893609608-32a9af3aa95c?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		{
			ID:                 4,
			Title:              "Dell XPS 13",
			Description:        "Dell XPS 13 with Intel Core i7 processor, 13.4-inch InfinityEdge display, and long battery life",
			Brand:              "Dell",
			Category:           "laptops",
			Price:              999,
			DiscountPercentage: 8,
			Rating:             4.6,
			Stock:              62,
			Thumbnail:          "https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		{
			ID:                 5,
			Title:              "Apple Watch Series 7",
			Description:        "Apple Watch Series 7 with Always-On Retina display, ECG app, and health & fitness tracking",
			Brand:              "Apple",
			Category:           "smartwatches",
			Price:              399,
			DiscountPercentage: 12,
			Rating:             4.7,
			Stock:              75,
			Thumbnail:          "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		{
			ID:                 6,
			Title:              "Sony WH-1000XM4",
			Description:        "Sony WH-1000XM4 wireless noise-canceling headphones with exceptional sound quality",
			Brand:              "Sony",
			Category:           "audio",
			Price:              349,
			DiscountPercentage: 18,
			Rating:             4.9,
			Stock:              45,
			Thumbnail:          "https://images.unsplash.com/photo-1578319439584-104c94d37305?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1578319439584-104c94d37305?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		{
			ID:                 7,
			Title:              "iPad Pro",
			Description:        "Apple iPad Pro with M2 chip, Liquid Retina XDR display, and Apple Pencil compatibility",
			Brand:              "Apple",
			Category:           "tablets",
			Price:              799,
			DiscountPercentage: 7,
			Rating:             4.7,
			Stock:              58,
			Thumbnail:          "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1585790050227-1e3590cf62b0?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
		{
			ID:                 8,
			Title:              "Canon EOS R6",
			Description:        "Canon EOS R6 full-frame mirrorless camera with 4K video and in-body image stabilization",
			Brand:              "Canon",
			Category:           "cameras",
			Price:              2499,
			DiscountPercentage: 5,
			Rating:             4.8,
			Stock:              32,
			Thumbnail:          "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			Images: []string{
				"https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=600&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
		},
	}
}
