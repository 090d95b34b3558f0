package store

// SeedProducts returns the catalog a fresh shop starts with. It is used
// whenever no product collection has been persisted yet.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Ultra Smartphone 2024",
			Description: "Latest smartphone with a professional camera and a powerful processor.",
			Price:       4500,
			Category:    CategoryElectronics,
			Image:       "https://picsum.photos/seed/phone/400/400",
		},
		{
			ID:          "2",
			Name:        "Multi-Speed Kitchen Blender",
			Description: "Powerful blender for the modern kitchen with steel blades.",
			Price:       850,
			Category:    CategoryHome,
			Image:       "https://picsum.photos/seed/mixer/400/400",
		},
		{
			ID:          "3",
			Name:        "Family SUV",
			Description: "Spacious and comfortable car for long trips and adventures.",
			Price:       280000,
			Category:    CategoryCars,
			Image:       "https://picsum.photos/seed/car/400/400",
		},
		{
			ID:          "4",
			Name:        "55\" Smart TV",
			Description: "4K resolution with a full Android system.",
			Price:       3200,
			Category:    CategoryElectronics,
			Image:       "https://picsum.photos/seed/tv/400/400",
		},
		{
			ID:          "5",
			Name:        "Premium Cookware Set",
			Description: "Complete set of non-stick pots and pans.",
			Price:       1200,
			Category:    CategoryHome,
			Image:       "https://picsum.photos/seed/pots/400/400",
		},
	}
}

// DefaultSettings returns the settings record used when none has been persisted.
func DefaultSettings() Settings {
	return Settings{
		DomainName:  "myshop.com",
		NameServers: "ns1.hosting.com, ns2.hosting.com",
	}
}
