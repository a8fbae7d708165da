package main

import (
	"log"
	"os"

	"property-catalog/internal/config"
	"property-catalog/internal/database"
	"property-catalog/internal/models"

	"github.com/joho/godotenv"
)

// Sample Portuguese listings for local development and demos.
var sampleProperties = []models.CreatePropertyInput{
	{
		Title:        "Luxury Villa in Cascais",
		Description:  "Stunning oceanfront villa with panoramic views of the Atlantic Ocean. This magnificent property features modern architecture blended with traditional Portuguese elements.",
		Price:        1250000,
		City:         models.CityLisbon,
		Address:      "Avenida Marginal, Cascais",
		Latitude:     38.6979,
		Longitude:    -9.4215,
		Bedrooms:     4,
		Bathrooms:    3,
		AreaSqm:      320,
		PropertyType: models.PropertyTypeVilla,
		IsFeatured:   true,
	},
	{
		Title:        "Modern Apartment in Porto Historic Center",
		Description:  "Beautifully renovated apartment in the heart of Porto's UNESCO World Heritage historic center. Walking distance to all major attractions.",
		Price:        450000,
		City:         models.CityPorto,
		Address:      "Rua das Flores, Porto",
		Latitude:     41.1579,
		Longitude:    -8.6291,
		Bedrooms:     2,
		Bathrooms:    2,
		AreaSqm:      85,
		PropertyType: models.PropertyTypeApartment,
		IsFeatured:   true,
	},
	{
		Title:        "Charming House in Óbidos",
		Description:  "Traditional Portuguese house within the medieval walls of Óbidos. Completely restored with modern amenities while preserving historical charm.",
		Price:        320000,
		City:         models.CityLisbon,
		Address:      "Rua Direita, Óbidos",
		Latitude:     39.3606,
		Longitude:    -9.1575,
		Bedrooms:     3,
		Bathrooms:    2,
		AreaSqm:      150,
		PropertyType: models.PropertyTypeHouse,
	},
	{
		Title:        "Beachfront Apartment in Algarve",
		Description:  "Contemporary beachfront apartment with direct access to golden sand beaches. Perfect for vacation rental or permanent residence.",
		Price:        680000,
		City:         models.CityAlgarve,
		Address:      "Praia da Rocha, Portimão",
		Latitude:     37.1174,
		Longitude:    -8.5391,
		Bedrooms:     3,
		Bathrooms:    2,
		AreaSqm:      120,
		PropertyType: models.PropertyTypeApartment,
		IsFeatured:   true,
	},
	{
		Title:        "Country Villa in Douro Valley",
		Description:  "Exclusive villa surrounded by vineyards in the famous Douro Valley. Includes private wine cellar and infinity pool.",
		Price:        890000,
		City:         models.CityPorto,
		Address:      "Quinta do Douro, Peso da Régua",
		Latitude:     41.1621,
		Longitude:    -7.7876,
		Bedrooms:     5,
		Bathrooms:    4,
		AreaSqm:      280,
		PropertyType: models.PropertyTypeVilla,
	},
}

var sampleImageURLs = []string{
	"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&h=400&fit=crop",
	"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&h=400&fit=crop",
	"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=400&fit=crop",
	"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=400&fit=crop",
	"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800&h=400&fit=crop",
}

func main() {
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		cfg = config.DefaultConfig()
	}

	store, err := database.NewStore(
		getEnvOrConfig(cfg.Database.Host, "DB_HOST", "db"),
		getEnvOrConfig(cfg.Database.PortString(), "DB_PORT", "5432"),
		getEnvOrConfig(cfg.Database.User, "DB_USER", "catalog_user"),
		getEnvOrConfig(cfg.Database.Password, "DB_PASSWORD", "catalog_pass"),
		getEnvOrConfig(cfg.Database.Database, "DB_NAME", "catalog_db"),
		getEnvOrConfig(cfg.Database.SSLMode, "DB_SSLMODE", "disable"),
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	existing, err := store.GetProperties(nil)
	if err != nil {
		log.Fatalf("Failed to check existing properties: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d properties, nothing to seed", len(existing))
		return
	}

	for i, in := range sampleProperties {
		property, err := store.CreateProperty(in)
		if err != nil {
			log.Fatalf("Failed to seed property %q: %v", in.Title, err)
		}

		_, err = store.CreatePropertyImage(property.ID, models.CreatePropertyImageInput{
			ImageURL:  sampleImageURLs[i%len(sampleImageURLs)],
			AltText:   in.Title,
			IsPrimary: true,
		})
		if err != nil {
			log.Fatalf("Failed to seed image for %q: %v", in.Title, err)
		}

		log.Printf("Seeded property %d: %s", property.ID, property.Title)
	}

	log.Printf("Seeded %d properties", len(sampleProperties))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
