package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// seedProduct describes one development catalog entry.
type seedProduct struct {
	slug        string
	name        string
	image       string
	description string
	brand       string
	category    string
	subcategory string
	dateAdded   string // RFC 3339
	features    []string
}

// seedProducts mirrors the sample catalog the marketing site launched with.
var seedProducts = []seedProduct{
	{
		slug:        "professional-convection-oven",
		name:        "Professional Convection Oven",
		image:       "/product-images/ovens/convection-oven.jpg",
		description: "A high-performance convection oven designed for commercial kitchens, featuring advanced air circulation technology for even cooking.",
		brand:       "Acme Supplies",
		category:    "Kitchen",
		subcategory: "Ovens",
		dateAdded:   "2023-05-15T08:00:00Z",
		features: []string{
			"Digital controls with programmable settings",
			"Stainless steel construction for durability",
			"Multiple rack positions for versatile cooking",
			"Energy-efficient design",
		},
	},
	{
		slug:        "industrial-pizza-oven",
		name:        "Industrial Pizza Oven",
		image:       "/product-images/ovens/pizza-oven.jpg",
		description: "A heavy-duty pizza oven with stone baking surface, ideal for high-volume pizzerias and restaurants.",
		brand:       "KitchenPro",
		category:    "Kitchen",
		subcategory: "Ovens",
		dateAdded:   "2023-08-22T10:30:00Z",
		features: []string{
			"High-temperature operation up to 500°C",
			"Stone baking surface for authentic pizza crust",
			"Digital temperature control",
			"Large capacity for multiple pizzas at once",
		},
	},
	{
		slug:        "upright-display-fridge",
		name:        "Upright Display Fridge",
		image:       "/product-images/refrigeration/display-fridge.jpg",
		description: "A glass-door display refrigerator for front-of-house beverage and fresh food merchandising.",
		brand:       "ColdLine",
		category:    "Kitchen",
		subcategory: "Refrigeration",
		dateAdded:   "2023-03-02T09:00:00Z",
		features: []string{
			"Self-closing double-glazed doors",
			"LED interior lighting",
			"Digital thermostat with alarm",
		},
	},
	{
		slug:        "commercial-washer-extractor",
		name:        "Commercial Washer Extractor",
		image:       "/product-images/laundry/washer-extractor.jpg",
		description: "A high-spin washer extractor built for hotels and laundromats running continuous daily cycles.",
		brand:       "Acme Supplies",
		category:    "Laundry",
		subcategory: "Washers",
		dateAdded:   "2023-11-10T14:00:00Z",
		features: []string{
			"Programmable wash cycles",
			"High G-force extraction reduces drying time",
			"Heavy-duty suspension for unbalanced loads",
		},
	},
}

// Seed populates the database with the sample catalog for development.
// It is a no-op when products already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("seed check products: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, p := range seedProducts {
		if err := seedOne(db, p); err != nil {
			return err
		}
	}

	slog.Info("database seeded with sample catalog", "products", len(seedProducts))
	return nil
}

// seedOne inserts a single product with its brand, category hierarchy, and
// features, reusing rows that earlier products already created.
func seedOne(db *sql.DB, p seedProduct) error {
	brandID, err := upsertNamed(db, "brands", p.brand)
	if err != nil {
		return fmt.Errorf("seed brand %q: %w", p.brand, err)
	}

	categoryID, err := upsertNamed(db, "categories", p.category)
	if err != nil {
		return fmt.Errorf("seed category %q: %w", p.category, err)
	}

	var subcategoryID string
	err = db.QueryRow(`
		INSERT INTO subcategories (name, category_id)
		VALUES ($1, $2)
		ON CONFLICT (name, category_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, p.subcategory, categoryID).Scan(&subcategoryID)
	if err != nil {
		return fmt.Errorf("seed subcategory %q: %w", p.subcategory, err)
	}

	dateAdded, err := time.Parse(time.RFC3339, p.dateAdded)
	if err != nil {
		return fmt.Errorf("seed date for %q: %w", p.slug, err)
	}

	var productID string
	err = db.QueryRow(`
		INSERT INTO products (slug, name, description, image, brand_id, subcategory_id, date_added)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, p.slug, p.name, p.description, p.image, brandID, subcategoryID, dateAdded).Scan(&productID)
	if err != nil {
		return fmt.Errorf("seed product %q: %w", p.slug, err)
	}

	for i, feature := range p.features {
		var featureID string
		if err := db.QueryRow(`INSERT INTO features (name) VALUES ($1) RETURNING id`, feature).Scan(&featureID); err != nil {
			return fmt.Errorf("seed feature %q: %w", feature, err)
		}
		_, err := db.Exec(`
			INSERT INTO product_features (product_id, feature_id, sort_order)
			VALUES ($1, $2, $3)
		`, productID, featureID, i)
		if err != nil {
			return fmt.Errorf("seed product feature %q: %w", feature, err)
		}
	}

	return nil
}

// upsertNamed inserts a row into a name-unique table and returns its id,
// or the existing row's id when the name is already present.
func upsertNamed(db *sql.DB, table, name string) (string, error) {
	var id string
	err := db.QueryRow(`
		INSERT INTO `+table+` (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name).Scan(&id)
	return id, err
}
