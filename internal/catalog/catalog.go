// Package catalog holds the static seed catalog. The product list is fixed at
// compile time, ordered, and read-only for the life of the process.
package catalog

import "github.com/oakline/storefront/internal/models"

var products = []models.Product{
	{
		ID:          "prod_001",
		Slug:        "modern-oak-bench",
		Name:        "Modern Oak Bench",
		Price:       45000,
		Image:       "/products/oak-bench.svg",
		Description: "Handcrafted solid oak bench with minimalist design. Perfect for entryways or dining rooms. Features smooth edges and a natural finish that highlights the wood grain.",
		Options: []models.ProductOption{
			{
				ID:   "legs",
				Name: "Legs",
				Values: []models.OptionValue{
					{ID: "standard", Label: "Standard Oak Legs"},
					{ID: "gold", Label: "Gold Aston Legs"},
					{ID: "black", Label: "Matte Black Legs"},
				},
			},
		},
		SKU: "BNCH-OAK-001",
	},
	{
		ID:          "prod_002",
		Slug:        "ceramic-planter-set",
		Name:        "Ceramic Planter Set",
		Price:       8900,
		Image:       "/products/planter-set.svg",
		Description: "Set of three handmade ceramic planters in varying sizes. Matte white finish with drainage holes. Ideal for succulents and small plants.",
		SKU:         "PLNT-CER-SET3",
	},
	{
		ID:          "prod_003",
		Slug:        "minimalist-floor-lamp",
		Name:        "Minimalist Floor Lamp",
		Price:       22500,
		Image:       "/products/floor-lamp.svg",
		Description: "Sleek floor lamp with adjustable height and dimmable LED bulb. Matte black finish with brass accents. Energy efficient and modern design.",
		Options: []models.ProductOption{
			{
				ID:   "finish",
				Name: "Finish",
				Values: []models.OptionValue{
					{ID: "black", Label: "Matte Black"},
					{ID: "brass", Label: "Brushed Brass"},
					{ID: "white", Label: "Pure White"},
				},
			},
		},
		SKU: "LAMP-FLR-MIN",
	},
	{
		ID:          "prod_004",
		Slug:        "linen-throw-pillows",
		Name:        "Linen Throw Pillows",
		Price:       6500,
		Image:       "/products/throw-pillows.svg",
		Description: "Set of two premium linen throw pillows. Natural texture with hidden zipper closure. Machine washable covers with hypoallergenic filling.",
		Options: []models.ProductOption{
			{
				ID:   "color",
				Name: "Color",
				Values: []models.OptionValue{
					{ID: "natural", Label: "Natural Linen"},
					{ID: "sage", Label: "Sage Green"},
					{ID: "charcoal", Label: "Charcoal Grey"},
					{ID: "rust", Label: "Rust Orange"},
				},
			},
		},
		SKU: "PILL-LIN-002",
	},
	{
		ID:          "prod_005",
		Slug:        "walnut-side-table",
		Name:        "Walnut Side Table",
		Price:       32500,
		Image:       "/products/side-table.svg",
		Description: "Solid walnut side table with mid-century modern design. Features tapered legs and a small drawer for storage. Hand-finished with natural oil.",
		SKU:         "TBL-WAL-SIDE",
	},
	{
		ID:          "prod_006",
		Slug:        "geometric-wall-art",
		Name:        "Geometric Wall Art",
		Price:       12500,
		Image:       "/products/wall-art.svg",
		Description: "Abstract geometric print in a minimalist style. Museum-quality giclée print on archival paper. Available framed or unframed.",
		Options: []models.ProductOption{
			{
				ID:   "frame",
				Name: "Frame",
				Values: []models.OptionValue{
					{ID: "unframed", Label: "Unframed"},
					{ID: "oak", Label: "Oak Frame"},
					{ID: "black", Label: "Black Frame"},
					{ID: "white", Label: "White Frame"},
				},
			},
		},
		SKU: "ART-GEO-001",
	},
	{
		ID:          "prod_007",
		Slug:        "marble-coasters",
		Name:        "Marble Coasters",
		Price:       4500,
		Image:       "/products/coasters.svg",
		Description: "Set of four genuine marble coasters with cork backing. Each piece features unique natural veining. Protects surfaces while adding elegance.",
		SKU:         "CSTR-MRB-004",
	},
	{
		ID:          "prod_008",
		Slug:        "woven-storage-basket",
		Name:        "Woven Storage Basket",
		Price:       7800,
		Image:       "/products/storage-basket.svg",
		Description: "Handwoven seagrass storage basket with sturdy handles. Perfect for blankets, toys, or laundry. Natural color complements any decor.",
		Options: []models.ProductOption{
			{
				ID:   "size",
				Name: "Size",
				Values: []models.OptionValue{
					{ID: "small", Label: "Small (12\" diameter)"},
					{ID: "medium", Label: "Medium (16\" diameter)"},
					{ID: "large", Label: "Large (20\" diameter)"},
				},
			},
		},
		SKU: "BSKT-WVN-001",
	},
	{
		ID:          "prod_009",
		Slug:        "copper-pendant-light",
		Name:        "Copper Pendant Light",
		Price:       18900,
		Image:       "/products/pendant-light.svg",
		Description: "Hammered copper pendant light with adjustable cord length. Warm metallic finish adds industrial charm. E26 bulb compatible.",
		SKU:         "LAMP-PND-CPR",
	},
	{
		ID:          "prod_010",
		Slug:        "organic-cotton-blanket",
		Name:        "Organic Cotton Blanket",
		Price:       12000,
		Image:       "/products/cotton-blanket.svg",
		Description: "Luxuriously soft organic cotton blanket. Breathable waffle weave perfect for all seasons. Pre-washed for extra softness.",
		Options: []models.ProductOption{
			{
				ID:   "color",
				Name: "Color",
				Values: []models.OptionValue{
					{ID: "cream", Label: "Cream"},
					{ID: "grey", Label: "Stone Grey"},
					{ID: "navy", Label: "Navy Blue"},
					{ID: "olive", Label: "Olive Green"},
				},
			},
		},
		SKU: "BLKT-COT-ORG",
	},
	{
		ID:          "prod_011",
		Slug:        "terracotta-vase",
		Name:        "Terracotta Vase",
		Price:       5600,
		Image:       "/products/terracotta-vase.svg",
		Description: "Hand-thrown terracotta vase with organic shape. Natural clay finish with subtle glaze. Perfect for dried flowers or as standalone decor.",
		SKU:         "VASE-TER-001",
	},
	{
		ID:          "prod_012",
		Slug:        "modern-bookends",
		Name:        "Modern Bookends",
		Price:       8500,
		Image:       "/products/bookends.svg",
		Description: "Sculptural bookends in powder-coated steel. Minimalist design keeps books organized in style. Non-slip base protects furniture.",
		Options: []models.ProductOption{
			{
				ID:   "color",
				Name: "Color",
				Values: []models.OptionValue{
					{ID: "black", Label: "Matte Black"},
					{ID: "white", Label: "Matte White"},
					{ID: "sage", Label: "Sage Green"},
				},
			},
		},
		SKU: "BOOK-END-MOD",
	},
}

// All returns the catalog in its fixed display order. The slice is a copy so
// callers cannot reorder the seed.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	return out
}

// BySlug returns the product with the given slug, if any. A miss is an
// expected outcome, not an error.
func BySlug(slug string) (models.Product, bool) {

	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}

	return models.Product{}, false
}
