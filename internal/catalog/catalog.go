// Package catalog is the static SA9R product table. Pure lookup, no mutation.
package catalog

import "sort"

type Product struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	FrontImage  string   `json:"frontImage"`
	BackImage   string   `json:"backImage"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
}

const (
	CategoryTShirts = "tshirts"
	CategoryHoodies = "hoodies"
)

const imageBase = "https://cdn.builder.io/api/v1/image/assets%2F072ea99f44f14065aecadd2d8810c0af%2F"

var products = map[string]Product{
	"tshirts-1": {
		ID:          "1",
		Category:    CategoryTShirts,
		Name:        "SA9R 1er",
		Price:       "129.99 MAD",
		Description: "Premium cotton blend with iconic SA9R eagle graphic. Designed for those who embody power, freedom, and attitude.",
		FrontImage:  imageBase + "236aacc778c34167b7ae0c359cda1068?format=webp&width=800",
		BackImage:   imageBase + "a6badf4c687d45b6ad45e4fa5d1bccd0?format=webp&width=800",
		Colors:      []string{"Black", "White"},
		Sizes:       []string{"S", "M", "L"},
	},
	"tshirts-2": {
		ID:          "2",
		Category:    CategoryTShirts,
		Name:        "Heavy SA9R",
		Price:       "129.99 MAD",
		Description: "Bold eagle design representing strength and freedom. Made from 100% organic cotton for maximum comfort.",
		FrontImage:  imageBase + "236aacc778c34167b7ae0c359cda1068?format=webp&width=800",
		BackImage:   imageBase + "25f5b084d39d4bd09b1a9508bd95e69a?format=webp&width=800",
		Colors:      []string{"Black", "White"},
		Sizes:       []string{"S", "M", "L"},
	},
	"tshirts-3": {
		ID:          "3",
		Category:    CategoryTShirts,
		Name:        "صقر",
		Price:       "129.99 MAD",
		Description: "Clean SA9R logo design with subtle texture details. The perfect foundation piece for any streetwear collection.",
		FrontImage:  imageBase + "236aacc778c34167b7ae0c359cda1068?format=webp&width=800",
		BackImage:   imageBase + "698142fd5c9d4a899523437e3067beb3?format=webp&width=800",
		Colors:      []string{"Black", "White"},
		Sizes:       []string{"S", "M", "L"},
	},
	"hoodies-1": {
		ID:          "1",
		Category:    CategoryHoodies,
		Name:        "SA9R VYRA Hoodie",
		Price:       "179.99 MAD",
		Description: "Heavy-weight premium hoodie with detailed eagle embroidery. Oversized fit for ultimate street style.",
		FrontImage:  imageBase + "124212c163fd439483e3cc0b7a10af18?format=webp&width=800",
		BackImage:   imageBase + "643ee1d4c0584124a69622ffe44f61be?format=webp&width=800",
		Colors:      []string{"Black", "White"},
		Sizes:       []string{"S", "M", "L"},
	},
	"hoodies-2": {
		ID:          "2",
		Category:    CategoryHoodies,
		Name:        "SA9R RAISEN Hoodie",
		Price:       "179.99 MAD",
		Description: "Signature SA9R design with bold graphics front and back. Premium fleece interior for unmatched comfort.",
		FrontImage:  imageBase + "124212c163fd439483e3cc0b7a10af18?format=webp&width=800",
		BackImage:   imageBase + "04bd2c6fe8374e1d8113aab874e28c60?format=webp&width=800",
		Colors:      []string{"Black", "White"},
		Sizes:       []string{"S", "M", "L"},
	},
	"hoodies-3": {
		ID:          "3",
		Category:    CategoryHoodies,
		Name:        "SA9R BLAZE Hoodie",
		Price:       "179.99 MAD",
		Description: "Minimalist design with maximum impact. Clean lines and perfect proportions define this essential piece.",
		FrontImage:  imageBase + "4e83ec562e6b4826b0e6a2a9d8a8368b?format=webp&width=800",
		BackImage:   imageBase + "f7248840e2074b42a270306ea2fc9a5f?format=webp&width=800",
		Colors:      []string{"Black", "White"},
		Sizes:       []string{"S", "M", "L"},
	},
}

// Get looks a product up by category and id. The second return is false when
// no such product exists.
func Get(category, id string) (Product, bool) {
	p, ok := products[category+"-"+id]
	return p, ok
}

// ByCategory returns the products of one category, ordered by id.
func ByCategory(category string) []Product {
	var out []Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// All returns every product, ordered by category then id.
func All() []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ID < out[j].ID
	})
	return out
}
