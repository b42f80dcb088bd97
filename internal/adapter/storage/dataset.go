// internal/adapter/storage/dataset.go

package storage

import "fashiontrends/internal/domain/trend"

// regionSeed is the parallel-array form the reference data is curated in
type regionSeed struct {
	name       string
	items      []string
	colors     []string
	categories []string
	growth     []int
}

var regionSeeds = []regionSeed{
	{
		name: "North America",
		items: []string{
			"Oversized Blazers", "Cargo Pants", "Platform Sneakers", "Bucket Hats", "Cropped Hoodies",
			"Wide-leg Trousers", "Chunky Gold Jewelry", "Denim Jackets", "Leather Boots",
			"Midi Skirts", "Puffer Vests", "Turtleneck Sweaters",
		},
		colors: []string{
			"Sage Green", "Terracotta", "Electric Blue", "Cream", "Rust Orange", "Deep Purple",
			"Warm Beige", "Charcoal Gray",
		},
		categories: []string{
			"Streetwear", "Minimalist", "Y2K Revival", "Sustainable Fashion", "Athleisure",
			"Vintage Americana", "Urban Casual", "Eco-Conscious", "Gender-Neutral", "Workwear",
			"Comfort Wear", "Retro-Futurism",
		},
		growth: []int{45, 38, 52, 29, 41, 35, 48, 33, 39, 44, 31, 37},
	},
	{
		name: "Europe",
		items: []string{
			"Trench Coats", "Wide-leg Jeans", "Chunky Sneakers", "Mini Bags", "Silk Scarves",
			"Tailored Blazers", "Ankle Boots", "Pleated Skirts", "Cashmere Sweaters",
			"Statement Coats", "Designer Sneakers", "Crossbody Bags",
		},
		colors: []string{
			"Burgundy", "Forest Green", "Camel", "Off-White", "Navy Blue", "Mustard Yellow",
			"Dove Gray", "Rich Brown",
		},
		categories: []string{
			"Classic", "Eco-friendly", "Luxury Casual", "Vintage", "Minimalist Chic",
			"Scandinavian Style", "French Girl", "Italian Luxury", "British Heritage",
			"Sustainable Luxury", "Artisanal", "Timeless Elegance",
		},
		growth: []int{42, 35, 48, 33, 46, 39, 43, 38, 41, 36, 44, 40},
	},
	{
		name: "Asia",
		items: []string{
			"Cropped Jackets", "High-waist Skirts", "Combat Boots", "Statement Earrings",
			"Oversized Shirts", "Platform Sandals", "Colorful Hair Accessories", "Layered Necklaces",
			"Kawaii Bags", "Tech Wear Pants", "Anime-inspired Apparel", "Holographic Accessories",
		},
		colors: []string{
			"Pastel Pink", "Lavender", "Mint Green", "Coral", "Baby Blue", "Soft Yellow",
			"Lilac", "Peach",
		},
		categories: []string{
			"K-Fashion", "Kawaii", "Street Style", "Tech Wear", "Harajuku", "J-Fashion",
			"Cute Culture", "Futuristic", "Anime-inspired", "Pastel Goth", "Decora",
			"Visual Kei",
		},
		growth: []int{55, 41, 47, 36, 52, 45, 49, 38, 43, 40, 46, 42},
	},
	{
		name: "South America",
		items: []string{
			"Flowy Dresses", "Denim Jackets", "Espadrilles", "Crossbody Bags", "Crochet Tops",
			"High-waist Bikinis", "Colorful Scarves", "Sandals", "Embroidered Blouses",
			"Maxi Skirts", "Fringe Accessories", "Woven Belts",
		},
		colors: []string{
			"Sunset Orange", "Ocean Blue", "Golden Yellow", "Pure White", "Tropical Green",
			"Coral Pink", "Turquoise", "Warm Red",
		},
		categories: []string{
			"Bohemian", "Tropical", "Festival Wear", "Beachwear", "Artisanal", "Folk-inspired",
			"Carnival Fashion", "Resort Wear", "Handmade", "Cultural Fusion", "Sustainable Crafts",
			"Vibrant Prints",
		},
		growth: []int{39, 44, 31, 28, 42, 37, 35, 40, 38, 33, 36, 34},
	},
	{
		name: "Middle East",
		items: []string{
			"Modest Wear", "Luxury Abayas", "Designer Hijabs", "Kaftan Dresses", "Embellished Tunics",
			"Wide-leg Pants", "Statement Jewelry", "Pointed Flats", "Silk Blouses", "Long Cardigans",
			"Beaded Accessories", "Metallic Bags",
		},
		colors: []string{
			"Deep Emerald", "Rich Gold", "Royal Blue", "Ivory", "Bronze", "Jewel Tones",
			"Midnight Black", "Pearl White",
		},
		categories: []string{
			"Modest Fashion", "Luxury Modest", "Traditional Fusion", "Contemporary Islamic",
			"Elegant Casual", "Formal Modest", "Cultural Heritage", "Modern Abaya", "Hijab Fashion",
			"Ramadan Special", "Eid Collection", "Desert Elegance",
		},
		growth: []int{48, 45, 52, 38, 43, 41, 46, 35, 40, 37, 44, 39},
	},
	{
		name: "Africa",
		items: []string{
			"Ankara Prints", "Dashiki Shirts", "Kente Accessories", "Beaded Jewelry",
			"Mud Cloth Bags", "Colorful Headwraps", "Traditional Sandals", "Wax Print Dresses",
			"Cowrie Shell Jewelry", "Leather Goods", "Handwoven Fabrics", "Cultural Robes",
		},
		colors: []string{
			"Vibrant Orange", "Deep Red", "Golden Yellow", "Royal Purple", "Earth Brown",
			"Bright Green", "Indigo Blue", "Sunset Pink",
		},
		categories: []string{
			"Afrocentric", "Traditional Prints", "Cultural Heritage", "Handcrafted",
			"Tribal Fusion", "Contemporary African", "Sustainable Crafts", "Diaspora Fashion",
			"Pan-African", "Artisanal", "Heritage Wear", "Modern Traditional",
		},
		growth: []int{51, 47, 44, 39, 42, 46, 38, 43, 40, 45, 41, 37},
	},
	{
		name: "Australia & Oceania",
		items: []string{
			"Surf Wear", "Linen Shirts", "Flip Flops", "Sun Hats", "Maxi Dresses", "Denim Shorts",
			"Casual Sneakers", "Beach Cover-ups", "Outdoor Gear", "Relaxed Blazers",
			"Canvas Bags", "Minimal Jewelry",
		},
		colors: []string{
			"Ocean Blue", "Sandy Beige", "Coral", "Seafoam Green", "Sunset Orange", "Natural White",
			"Dusty Rose", "Eucalyptus Green",
		},
		categories: []string{
			"Beach Casual", "Surf Culture", "Outdoor Lifestyle", "Relaxed Luxury", "Sustainable Beach",
			"Minimalist", "Island Living", "Adventure Wear", "Laid-back Chic", "Natural Fabrics",
			"Eco-Friendly", "Coastal Style",
		},
		growth: []int{43, 38, 41, 35, 39, 42, 37, 40, 36, 44, 33, 38},
	},
	{
		name: "Eastern Europe",
		items: []string{
			"Fur-lined Coats", "Knee-high Boots", "Wool Sweaters", "Statement Hats",
			"Layered Scarves", "Leather Jackets", "Warm Accessories", "Tailored Coats",
			"Chunky Knits", "Designer Boots", "Vintage Jewelry", "Structured Bags",
		},
		colors: []string{
			"Deep Burgundy", "Charcoal Gray", "Forest Green", "Cream", "Rich Brown",
			"Navy Blue", "Wine Red", "Stone Gray",
		},
		categories: []string{
			"Winter Chic", "Soviet Vintage", "Slavic Heritage", "Luxury Warmth", "Folk Revival",
			"Contemporary Classic", "Urban Elegance", "Cultural Fusion", "Heritage Craft",
			"Modern Traditional", "Artisanal", "Sophisticated Casual",
		},
		growth: []int{44, 41, 47, 36, 43, 39, 45, 38, 42, 40, 37, 41},
	},
	{
		name: "Southeast Asia",
		items: []string{
			"Batik Prints", "Silk Scarves", "Woven Bags", "Traditional Jewelry", "Tropical Prints",
			"Sandals", "Light Fabrics", "Cultural Accessories", "Embroidered Tops", "Flowing Pants",
			"Natural Fibers", "Artisan Crafts",
		},
		colors: []string{
			"Tropical Green", "Sunset Orange", "Ocean Blue", "Golden Yellow", "Coral Pink",
			"Jade Green", "Warm Brown", "Ivory White",
		},
		categories: []string{
			"Tropical Chic", "Cultural Heritage", "Artisanal", "Sustainable Fashion",
			"Traditional Fusion", "Island Style", "Handcrafted", "Natural Fabrics", "Cultural Pride",
			"Modern Traditional", "Eco-Conscious", "Heritage Wear",
		},
		growth: []int{46, 43, 40, 37, 44, 41, 38, 45, 39, 42, 36, 40},
	},
	{
		name: "Caribbean",
		items: []string{
			"Vibrant Prints", "Flowing Dresses", "Sandals", "Straw Hats", "Bright Accessories",
			"Beach Wear", "Colorful Jewelry", "Light Fabrics", "Cultural Prints", "Casual Wear",
			"Tropical Accessories", "Island Style",
		},
		colors: []string{
			"Caribbean Blue", "Sunset Yellow", "Coral Pink", "Lime Green", "Turquoise",
			"Bright Orange", "Hot Pink", "Pure White",
		},
		categories: []string{
			"Island Fashion", "Caribbean Culture", "Tropical Casual", "Festival Wear",
			"Beach Chic", "Carnival Fashion", "Vibrant Prints", "Cultural Heritage",
			"Relaxed Luxury", "Sustainable Island", "Handmade", "Diaspora Style",
		},
		growth: []int{42, 39, 45, 36, 43, 40, 37, 44, 38, 41, 35, 39},
	},
}

var seasonSeeds = []seasonSeed{
	{
		name:       "Spring",
		colors:     []string{"Pastel Pink", "Soft Green", "Lavender", "Baby Blue", "Cream"},
		items:      []string{"Light Cardigans", "Floral Dresses", "Canvas Sneakers", "Denim Jackets"},
		categories: []string{"Romantic", "Fresh", "Casual", "Layering"},
	},
	{
		name:       "Summer",
		colors:     []string{"Bright Yellow", "Coral", "Turquoise", "White", "Neon Green"},
		items:      []string{"Sundresses", "Sandals", "Shorts", "Tank Tops", "Sun Hats"},
		categories: []string{"Beach Wear", "Casual", "Tropical", "Minimalist"},
	},
	{
		name:       "Fall",
		colors:     []string{"Rust Orange", "Deep Red", "Forest Green", "Brown", "Burgundy"},
		items:      []string{"Sweaters", "Boots", "Scarves", "Coats", "Layered Jewelry"},
		categories: []string{"Cozy", "Layered", "Warm Tones", "Classic"},
	},
	{
		name:       "Winter",
		colors:     []string{"Navy Blue", "Charcoal", "Cream", "Deep Purple", "Emerald"},
		items:      []string{"Heavy Coats", "Boots", "Knitwear", "Accessories", "Formal Wear"},
		categories: []string{"Luxury", "Warmth", "Formal", "Holiday"},
	},
}

type seasonSeed struct {
	name       string
	colors     []string
	items      []string
	categories []string
}

var influenceSeed = trend.InfluenceData{
	CelebrityEndorsements: []trend.InfluencerRecord{
		{Name: "Taylor Swift", ImpactItem: "Cardigans", GrowthBoost: 65},
		{Name: "Rihanna", ImpactItem: "Fenty Beauty", GrowthBoost: 78},
		{Name: "Zendaya", ImpactItem: "Vintage Fashion", GrowthBoost: 52},
		{Name: "Harry Styles", ImpactItem: "Gender-Neutral Fashion", GrowthBoost: 71},
		{Name: "Billie Eilish", ImpactItem: "Oversized Clothing", GrowthBoost: 68},
	},
	SocialMediaTrends: []trend.SocialTrendRecord{
		{Platform: "TikTok", TrendingHashtag: "#OOTD", InfluenceScore: 85},
		{Platform: "Instagram", TrendingHashtag: "#ThriftFlip", InfluenceScore: 72},
		{Platform: "Pinterest", TrendingHashtag: "#SustainableFashion", InfluenceScore: 69},
		{Platform: "YouTube", TrendingHashtag: "#StyleChallenge", InfluenceScore: 63},
	},
}
