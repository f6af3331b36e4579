package catalog

// record is the raw catalog row; prices are kept as exact decimal strings
type record struct {
	id                  int
	name                string
	brand               string
	category            string
	price               string
	rating              float64
	sustainabilityScore int
	carbonFootprint     float64
	waterUsage          float64
	purchaseLikelihood  int
	image               string
	features            []string
}

var records = []record{
	{
		id:                  1,
		name:                "Organic Cotton T-Shirt",
		brand:               "EcoWear",
		category:            "Clothing",
		price:               "29.99",
		rating:              4.8,
		sustainabilityScore: 92,
		carbonFootprint:     2.1,
		waterUsage:          45,
		purchaseLikelihood:  89,
		image:               "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg?auto=compress&cs=tinysrgb&w=300",
		features:            []string{"100% Organic Cotton", "Fair Trade Certified", "Carbon Neutral Shipping"},
	},
	{
		id:                  2,
		name:                "Bamboo Fiber Yoga Mat",
		brand:               "ZenEco",
		category:            "Sports",
		price:               "79.99",
		rating:              4.6,
		sustainabilityScore: 88,
		carbonFootprint:     1.8,
		waterUsage:          12,
		purchaseLikelihood:  85,
		image:               "https://images.pexels.com/photos/3822906/pexels-photo-3822906.jpeg?auto=compress&cs=tinysrgb&w=300",
		features:            []string{"Biodegradable Material", "Non-Toxic", "Recyclable Packaging"},
	},
	{
		id:                  3,
		name:                "Solar-Powered Phone Charger",
		brand:               "SunTech",
		category:            "Electronics",
		price:               "49.99",
		rating:              4.7,
		sustainabilityScore: 85,
		carbonFootprint:     3.2,
		waterUsage:          8,
		purchaseLikelihood:  82,
		image:               "https://images.pexels.com/photos/4792728/pexels-photo-4792728.jpeg?auto=compress&cs=tinysrgb&w=300",
		features:            []string{"Renewable Energy", "Durable Design", "Weather Resistant"},
	},
	{
		id:                  4,
		name:                "Recycled Glass Water Bottle",
		brand:               "PureFlow",
		category:            "Home",
		price:               "24.99",
		rating:              4.9,
		sustainabilityScore: 94,
		carbonFootprint:     1.2,
		waterUsage:          5,
		purchaseLikelihood:  91,
		image:               "https://images.pexels.com/photos/3737631/pexels-photo-3737631.jpeg?auto=compress&cs=tinysrgb&w=300",
		features:            []string{"100% Recycled Glass", "BPA-Free", "Lifetime Warranty"},
	},
	{
		id:                  5,
		name:                "Hemp Seed Protein Powder",
		brand:               "PlantPower",
		category:            "Food",
		price:               "34.99",
		rating:              4.5,
		sustainabilityScore: 90,
		carbonFootprint:     0.8,
		waterUsage:          15,
		purchaseLikelihood:  78,
		image:               "https://images.pexels.com/photos/4397840/pexels-photo-4397840.jpeg?auto=compress&cs=tinysrgb&w=300",
		features:            []string{"Plant-Based", "Organic Certified", "Minimal Processing"},
	},
	{
		id:                  6,
		name:                "Biodegradable Phone Case",
		brand:               "EcoShield",
		category:            "Electronics",
		price:               "19.99",
		rating:              4.4,
		sustainabilityScore: 87,
		carbonFootprint:     0.5,
		waterUsage:          3,
		purchaseLikelihood:  76,
		image:               "https://images.pexels.com/photos/4666748/pexels-photo-4666748.jpeg?auto=compress&cs=tinysrgb&w=300",
		features:            []string{"Compostable Material", "Drop Protection", "Natural Colors"},
	},
}
