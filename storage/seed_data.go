package storage

import "stylistapi/models"

// Sample catalog loaded into an empty store.

var SampleOutfits = []models.InsertOutfit{
	{
		Name:        "Classic Navy Suit Ensemble",
		Category:    models.CategoryFormal,
		ImageURL:    "https://images.unsplash.com/photo-1617137968427-85924c800a22?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8M3x8bWVucyUyMHN1aXR8ZW58MHx8MHx8fDA%3D&auto=format&fit=crop&w=500&q=60",
		Description: models.StrPointer("A timeless navy suit with complementary accessories for formal occasions."),
		MatchScore:  models.StrPointer("Perfect Match"),
		Colors:      []string{"navy", "white", "charcoal"},
	},
	{
		Name:        "Urban Casual Smart Look",
		Category:    models.CategoryCasual,
		ImageURL:    "https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Mnx8Y2FzdWFsJTIwb3V0Zml0fGVufDB8fDB8fHww&auto=format&fit=crop&w=500&q=60",
		Description: models.StrPointer("A stylish yet relaxed outfit perfect for everyday urban activities."),
		MatchScore:  models.StrPointer("Great Match"),
		Colors:      []string{"light gray", "gray", "blue"},
	},
	{
		Name:        "Professional Business Attire",
		Category:    models.CategoryBusinessCasual,
		ImageURL:    "https://images.unsplash.com/photo-1600091166971-7f9faad6c1e2?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Mnx8d29tZW4lMjBzdWl0fGVufDB8fDB8fHww&auto=format&fit=crop&w=500&q=60",
		Description: models.StrPointer("A sophisticated business outfit that exudes confidence and professionalism."),
		MatchScore:  models.StrPointer("Perfect Match"),
		Colors:      []string{"navy", "white", "black"},
	},
	{
		Name:        "Summer Weekend Style",
		Category:    models.CategoryCasual,
		ImageURL:    "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8M3x8d29tZW4lMjBjYXN1YWwlMjBvdXRmaXR8ZW58MHx8MHx8fDA%3D&auto=format&fit=crop&w=500&q=60",
		Description: models.StrPointer("A light and comfortable summer outfit perfect for weekend outings."),
		MatchScore:  models.StrPointer("Good Match"),
		Colors:      []string{"white", "pink", "yellow"},
	},
}

var SampleStyleGuides = []models.InsertStyleGuide{
	{
		Title:       "Essential Wardrobe Basics for Men",
		Category:    "Guide",
		ImageURL:    "https://images.unsplash.com/photo-1512400930990-e0bc0bd809df?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Nnx8bWFuJTIwZmFzaGlvbnxlbnwwfHwwfHx8MA%3D%3D&auto=format&fit=crop&w=500&q=60",
		Description: "Learn about the timeless pieces every man should have in his wardrobe to create versatile outfits for any occasion.",
		ReadTime:    models.StrPointer("5 min read"),
		Content:     models.StrPointer("A well-curated wardrobe starts with essential pieces that can be mixed and matched for various occasions..."),
	},
	{
		Title:       "Color Coordination for Your Skin Tone",
		Category:    "Color Theory",
		ImageURL:    "https://images.unsplash.com/photo-1483985988355-763728e1935b?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8M3x8d29tZW4lMjBmYXNoaW9ufGVufDB8fDB8fHww&auto=format&fit=crop&w=500&q=60",
		Description: "Discover which colors enhance your natural features and how to build a wardrobe palette that complements your unique look.",
		ReadTime:    models.StrPointer("7 min read"),
		Content:     models.StrPointer("Understanding your skin's undertones is the first step in selecting colors that enhance your natural beauty..."),
	},
	{
		Title:       "Mastering Formal Attire for Special Events",
		Category:    "Formal Wear",
		ImageURL:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Mnx8Zm9ybWFsJTIwYXR0aXJlfGVufDB8fDB8fHww&auto=format&fit=crop&w=500&q=60",
		Description: "Navigate dress codes and make the right impression at formal events with our comprehensive guide to elegant attire.",
		ReadTime:    models.StrPointer("6 min read"),
		Content:     models.StrPointer("Formal events call for attire that respects traditions while allowing for personal expression..."),
	},
}

var SampleClothingItems = []models.InsertClothingItem{
	{
		Name:        "Navy Blazer",
		Category:    models.CategoryFormal,
		Type:        models.ClothingTop,
		ImageURL:    "https://images.unsplash.com/photo-1626497764746-6dc36546b388?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Nnx8c3VpdCUyMGphY2tldHxlbnwwfHwwfHx8MA%3D%3D&auto=format&fit=crop&w=500&q=60",
		Colors:      []string{"navy"},
		Description: models.StrPointer("A classic navy blazer perfect for formal and business casual occasions."),
	},
	{
		Name:        "White T-Shirt",
		Category:    models.CategoryCasual,
		Type:        models.ClothingTop,
		ImageURL:    "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8NHx8dCUyMHNoaXJ0fGVufDB8fDB8fHww&auto=format&fit=crop&w=500&q=60",
		Colors:      []string{"white"},
		Description: models.StrPointer("A simple yet versatile white t-shirt that goes with everything."),
	},
	{
		Name:        "Blue Jeans",
		Category:    models.CategoryCasual,
		Type:        models.ClothingBottom,
		ImageURL:    "https://images.unsplash.com/photo-1584865288642-42078afe6942?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Mnx8amVhbnxlbnwwfHwwfHx8MA%3D%3D&auto=format&fit=crop&w=500&q=60",
		Colors:      []string{"blue"},
		Description: models.StrPointer("Classic blue jeans that provide comfort and style for casual outings."),
	},
	{
		Name:        "Brown Shoes",
		Category:    models.CategoryFormal,
		Type:        models.ClothingFootwear,
		ImageURL:    "https://images.unsplash.com/photo-1618517351616-38fb9c5210c6?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Mnx8YnJvd24lMjBzaG9lc3xlbnwwfHwwfHx8MA%3D%3D&auto=format&fit=crop&w=500&q=60",
		Colors:      []string{"brown"},
		Description: models.StrPointer("Elegant brown leather shoes ideal for formal occasions."),
	},
	{
		Name:        "Blue Shirt",
		Category:    models.CategoryBusinessCasual,
		Type:        models.ClothingTop,
		ImageURL:    "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8Mnx8Ymx1ZSUyMHNoaXJ0fGVufDB8fDB8fHww&auto=format&fit=crop&w=500&q=60",
		Colors:      []string{"blue"},
		Description: models.StrPointer("A versatile blue button-down shirt for business casual settings."),
	},
}

var SampleColorPalettes = []models.InsertColorPalette{
	{
		Name:        "Formal Essentials",
		Colors:      []string{"navy", "forest", "amber", "charcoal", "burgundy", "stone"},
		Description: models.StrPointer("Classic colors that work well for formal attire across various skin tones."),
	},
	{
		Name:        "Casual Neutrals",
		Colors:      []string{"white", "beige", "light blue", "gray", "black", "khaki"},
		Description: models.StrPointer("Versatile neutral tones that form the foundation of a casual wardrobe."),
	},
}
