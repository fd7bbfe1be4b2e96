package catalog

func cents(v int64) *int64 { return &v }

// Static is the built-in shop inventory.
func Static() []Product {
	return []Product{
		{
			ID: "1", Name: "RX-78-2 Gundam Ver. 3.0", Series: SeriesUC, Grade: GradeMG, Scale: "1/100",
			PriceCents: 6000, Image: "/images/rx78_gundam.png",
			Description: "The origin of the legend. This Master Grade kit features the iconic RX-78-2 with incredible articulation and detail reminiscent of the 1/1 Gundam statue.",
			Difficulty:  DifficultyIntermediate,
			Tags:        []string{"Best Seller", "Classic"},
			Lore:        &Lore{Pilot: "Amuro Ray", Height: "18.0m", Armaments: []string{"Beam Rifle", "Beam Saber x2", "Hyper Bazooka", "Gundam Hammer"}},
		},
		{
			ID: "2", Name: "GAT-X105 Strike Gundam", Series: SeriesSEED, Grade: GradeHG, Scale: "1/144",
			PriceCents: 2500, SalePriceCents: cents(2250), Image: "/images/strike_gundam.png",
			Description: "A versatile mobile suit from the Cosmic Era. Features the Aile Striker pack and excellent color separation for a High Grade kit.",
			Difficulty:  DifficultyBeginner,
			Lore:        &Lore{Pilot: "Kira Yamato", Height: "17.72m", Armaments: []string{"Armor Schneider x2", "57mm Beam Rifle", "Shield"}},
		},
		{
			ID: "3", Name: "RX-0 Unicorn Gundam", Series: SeriesUC, Grade: GradeRG, Scale: "1/144",
			PriceCents: 4500, Image: "/images/unicorn_gundam.png",
			Description: "The beast of possibility. This Real Grade kit transforms between Unicorn and Destroy mode despite its small scale.",
			Difficulty:  DifficultyAdvanced,
			Tags:        []string{"Transformation"},
			Lore:        &Lore{Pilot: "Banagher Links", Height: "19.7m (Unicorn Mode)", Armaments: []string{"Beam Magnum", "Hyper Bazooka", "Shield", "Beam Saber x4"}},
		},
		{
			ID: "4", Name: "ASW-G-08 Gundam Barbatos", Series: SeriesIBO, Grade: GradeMG, Scale: "1/100",
			PriceCents: 5500, SalePriceCents: cents(4400), Image: "/images/barbatos_gundam.png",
			Description: "The devil of Tekkadan. Features a full inner frame showcasing the Gundam Frame distinct to the IBO series.",
			Difficulty:  DifficultyIntermediate,
			Tags:        []string{"Fan Favorite"},
			Lore:        &Lore{Pilot: "Mikazuki Augus", Height: "18.0m", Armaments: []string{"Mace", "Long Sword", "Smoothbore Gun"}},
		},
		{
			ID: "5", Name: "ZGMF-X20A Strike Freedom", Series: SeriesSEED, Grade: GradePG, Scale: "1/60",
			PriceCents: 22000, Image: "/images/strike_freedom_gundam.png",
			Description: "The ultimate coordinator's wings. A massive Perfect Grade kit with gold-plated inner frame parts and dragoons.",
			Difficulty:  DifficultyExpert,
			Tags:        []string{"Premium", "Gold Plated"},
			Lore:        &Lore{Pilot: "Kira Yamato", Height: "18.88m", Armaments: []string{"Super DRAGOON", "Beam Saber x2", "Beam Rifle x2", "Railgun x2"}},
		},
		{
			ID: "6", Name: "XVX-016 Gundam Aerial", Series: SeriesWitch, Grade: GradeHG, Scale: "1/144",
			PriceCents: 2000, Image: "/images/aerial_gundam.png",
			Description: "The witch from Mercury. Features translucent shell unit parts and bit staves functionality.",
			Difficulty:  DifficultyBeginner,
			IsNew:       true,
			Tags:        []string{"New Arrival", "Anime Trending"},
			Lore:        &Lore{Pilot: "Suletta Mercury", Height: "18.0m", Armaments: []string{"Beam Rifle", "Beam Saber x2", "GUND-BITS (Escutcheon)"}},
		},
		{
			ID: "7", Name: "GN-001 Gundam Exia", Series: SeriesOO, Grade: GradeRG, Scale: "1/144",
			PriceCents: 3500, SalePriceCents: cents(2800), Image: "/images/exia_gundam.jpg",
			Description: "The Seven Swords. Features holographic GN cable parts and extreme articulation.",
			Difficulty:  DifficultyIntermediate,
			Lore:        &Lore{Pilot: "Setsuna F. Seiei", Height: "18.3m", Armaments: []string{"GN Sword", "GN Long Blade", "GN Short Blade", "GN Beam Saber x2", "GN Beam Dagger x2"}},
		},
		{
			ID: "8", Name: "MSN-04 Sazabi Ver. Ka", Series: SeriesUC, Grade: GradeMG, Scale: "1/100",
			PriceCents: 9500, Image: "/images/sazabi_gundam.jpg",
			Description: "Char Aznable's final mobile suit. A massive kit with intricate mechanical details designed by Katoki Hajime.",
			Difficulty:  DifficultyAdvanced,
			Tags:        []string{"Masterpiece", "Large Kit"},
			Lore:        &Lore{Pilot: "Char Aznable", Height: "25.6m", Armaments: []string{"Beam Shot Rifle", "Funnel x6", "Beam Tomahawk", "Shield"}},
		},
	}
}
