package catalog

import (
	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
)

type Series string

const (
	SeriesUC    Series = "Universal Century"
	SeriesSEED  Series = "Gundam SEED"
	SeriesOO    Series = "Gundam 00"
	SeriesIBO   Series = "Iron-Blooded Orphans"
	SeriesWitch Series = "Witch from Mercury"
)

type Grade string

const (
	GradeHG Grade = "High Grade"
	GradeRG Grade = "Real Grade"
	GradeMG Grade = "Master Grade"
	GradePG Grade = "Perfect Grade"
	GradeSD Grade = "Super Deformed"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

var (
	AllSeries = []Series{SeriesUC, SeriesSEED, SeriesOO, SeriesIBO, SeriesWitch}
	AllGrades = []Grade{GradeHG, GradeRG, GradeMG, GradePG, GradeSD}
)

type Lore struct {
	Pilot     string   `json:"pilot"`
	Height    string   `json:"height"`
	Armaments []string `json:"armaments"`
}

// Product prices are integer cents.
type Product struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Series         Series     `json:"series"`
	Grade          Grade      `json:"grade"`
	Scale          string     `json:"scale"`
	PriceCents     int64      `json:"price_cents"`
	SalePriceCents *int64     `json:"sale_price_cents,omitempty"`
	Image          string     `json:"image"`
	Description    string     `json:"description"`
	Difficulty     Difficulty `json:"difficulty"`
	IsNew          bool       `json:"is_new,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Lore           *Lore      `json:"lore,omitempty"`
}

func (p Product) OnSale() bool { return p.SalePriceCents != nil }

// EffectivePrice is what one unit costs in the cart.
func (p Product) EffectivePrice() int64 {
	if p.SalePriceCents != nil {
		return *p.SalePriceCents
	}
	return p.PriceCents
}

func (p Product) Validate() error {
	if p.ID == "" {
		return apperr.Validation("product id is required")
	}
	if p.PriceCents < 0 {
		return apperr.Validationf("product %s: negative price", p.ID)
	}
	if p.SalePriceCents != nil && (*p.SalePriceCents < 0 || *p.SalePriceCents >= p.PriceCents) {
		return apperr.Validationf("product %s: sale price must be below base price", p.ID)
	}
	return nil
}
