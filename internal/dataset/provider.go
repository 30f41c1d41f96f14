package dataset

import (
	"math/rand"

	"github.com/drakos74/edu-cluster/internal/model"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed int64 = 42

// Provinces are the province names in table order.
var Provinces = []string{
	"Aceh", "Sumatra Utara", "Sumatra Barat", "Riau", "Jambi",
	"Sumatra Selatan", "Bangka Belitung", "Lampung", "DKI Jakarta",
	"Jawa Barat", "Jawa Tengah", "Yogyakarta", "Jawa Timur",
	"Banten", "Bali", "Nusa Tenggara Barat", "Nusa Tenggara Timur",
	"Kalimantan Barat", "Kalimantan Tengah", "Kalimantan Selatan",
	"Kalimantan Timur", "Sulawesi Utara", "Sulawesi Tengah",
	"Sulawesi Selatan", "Sulawesi Tenggara", "Gorontalo",
	"Sulawesi Barat", "Maluku", "Maluku Utara", "Papua Barat",
	"Papua",
}

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int
	Max int
}

func (r Range) draw(rnd *rand.Rand) int {
	return r.Min + rnd.Intn(r.Max-r.Min)
}

// Contains checks if v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v < r.Max
}

// Ranges define the interval each indicator is drawn from.
var Ranges = map[model.Feature]Range{
	model.Students:             {Min: 100000, Max: 500000},
	model.Dropouts:             {Min: 5, Max: 50},
	model.TeacherQualification: {Min: 50, Max: 95},
	model.GoodClassrooms:       {Min: 30, Max: 90},
}

// Provider supplies the province table.
type Provider interface {
	Load(seed int64) model.Table
}

// Generator produces a synthetic table from a seeded source.
type Generator struct {
	provinces []string
}

// NewGenerator creates a new generator for the given provinces.
// With no provinces given it falls back to the full province list.
func NewGenerator(provinces ...string) *Generator {
	if len(provinces) == 0 {
		provinces = Provinces
	}
	return &Generator{
		provinces: provinces,
	}
}

// Load generates the table for the given seed.
// Values are drawn column by column, so the same seed always produces the same table.
func (g *Generator) Load(seed int64) model.Table {
	rnd := rand.New(rand.NewSource(seed))
	table := make(model.Table, len(g.provinces))
	for i, name := range g.provinces {
		table[i].Name = name
	}
	for _, f := range model.Features {
		r := Ranges[f]
		for i := range table {
			v := r.draw(rnd)
			switch f {
			case model.Students:
				table[i].Students = v
			case model.Dropouts:
				table[i].Dropouts = v
			case model.TeacherQualification:
				table[i].TeacherQualification = v
			case model.GoodClassrooms:
				table[i].GoodClassrooms = v
			}
		}
	}
	return table
}

// Static serves a fixed table regardless of the seed.
type Static struct {
	table model.Table
}

// NewStatic creates a provider for the given table.
func NewStatic(table model.Table) *Static {
	return &Static{table: table}
}

// Load returns a copy of the static table.
func (s *Static) Load(seed int64) model.Table {
	return s.table.Copy()
}
