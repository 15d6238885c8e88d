// Package catalog holds the read-only provider directory and the
// search/filter predicate applied to it.
package catalog

// Barber is one provider catalog entry. TimeSlots mixes period tokens
// ("08:00-12:00") with specific times ("15:30"); both kinds feed the time
// filter.
type Barber struct {
	ID            string
	Name          string
	Rating        float64
	ReviewCount   int
	Location      string
	Distance      string
	DistanceKm    float64
	Services      []string
	Prices        map[string]float64
	Avatar        string
	NextAvailable string
	Specialties   []string
	TimeSlots     []string
}

var barbers = []Barber{
	{
		ID:            "1",
		Name:          "Carlos Mendes",
		Rating:        4.8,
		ReviewCount:   127,
		Location:      "Centro, São Paulo",
		Distance:      "0.5 km",
		DistanceKm:    0.5,
		Services:      []string{"Corte Masculino", "Barba", "Bigode", "Sobrancelha"},
		Prices:        map[string]float64{"Corte Masculino": 35, "Barba": 25, "Bigode": 15, "Sobrancelha": 10},
		Avatar:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		NextAvailable: "Hoje às 15:30",
		Specialties:   []string{"Cortes Clássicos", "Barbas Estilizadas"},
		TimeSlots:     []string{"08:00-12:00", "14:00", "15:30", "16:00", "16:30"},
	},
	{
		ID:            "2",
		Name:          "Roberto Silva",
		Rating:        4.9,
		ReviewCount:   203,
		Location:      "Vila Madalena, São Paulo",
		Distance:      "1.2 km",
		DistanceKm:    1.2,
		Services:      []string{"Corte Masculino", "Barba", "Relaxamento"},
		Prices:        map[string]float64{"Corte Masculino": 40, "Barba": 30, "Relaxamento": 80},
		Avatar:        "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		NextAvailable: "Amanhã às 09:00",
		Specialties:   []string{"Cortes Modernos", "Tratamentos"},
		TimeSlots:     []string{"08:00-12:00", "12:00-18:00", "09:00", "10:00", "11:00"},
	},
	{
		ID:            "3",
		Name:          "André Costa",
		Rating:        4.7,
		ReviewCount:   89,
		Location:      "Pinheiros, São Paulo",
		Distance:      "2.1 km",
		DistanceKm:    2.1,
		Services:      []string{"Corte Masculino", "Barba", "Bigode"},
		Prices:        map[string]float64{"Corte Masculino": 32, "Barba": 22, "Bigode": 12},
		Avatar:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
		NextAvailable: "Hoje às 17:00",
		Specialties:   []string{"Cortes Tradicionais"},
		TimeSlots:     []string{"12:00-18:00", "18:00-22:00", "17:00", "17:30", "18:00"},
	},
	{
		ID:            "4",
		Name:          "Fernando Barbosa",
		Rating:        4.6,
		ReviewCount:   156,
		Location:      "Moema, São Paulo",
		Distance:      "3.5 km",
		DistanceKm:    3.5,
		Services:      []string{"Corte Masculino", "Barba", "Relaxamento", "Sobrancelha"},
		Prices:        map[string]float64{"Corte Masculino": 45, "Barba": 28, "Relaxamento": 90, "Sobrancelha": 12},
		Avatar:        "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=150&h=150&fit=crop&crop=face",
		NextAvailable: "Hoje às 10:00",
		Specialties:   []string{"Cortes Premium", "Relaxamento Capilar"},
		TimeSlots:     []string{"08:00-12:00", "10:00", "10:30", "11:00"},
	},
	{
		ID:            "5",
		Name:          "Lucas Ferreira",
		Rating:        4.5,
		ReviewCount:   78,
		Location:      "Itaim Bibi, São Paulo",
		Distance:      "4.8 km",
		DistanceKm:    4.8,
		Services:      []string{"Corte Masculino", "Barba"},
		Prices:        map[string]float64{"Corte Masculino": 38, "Barba": 25},
		Avatar:        "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=150&h=150&fit=crop&crop=face",
		NextAvailable: "Amanhã às 14:00",
		Specialties:   []string{"Cortes Juvenis"},
		TimeSlots:     []string{"12:00-18:00", "14:00", "14:30", "15:00", "15:30"},
	},
}

// Catalog returns the provider directory. Callers must treat entries as
// read-only.
func Catalog() []Barber {
	return barbers
}

// ByID looks up a catalog entry.
func ByID(id string) (Barber, bool) {
	for _, b := range barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}

var serviceDurations = map[string]int{
	"Corte Masculino": 30,
	"Barba":           20,
	"Bigode":          10,
	"Sobrancelha":     10,
	"Relaxamento":     60,
}

// ServiceDuration returns the duration in minutes for a service name,
// defaulting to 30 for services without a known duration.
func ServiceDuration(name string) int {
	if d, ok := serviceDurations[name]; ok {
		return d
	}
	return 30
}
