package domain

type Industry string

const (
	IndustryTech          Industry = "tech"
	IndustryServices      Industry = "services"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryConstruction  Industry = "construction"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFood          Industry = "food"
	IndustryOther         Industry = "other"
)

// Industries lists every accepted industry in form order.
var Industries = []Industry{
	IndustryTech,
	IndustryServices,
	IndustryRetail,
	IndustryManufacturing,
	IndustryConstruction,
	IndustryHealthcare,
	IndustryFood,
	IndustryOther,
}

// IndustryProfile groups the per-industry constants used by the scoring
// functions. Industries without an entry score zero everywhere.
type IndustryProfile struct {
	RiskAdjustment float64 // added to the risk score
	MarketScore    float64 // weighted into growth potential
	MarketBase     float64 // base of the market position score
	Vulnerability  float64 // added to the competitive threat
}

var industryProfiles = map[Industry]IndustryProfile{
	IndustryTech:          {RiskAdjustment: 10, MarketScore: 10, MarketBase: 40, Vulnerability: 10},
	IndustryRetail:        {RiskAdjustment: 5, MarketScore: 7.5, MarketBase: 30, Vulnerability: 20},
	IndustryManufacturing: {RiskAdjustment: -10, MarketScore: 5, MarketBase: 20, Vulnerability: 30},
}

// Valid reports whether i is one of the known industries.
func (i Industry) Valid() bool {
	for _, known := range Industries {
		if i == known {
			return true
		}
	}
	return false
}

func (i Industry) Profile() IndustryProfile {
	return industryProfiles[i]
}
