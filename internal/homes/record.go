// Package homes defines the care-home record aggregate produced by the
// upstream report service. Every sub-record is independently optional:
// a nil pointer means the assessment was not available, which is not
// the same thing as a poor result.
package homes

// CQCRating is a Care Quality Commission tier
type CQCRating string

const (
	CQCOutstanding         CQCRating = "outstanding"
	CQCGood                CQCRating = "good"
	CQCRequiresImprovement CQCRating = "requires improvement"
	CQCInadequate          CQCRating = "inadequate"
)

// Record is one care home as delivered by the report service
type Record struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	LocalAuthority string `json:"localAuthority,omitempty"`
	ContactPhone   string `json:"contactPhone,omitempty"`

	// Distance is free text from the provider, e.g. "4.2 km" or
	// "approx. 3 miles away". Parsed leniently by the matcher.
	Distance string `json:"distance,omitempty"`

	WeeklyCost float64 `json:"weeklyCost,omitempty"`

	// MatchScore is the provider's own aggregate suitability score
	// (0-100), present on every record.
	MatchScore int `json:"matchScore"`

	CQC                 *CQCReport           `json:"cqc,omitempty"`
	FSA                 *FSARating           `json:"fsa,omitempty"`
	StaffQuality        *StaffQuality        `json:"staffQuality,omitempty"`
	CommunityReputation *CommunityReputation `json:"communityReputation,omitempty"`
	ComfortLifestyle    *ComfortLifestyle    `json:"comfortLifestyle,omitempty"`
	SafetyAnalysis      *SafetyAnalysis      `json:"safetyAnalysis,omitempty"`
	LocationWellbeing   *LocationWellbeing   `json:"locationWellbeing,omitempty"`
	FinancialStability  *FinancialStability  `json:"financialStability,omitempty"`
	FundingOptions      *FundingOptions      `json:"fundingOptions,omitempty"`
}

// CQCReport is the regulator deep dive
type CQCReport struct {
	OverallRating  CQCRating `json:"overallRating"`
	Safe           CQCRating `json:"safe,omitempty"`
	Effective      CQCRating `json:"effective,omitempty"`
	Caring         CQCRating `json:"caring,omitempty"`
	Responsive     CQCRating `json:"responsive,omitempty"`
	WellLed        CQCRating `json:"wellLed,omitempty"`
	LastInspection string    `json:"lastInspection,omitempty"`
}

// FSARating is the Food Standards Agency hygiene score (0-5)
type FSARating struct {
	Rating     int    `json:"rating"`
	RatingDate string `json:"ratingDate,omitempty"`
}

// StaffQuality summarizes workforce indicators
type StaffQuality struct {
	TurnoverPct   float64 `json:"turnoverPct,omitempty"`
	NurseRatio    float64 `json:"nurseRatio,omitempty"`
	TrainingScore int     `json:"trainingScore,omitempty"`
}

// CommunityReputation aggregates public review signals
type CommunityReputation struct {
	AverageRating float64 `json:"averageRating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// ComfortLifestyle covers day-to-day living quality
type ComfortLifestyle struct {
	EnSuiteRooms      bool `json:"enSuiteRooms,omitempty"`
	GardenAccess      bool `json:"gardenAccess,omitempty"`
	ActivitiesPerWeek int  `json:"activitiesPerWeek,omitempty"`
}

// SafetyAnalysis covers incident history and accessibility.
// WheelchairAccessible stays a pointer: "not assessed" and
// "assessed, not accessible" score differently.
type SafetyAnalysis struct {
	WheelchairAccessible *bool `json:"wheelchairAccessible,omitempty"`
	FallsIncidents       int   `json:"fallsIncidents,omitempty"`
	SafeguardingConcerns int   `json:"safeguardingConcerns,omitempty"`
}

// LocationWellbeing covers the surrounding area
type LocationWellbeing struct {
	GreenSpaceScore int    `json:"greenSpaceScore,omitempty"`
	AirQualityIndex int    `json:"airQualityIndex,omitempty"`
	NoiseLevel      string `json:"noiseLevel,omitempty"`
}

// FinancialStability covers the operator's trading health
type FinancialStability struct {
	CompanyStatus string `json:"companyStatus,omitempty"`
	YearsTrading  int    `json:"yearsTrading,omitempty"`
}

// FundingOptions lists which funding routes the home accepts
type FundingOptions struct {
	AcceptsLocalAuthority bool `json:"acceptsLocalAuthority,omitempty"`
	AcceptsCHC            bool `json:"acceptsCHC,omitempty"`
	FNCAvailable          bool `json:"fncAvailable,omitempty"`
}
