package service

const (
	MonthsPerYear = 12

	EffectiveTaxRate = 0.30 // flat, used for price to earnings
	DiscountRate     = 0.15 // NPV hurdle rate
	ProjectionYears  = 5

	MaxLoanTermYears     = 50
	MaxInterestRatePct   = 100.0
	LoanBalanceTolerance = 0.01 // balance considered paid off

	// Scenario sweep bounds
	DefaultMaxTermRangeYears = 30
)

// EBITDA growth applied year over year during the projection.
var growthSchedule = [ProjectionYears]float64{0.15, 0.12, 0.10, 0.08, 0.06}

// Risk score
const (
	riskBaseline              = 100.0
	riskRevenueThreshold      = 2_000_000.0
	riskRevenuePenaltyFactor  = 1.5
	riskHighMarginThreshold   = 0.3
	riskHighMarginPenalty     = 10.0
	riskRecurringPenaltyRatio = 0.5
	competitionPenaltyCap     = 20.0
)

// Growth potential weights
const (
	historicalGrowthWeight = 0.4
	industryGrowthWeight   = 0.3
	marketGrowthWeight     = 0.3
)

// Market position and competitive threat
const (
	recurringStrengthCap = 30.0
	threatPriceFactor    = 5.0
	threatRecurringRatio = 2.0
	scoreCeiling         = 100.0
)

// Evaluator thresholds
const (
	lowMultipleThreshold  = 4.0
	highMultipleThreshold = 7.0

	strongDSCRThreshold    = 2.0
	healthyDSCRThreshold   = 1.5
	minimumDSCRThreshold   = 1.25
	recurringPctThreshold  = 30.0
	concentrationThreshold = 20.0
	establishedYears       = 10

	baselineScore       = 70.0
	strongDSCRBonus     = 10.0
	healthyDSCRBonus    = 5.0
	weakDSCRPenalty     = 10.0
	lowMultipleBonus    = 10.0
	highMultiplePenalty = 10.0
	findingWeight       = 3.0

	strongBuyScore = 85.0
	buyScore       = 70.0
	neutralScore   = 50.0
	cautionScore   = 30.0
)
