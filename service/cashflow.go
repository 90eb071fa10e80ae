package service

import "math"

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

// ProjectCashFlows returns year 0 through year 5. Year 0 is the equity
// outflow; later years compound EBITDA along growthSchedule and subtract
// debt service and the owner's salary.
func ProjectCashFlows(downPayment, ebitda, annualDebtService, ownerSalary float64) []float64 {
	flows := make([]float64, 0, ProjectionYears+1)
	flows = append(flows, -downPayment)

	grown := ebitda
	for _, rate := range growthSchedule {
		grown *= 1 + rate
		flows = append(flows, roundHalfUp(grown-annualDebtService-ownerSalary))
	}
	return flows
}

// NetPresentValue discounts flows[t] by (1+rate)^t. Year 0 is undiscounted.
func NetPresentValue(flows []float64, rate float64) float64 {
	npv := 0.0
	for t, flow := range flows {
		npv += flow / math.Pow(1+rate, float64(t))
	}
	return npv
}

// ApproximateIRR is the mean yearly return over the initial outlay, in
// percent. It is not a root of the NPV function. A zero outlay yields 0.
func ApproximateIRR(flows []float64) float64 {
	if len(flows) < 2 || flows[0] == 0 {
		return 0
	}

	sum := 0.0
	for _, flow := range flows[1:] {
		sum += flow
	}
	average := sum / float64(len(flows)-1)

	return average / math.Abs(flows[0]) * 100
}
