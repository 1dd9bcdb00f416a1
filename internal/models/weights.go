package models

// ObjectiveWeights holds the scalar weight of each of the twelve soft
// objective terms. Weights are configuration, not code: substituting a table
// changes priorities without touching the constraint structure.
type ObjectiveWeights struct {
	FrontDeskCoverage        float64 // +1 per covered front-desk slot
	EmployeeLargeDeviation   float64 // -1 per employee 2h+ off target
	DepartmentLargeShortfall float64 // -1 per department 4h+ under target
	DepartmentTarget         float64 // proximity-to-target bonus per department
	TargetAdherence          float64 // per-employee adherence, seniority weighted
	DepartmentSpread         float64 // +1 per distinct active department slot
	CollaborativeHours       float64 // -1 per hour of sustained-overlap shortfall
	DepartmentDayCoverage    float64 // +1 per distinct active department day
	ShiftLength              float64 // +1 per slot, -6 per worked day
	DepartmentScarcity       float64 // -(10/size) per scarce front-desk slot
	UnderclassmanFrontDesk   float64 // -year per front-desk slot
	DepartmentTotal          float64 // +1 per effective department hour
}

// DefaultWeights returns the documented weight table. The ordering matters:
// each tier must dominate the ones below it across any single run.
func DefaultWeights() ObjectiveWeights {
	return ObjectiveWeights{
		FrontDeskCoverage:        10000,
		EmployeeLargeDeviation:   5000,
		DepartmentLargeShortfall: 4000,
		DepartmentTarget:         500,
		TargetAdherence:          100,
		DepartmentSpread:         60,
		CollaborativeHours:       50,
		DepartmentDayCoverage:    30,
		ShiftLength:              20,
		DepartmentScarcity:       2,
		UnderclassmanFrontDesk:   0.5,
		DepartmentTotal:          1,
	}
}

// YearTargetMultiplier scales the individual target-adherence term by
// seniority year: first-years are steered toward their target hardest.
func YearTargetMultiplier(year int) float64 {
	switch year {
	case 1:
		return 1.5
	case 2:
		return 1.25
	case 3:
		return 1.0
	case 4:
		return 0.8
	default:
		return 1.0
	}
}
