package cascade

// Analysis summarizes a finished simulation.
type Analysis struct {
	InitialRate      float64 `json:"initial_cooperation"`
	FinalRate        float64 `json:"final_cooperation"`
	MaxRate          float64 `json:"max_cooperation"`
	TippingDay       int     `json:"tipping_point_day"` // 0 when never reached
	TippingReached   bool    `json:"tipping_point_reached"`
	FinalCooperators int     `json:"n_final_cooperators"`
	Growth           float64 `json:"cooperation_growth"`
}

// TippingPoint returns the first 1-based day whose cooperation rate strictly
// exceeds 0.5. ok is false when the rate never crosses.
func TippingPoint(history []float64) (day int, ok bool) {
	for i, rate := range history {
		if rate > 0.5 {
			return i + 1, true
		}
	}
	return 0, false
}

// Analyze derives summary statistics from a simulation result.
func Analyze(res *Result) Analysis {
	a := Analysis{FinalCooperators: len(res.Final)}
	if len(res.History) == 0 {
		return a
	}
	a.InitialRate = res.History[0]
	a.FinalRate = res.History[len(res.History)-1]
	for _, r := range res.History {
		if r > a.MaxRate {
			a.MaxRate = r
		}
	}
	a.TippingDay, a.TippingReached = TippingPoint(res.History)
	a.Growth = a.FinalRate - a.InitialRate
	return a
}
