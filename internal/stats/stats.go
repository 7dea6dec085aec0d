package stats

// Summary aggregates a user's urge-log history for reporting. Modes are nil
// when the user has no logs; ties are broken by the first occurrence in log
// order so repeated calls always agree.
type Summary struct {
	TotalTransformations int     `json:"totalTransformations"`
	TotalPointsEarned    int     `json:"totalPointsEarned"`
	TotalSpiritualGrowth int     `json:"totalSpiritualGrowth"`
	MostCommonTrigger    *string `json:"mostCommonTrigger"`
	MostUsedCoping       *string `json:"mostUsedCoping"`
	AverageIntensity     float64 `json:"averageIntensity"`
}
