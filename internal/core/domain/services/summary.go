package services

// BatchSummary aggregates one ranked batch: how many orders fell into each
// priority class and the average priority score.
type BatchSummary struct {
	Critical int
	High     int
	Medium   int
	Low      int
	AvgScore float64
}

// SummarizeScores computes the class counts and average score of a scored
// batch. The average is rounded to two decimals like the scores themselves;
// an empty batch summarizes to all zeroes.
func SummarizeScores(scored []ScoredOrder) BatchSummary {
	summary := BatchSummary{}
	if len(scored) == 0 {
		return summary
	}

	total := 0.0
	for _, s := range scored {
		total += s.PriorityScore

		switch s.PriorityClass {
		case ClassCritical:
			summary.Critical++
		case ClassHigh:
			summary.High++
		case ClassMedium:
			summary.Medium++
		default:
			summary.Low++
		}
	}

	summary.AvgScore = roundScore(total / float64(len(scored)))
	return summary
}
