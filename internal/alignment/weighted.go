package alignment

// WeightedCost computes the minimum edit cost between the two sequences when
// each operation is charged the information content of the symbol it touches:
// inserting or substituting-in a transcribed symbol costs info(transcribed),
// omitting a presented symbol costs info(presented), and a match is free.
// With every symbol carrying a positive weight the cost is zero exactly when
// the sequences are equal.
//
// Only two rows of the table are live at a time, so the working set stays
// proportional to the transcribed length.
func WeightedCost(presented, transcribed []rune, info func(rune) float64) float64 {
	n, m := len(presented), len(transcribed)

	// Insertion and substitution weights are reused across every row.
	tInfo := make([]float64, m)
	for j, r := range transcribed {
		tInfo[j] = info(r)
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + tInfo[j-1]
	}

	for i := 1; i <= n; i++ {
		del := info(presented[i-1])
		curr[0] = prev[0] + del
		for j := 1; j <= m; j++ {
			cost := prev[j] + del // omit presented[i-1]
			if ins := curr[j-1] + tInfo[j-1]; ins < cost {
				cost = ins // insert transcribed[j-1]
			}
			diag := prev[j-1]
			if presented[i-1] != transcribed[j-1] {
				diag += tInfo[j-1] // substitute
			}
			if diag < cost {
				cost = diag
			}
			curr[j] = cost
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
