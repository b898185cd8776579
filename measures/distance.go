package measures

import "math"

// Distance — Victor–Purpura spike-train distance.
//
// Description:
//
//	The minimum cost of transforming spike train a into spike train b,
//	where inserting or deleting a spike costs 1 and moving a spike by
//	Δt costs q·|Δt|. With q=0 the metric reduces to the difference in
//	spike counts; as q grows it becomes sensitive to precise timing.
//
// Algorithm Outline (rolling two-row DP):
//  1. Let n = len(a), m = len(b). D[i][0] = i, D[0][j] = j.
//  2. For i = 1..n, j = 1..m:
//     D[i][j] = min(D[i-1][j] + 1,                  // delete a[i-1]
//     D[i][j-1] + 1,                  // insert b[j-1]
//     D[i-1][j-1] + q·|a[i-1]-b[j-1]|) // shift
//  3. distance = D[n][m].
//
// Only two rows are kept, so memory is O(min over the second axis).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m)
//
// Errors:
//   - ErrInvalidCost     — q is negative or NaN.
//   - ErrUnorderedTimes  — either train's times are not non-decreasing.
//
// Either train may be empty; the distance is then the other's length.
func Distance(a, b []float64, q float64) (float64, error) {
	if q < 0 || math.IsNaN(q) {
		return 0, ErrInvalidCost
	}
	for _, s := range [][]float64{a, b} {
		for i := 1; i < len(s); i++ {
			if s[i] < s[i-1] {
				return 0, ErrUnorderedTimes
			}
		}
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return float64(n + m), nil
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = float64(j)
	}
	for i := 1; i <= n; i++ {
		curr[0] = float64(i)
		for j := 1; j <= m; j++ {
			del := prev[j] + 1
			ins := curr[j-1] + 1
			shift := prev[j-1] + q*math.Abs(a[i-1]-b[j-1])
			curr[j] = min3(del, ins, shift)
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
