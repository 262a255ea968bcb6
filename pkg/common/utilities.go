package common

func MinOf(vars ...int) int {
	min := vars[0]

	for _, i := range vars {
		if min > i {
			min = i
		}
	}

	return min
}

func MaxOf(vars ...int) int {
	max := vars[0]

	for _, i := range vars {
		if max < i {
			max = i
		}
	}

	return max
}

// ClampFloat bounds value to [low, high].
func ClampFloat(low, high, value float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}

	return value
}
