package util

func Clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// Round1 rounds to one decimal place, the precision every rate and score in
// the tool output is reported at.
func Round1(value float64) float64 {
	if value < 0 {
		return float64(int64(value*10-0.5)) / 10
	}
	return float64(int64(value*10+0.5)) / 10
}

// Round2 rounds to two decimal places (percentage shares).
func Round2(value float64) float64 {
	if value < 0 {
		return float64(int64(value*100-0.5)) / 100
	}
	return float64(int64(value*100+0.5)) / 100
}
