package stats

import "time"

// Ratio divides data by norm per player. Players absent from norm are
// excluded rather than divided by zero: absence, not zero, is the skip
// condition.
func Ratio(data map[string]float64, norm map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for user, v := range data {
		n, ok := norm[user]
		if !ok {
			continue
		}
		out[user] = v / n
	}
	return out
}

// PerLogin turns an event count into a rate per login.
func PerLogin(counts map[string]int, logins map[string]int) map[string]float64 {
	return Ratio(toFloats(counts), toFloats(logins))
}

// TimePer spreads a player's online time over an event count, yielding the
// average online time per event (per chat message, per death, per login).
func TimePer(online map[string]time.Duration, counts map[string]int) map[string]time.Duration {
	out := make(map[string]time.Duration)
	for user, total := range online {
		n, ok := counts[user]
		if !ok {
			continue
		}
		out[user] = time.Duration(float64(total) / float64(n))
	}
	return out
}

func toFloats(m map[string]int) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = float64(v)
	}
	return out
}
