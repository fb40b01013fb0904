package score

import "fmt"

// Policy turns a WordScore into a comparable number; larger is better.
type Policy func(WordScore) float64

// TotalMatches weighs green and yellow matches equally.
func TotalMatches(s WordScore) float64 {
	return float64(s.TotalGreen()) + float64(s.TotalYellow())
}

// GreenWeighted counts a green match twice as much as a yellow one.
func GreenWeighted(s WordScore) float64 {
	return 2*float64(s.TotalGreen()) + float64(s.TotalYellow())
}

// policies maps configuration names to policies.
var policies = map[string]Policy{
	"total": TotalMatches,
	"green": GreenWeighted,
}

// PolicyByName looks up a policy by its configuration name.
func PolicyByName(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("score: unknown policy %q", name)
	}
	return p, nil
}
