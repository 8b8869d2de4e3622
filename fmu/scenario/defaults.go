package scenario

import "fmt"

const (
	// DefaultPlaceholderCount is the size of the output bank used when no scenario is given.
	DefaultPlaceholderCount = 1000
	// DefaultLocalTimeUpper bounds the identity range of the local-time channel.
	DefaultLocalTimeUpper = 1e6
)

// LocalTime returns the local-time channel: linear pass-through over [0, upper].
func LocalTime(upper float64) Variable {
	return Variable{
		Name:          LocalTimeName,
		Interpolation: Linear,
		Series:        []Point{{0, 0}, {upper, upper}},
	}
}

// Placeholders returns n name-only outputs y1..yn with a single (0,0) sample.
func Placeholders(n int) List {
	out := make(List, n)
	for i := range out {
		out[i] = Variable{
			Name:          fmt.Sprintf("y%d", i+1),
			Interpolation: ZeroOrderHold,
			Series:        []Point{{0, 0}},
		}
	}
	return out
}

// Bank returns the local-time channel followed by n placeholders.
func Bank(upper float64, n int) List {
	return append(List{LocalTime(upper)}, Placeholders(n)...)
}

// Default returns Bank(DefaultLocalTimeUpper, DefaultPlaceholderCount).
func Default() List {
	return Bank(DefaultLocalTimeUpper, DefaultPlaceholderCount)
}

// Load decodes text, or returns fallback when text is empty. The codec is not
// consulted for empty input.
func Load(text string, fallback List) (List, error) {
	if text == "" {
		return fallback, nil
	}
	return Decode(text)
}
