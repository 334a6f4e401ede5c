// Package verdict turns the sigmoid output of the cat/dog classifier into
// the label and confidence shown to the user.
package verdict

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoSelection is returned in place of a score when the user cancels the file
// dialog. Any score outside [0, 1] is treated the same way.
const NoSelection float32 = 2.0

// Threshold separates the two classes. A score equal to it is a cat.
const Threshold = 0.5

// Label identifies a predicted class.
type Label string

const (
	Cat Label = "cat"
	Dog Label = "dog"
)

// Verdict is the interpretation of a single classifier score.
type Verdict struct {
	Label Label
	// Confidence is a percentage in [0, 100] rounded to two decimals.
	Confidence float64
	Score      float32
}

// Interpret maps a score to a verdict. The second return value is false when
// the score is not a probability (the NoSelection sentinel, NaN, or anything
// outside [0, 1]); callers must then leave their display untouched.
func Interpret(score float32) (Verdict, bool) {
	s := float64(score)
	if math.IsNaN(s) || s < 0 || s > 1 {
		return Verdict{}, false
	}

	v := Verdict{Score: score}
	if s > Threshold {
		v.Label = Dog
		v.Confidence = round2((s - Threshold) / Threshold * 100)
	} else {
		v.Label = Cat
		v.Confidence = round2((Threshold - s) / Threshold * 100)
	}
	return v, true
}

// Text renders the verdict the way the result label shows it,
// e.g. "It's a dog 87.5% sure" or "It's a cat 100.0% sure".
func (v Verdict) Text() string {
	return fmt.Sprintf("It's a %s %s%% sure", v.Label, formatPercent(v.Confidence))
}

// formatPercent prints the shortest decimal form, keeping one fractional
// digit for whole numbers.
func formatPercent(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
