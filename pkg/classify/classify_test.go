// pkg/classify/classify_test.go
package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tidycheck/tidycheck/pkg/frame"
)

func texts(vals ...string) []frame.Value {
	out := make([]frame.Value, len(vals))
	for i, v := range vals {
		out[i] = frame.Text(v)
	}
	return out
}

func TestClassifyAlreadyNumeric(t *testing.T) {
	c := Default()
	column := []frame.Value{frame.Int(1), frame.Float(2.5), frame.Null(), frame.Int(3)}
	assert.Equal(t, VerdictNumeric, c.Classify(column))
	assert.Equal(t, TypeNumeric, c.Column(column))
}

func TestClassifyAlreadyTemporal(t *testing.T) {
	c := Default()
	column := []frame.Value{
		frame.Time(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		frame.Null(),
		frame.Time(time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, VerdictTemporal, c.Classify(column))
	assert.Equal(t, TypeTemporal, c.Column(column))
}

func TestClassifyDateCandidateBoundary(t *testing.T) {
	c := Default()

	// 7 of 10 date-like is exactly the 0.70 threshold; strict comparison
	// means the column is not temporal.
	atThreshold := texts(
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
		"apple", "banana", "cherry",
	)
	assert.Equal(t, VerdictText, c.Classify(atThreshold))

	// 8 of 10 crosses it.
	aboveThreshold := texts(
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07", "01/08/2024",
		"apple", "banana",
	)
	assert.Equal(t, VerdictDateCandidate, c.Classify(aboveThreshold))
	assert.Equal(t, TypeTemporal, c.Column(aboveThreshold))
}

func TestClassifyNumericCandidateBoundary(t *testing.T) {
	c := Default()

	// 4 of 5 parse after formatting is stripped: exactly 0.80, strict
	// comparison keeps the column categorical.
	atThreshold := texts("1,000", "$2,500", "3,000", "4000", "bad")
	assert.Equal(t, VerdictText, c.Classify(atThreshold))

	// A fifth parseable value pushes past the threshold.
	aboveThreshold := texts("1,000", "$2,500", "3,000", "4,000", "5000", "bad")
	assert.Equal(t, VerdictNumericCandidate, c.Classify(aboveThreshold))
	assert.Equal(t, TypeNumeric, c.Column(aboveThreshold))
}

func TestClassifyCategoricalFallback(t *testing.T) {
	c := Default()
	column := texts("red", "green", "blue")
	assert.Equal(t, VerdictText, c.Classify(column))
	assert.Equal(t, TypeCategorical, c.Column(column))
}

func TestClassifyEmptySample(t *testing.T) {
	c := Default()
	assert.Equal(t, VerdictUnclassified, c.Classify(nil))
	assert.Equal(t, TypeUnclassified, c.Column([]frame.Value{frame.Null(), frame.Null()}))
}

func TestClassifyDeterministic(t *testing.T) {
	c := Default()
	column := texts("2024-01-01", "2024-01-02", "2024-01-03", "x")
	first := c.Classify(column)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(column))
	}
}

func TestClassifySampleCapDoesNotChangeHomogeneousDecision(t *testing.T) {
	c := Default()
	big := make([]frame.Value, 0, 500)
	for i := 0; i < 500; i++ {
		big = append(big, frame.Text("2024-01-05"))
	}
	assert.Equal(t, VerdictDateCandidate, c.Classify(big))
}

func TestMatchesDatePattern(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "2024-01-05", want: true},
		{value: "01/05/2024", want: true},
		{value: "01-05-2024", want: true},
		{value: "1/5/24", want: true},
		{value: "1/5/2024", want: true},
		{value: "January 5, 2024", want: true},
		{value: "2024-01-05T00:00:00Z", want: false},
		{value: "not a date", want: false},
		{value: "1000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesDatePattern(tt.value))
		})
	}
}

func TestIsNumericCoercible(t *testing.T) {
	assert.True(t, IsNumericCoercible(frame.Text("1,000")))
	assert.True(t, IsNumericCoercible(frame.Text("$2,500.75")))
	assert.True(t, IsNumericCoercible(frame.Text("15%")))
	assert.True(t, IsNumericCoercible(frame.Int(3)))
	assert.False(t, IsNumericCoercible(frame.Text("bad")))
	assert.False(t, IsNumericCoercible(frame.Text("")))

	// Infinity and NaN spellings coerce to missing, not to numbers.
	assert.False(t, IsNumericCoercible(frame.Text("inf")))
	assert.False(t, IsNumericCoercible(frame.Text("-Inf")))
	assert.False(t, IsNumericCoercible(frame.Text("Infinity")))
	assert.False(t, IsNumericCoercible(frame.Text("NaN")))
}
