// pkg/classify/classify.go
package classify

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidycheck/tidycheck/pkg/frame"
)

// Type is the semantic type of a column, as exposed to external consumers.
// The chart-selection collaborator relies on a column receiving the same
// type here that it received during cleaning.
type Type string

const (
	TypeNumeric      Type = "numeric"
	TypeTemporal     Type = "temporal"
	TypeCategorical  Type = "categorical"
	TypeUnclassified Type = "unclassified"
)

// Verdict is the internal classification outcome. It distinguishes columns
// that already hold a type from columns that are candidates for conversion,
// which is what the cleaning transformer dispatches on.
type Verdict int

const (
	// VerdictUnclassified means the column had no values to sample.
	VerdictUnclassified Verdict = iota
	// VerdictNumeric means every sampled value is already int or float.
	VerdictNumeric
	// VerdictTemporal means every sampled value is already a time cell.
	VerdictTemporal
	// VerdictDateCandidate means the sample looks date-like and the column
	// should be parsed and canonicalized.
	VerdictDateCandidate
	// VerdictNumericCandidate means the sample is numeric-coercible and the
	// column should be converted.
	VerdictNumericCandidate
	// VerdictText means the column is categorical/free text.
	VerdictText
)

// Type collapses a verdict to the stable external type contract.
func (v Verdict) Type() Type {
	switch v {
	case VerdictNumeric, VerdictNumericCandidate:
		return TypeNumeric
	case VerdictTemporal, VerdictDateCandidate:
		return TypeTemporal
	case VerdictText:
		return TypeCategorical
	default:
		return TypeUnclassified
	}
}

// Default thresholds and sample cap. The thresholds are design constants;
// comparisons against them are strict, so a sample sitting exactly at the
// threshold is not classified as that type.
const (
	DefaultDateThreshold    = 0.70
	DefaultNumericThreshold = 0.80
	DefaultSampleSize       = 100
)

// datePatterns is the fixed set of date-like shapes the classifier
// recognizes. Matching any one pattern counts the value as date-like.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),         // YYYY-MM-DD
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),         // MM/DD/YYYY
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`),         // MM-DD-YYYY
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),   // M/D/YY or M/D/YYYY
	regexp.MustCompile(`^[A-Za-z]+ \d{1,2}, \d{4}$`),  // Month DD, YYYY
}

// numericFormatting strips the formatting characters tolerated by the
// numeric-coercibility check.
var numericFormatting = strings.NewReplacer(",", "", "$", "", "%", "")

// Classifier infers the semantic type of a column from a bounded sample of
// its non-missing values. Classification is deterministic: the decision is
// an ordered rule table over the sample, first match wins.
type Classifier struct {
	dateThreshold    float64
	numericThreshold float64
	sampleSize       int
}

// New creates a classifier with explicit thresholds and sample cap.
func New(dateThreshold, numericThreshold float64, sampleSize int) *Classifier {
	return &Classifier{
		dateThreshold:    dateThreshold,
		numericThreshold: numericThreshold,
		sampleSize:       sampleSize,
	}
}

// Default returns a classifier with the standard thresholds.
func Default() *Classifier {
	return New(DefaultDateThreshold, DefaultNumericThreshold, DefaultSampleSize)
}

// Classify inspects a column and returns its verdict.
func (c *Classifier) Classify(column []frame.Value) Verdict {
	sample := c.sample(column)
	if len(sample) == 0 {
		return VerdictUnclassified
	}

	if allKinds(sample, func(k frame.Kind) bool { return k.IsNumeric() }) {
		return VerdictNumeric
	}
	if allKinds(sample, func(k frame.Kind) bool { return k == frame.KindTime }) {
		return VerdictTemporal
	}
	if c.dateRatio(sample) > c.dateThreshold {
		return VerdictDateCandidate
	}
	if c.numericRatio(sample) > c.numericThreshold {
		return VerdictNumericCandidate
	}
	return VerdictText
}

// Column classifies a column and returns the external semantic type.
func (c *Classifier) Column(column []frame.Value) Type {
	return c.Classify(column).Type()
}

// sample returns up to sampleSize non-missing values from the head of the
// column. Already-homogeneous columns classify identically for any larger
// sample, so the cap does not change decisions for clean data.
func (c *Classifier) sample(column []frame.Value) []frame.Value {
	sample := make([]frame.Value, 0, c.sampleSize)
	for _, v := range column {
		if v.IsNull() {
			continue
		}
		sample = append(sample, v)
		if len(sample) == c.sampleSize {
			break
		}
	}
	return sample
}

func (c *Classifier) dateRatio(sample []frame.Value) float64 {
	matches := 0
	for _, v := range sample {
		if MatchesDatePattern(strings.TrimSpace(v.String())) {
			matches++
		}
	}
	return float64(matches) / float64(len(sample))
}

func (c *Classifier) numericRatio(sample []frame.Value) float64 {
	parsed := 0
	for _, v := range sample {
		if IsNumericCoercible(v) {
			parsed++
		}
	}
	return float64(parsed) / float64(len(sample))
}

// MatchesDatePattern reports whether a single trimmed string matches any of
// the recognized date shapes.
func MatchesDatePattern(s string) bool {
	for _, p := range datePatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// IsNumericCoercible reports whether a value would survive numeric coercion
// after stripping thousands separators, currency symbols and percent signs.
// Infinity and NaN spellings do not count: coercion turns them into missing
// cells, not numbers.
func IsNumericCoercible(v frame.Value) bool {
	if v.Kind().IsNumeric() {
		return true
	}
	s := strings.TrimSpace(numericFormatting.Replace(v.String()))
	if s == "" {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func allKinds(sample []frame.Value, ok func(frame.Kind) bool) bool {
	for _, v := range sample {
		if !ok(v.Kind()) {
			return false
		}
	}
	return true
}
