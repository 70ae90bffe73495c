package score

import "github.com/kailas-cloud/geolens/internal/domain/record"

// Bucket is a severity class derived from a score.
type Bucket string

const (
	BucketCritical Bucket = "critical"
	BucketHigh     Bucket = "high"
	BucketModerate Bucket = "moderate"
	BucketLow      Bucket = "low"
)

// scale holds step thresholds. For inverted scales a low score is severe.
type scale struct {
	critical, high, moderate float64
	inverted                 bool
}

var scales = map[record.Domain]scale{
	record.DomainFraud:        {critical: 80, high: 60, moderate: 40},
	record.DomainAccess:       {critical: 35, high: 50, moderate: 50, inverted: true},
	record.DomainCyber:        {critical: 90, high: 70, moderate: 40},
	record.DomainRetention:    {critical: 90, high: 75, moderate: 60},
	record.DomainTransparency: {critical: 60, high: 75, moderate: 90, inverted: true},
	record.DomainRx:           {critical: 90, high: 70, moderate: 40},
}

// Classify maps a domain score to its bucket.
func Classify(d record.Domain, s int) Bucket {
	return classify(d, float64(s))
}

// classify compares an unrounded value against the domain scale, so
// thresholds hold before any rounding of the displayed score.
func classify(d record.Domain, s float64) Bucket {
	sc, ok := scales[d]
	if !ok {
		return BucketLow
	}
	if sc.inverted {
		switch {
		case s < sc.critical:
			return BucketCritical
		case s < sc.high:
			return BucketHigh
		case s < sc.moderate:
			return BucketModerate
		}
		return BucketLow
	}
	switch {
	case s >= sc.critical:
		return BucketCritical
	case s >= sc.high:
		return BucketHigh
	case s >= sc.moderate:
		return BucketModerate
	}
	return BucketLow
}
