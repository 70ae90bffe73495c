package overlay

import (
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

var (
	red     = domov.RGBA(204, 0, 0, 1)
	orange  = domov.RGBA(255, 97, 43, 1)
	amber   = domov.RGBA(255, 193, 7, 1)
	green   = domov.RGBA(76, 175, 80, 1)
	purple  = domov.RGBA(153, 0, 153, 1)
	blue    = domov.RGBA(1, 102, 245, 1)
	navy    = domov.RGBA(0, 38, 119, 1)
	white   = domov.RGBA(255, 255, 255, 1)
	grey    = domov.RGBA(102, 102, 102, 1)
	dark    = domov.RGBA(51, 51, 51, 1)
	cyan    = domov.RGBA(0, 200, 255, 1)
	skyBlue = domov.RGBA(100, 180, 255, 1)
	clear   = domov.RGBA(0, 0, 0, 0)
)

type bucketColors map[score.Bucket]domov.Color

var palettes = map[record.Domain]bucketColors{
	record.DomainFraud: {
		score.BucketCritical: red.WithAlpha(.85),
		score.BucketHigh:     orange.WithAlpha(.8),
		score.BucketModerate: amber.WithAlpha(.75),
		score.BucketLow:      green.WithAlpha(.7),
	},
	record.DomainAccess: {
		score.BucketCritical: red,
		score.BucketHigh:     orange,
		score.BucketModerate: orange,
		score.BucketLow:      green,
	},
	record.DomainCyber: {
		score.BucketCritical: red.WithAlpha(.85),
		score.BucketHigh:     orange.WithAlpha(.85),
		score.BucketModerate: amber.WithAlpha(.85),
		score.BucketLow:      green.WithAlpha(.85),
	},
	record.DomainRetention: {
		score.BucketCritical: domov.RGBA(153, 0, 0, .8),
		score.BucketHigh:     red.WithAlpha(.7),
		score.BucketModerate: domov.RGBA(255, 152, 0, .65),
		score.BucketLow:      green.WithAlpha(.6),
	},
	record.DomainTransparency: {
		score.BucketCritical: red.WithAlpha(.7),
		score.BucketHigh:     orange.WithAlpha(.7),
		score.BucketModerate: amber.WithAlpha(.7),
		score.BucketLow:      green.WithAlpha(.7),
	},
	record.DomainRx: {
		score.BucketCritical: purple.WithAlpha(.8),
		score.BucketHigh:     red.WithAlpha(.8),
		score.BucketModerate: amber.WithAlpha(.8),
		score.BucketLow:      green.WithAlpha(.8),
	},
}

// ColorFor returns the fill color for a bucket in a domain.
func ColorFor(d record.Domain, b score.Bucket) domov.Color {
	if p, ok := palettes[d]; ok {
		if c, ok := p[b]; ok {
			return c
		}
	}
	return grey
}
