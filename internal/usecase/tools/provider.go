package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

// ProviderResult describes the network region nearest to a searched address.
type ProviderResult struct {
	Address    string  `json:"address"`
	RegionID   string  `json:"region_id"`
	Region     string  `json:"region"`
	Providers  int     `json:"providers"`
	Adequacy   int     `json:"adequacy"`
	WaitDays   float64 `json:"wait_days"`
	DistanceKm float64 `json:"distance_km"`
	Filter     string  `json:"filter"`
}

// SearchProvider geocodes an address and reports the adequacy of the nearest
// transparency region under the given plan and specialty filters.
func (s *Service) SearchProvider(
	ctx context.Context, sessionID, address, plan, specialty string,
) (domdisp.Entry, error) {
	return s.run(ctx, ToolProvider, sessionID, func(sess *domsess.Session) (outcome, error) {
		if err := requireAuth(sess); err != nil {
			return outcome{}, err
		}
		f, err := score.ParseFilter(plan, specialty)
		if err != nil {
			return outcome{}, err
		}
		c, err := s.gw.Geocode(ctx, sess, address)
		if err != nil {
			return outcome{}, err
		}
		region, err := nearest(s.data.Records(record.DomainTransparency), c.Location)
		if err != nil {
			return outcome{}, err
		}

		a := region.Attributes()
		res := ProviderResult{
			Address:    c.Address,
			RegionID:   region.ID(),
			Region:     region.Name(),
			Providers:  int(a.NumberOr("providers", 0)),
			Adequacy:   score.Adequacy(region, f),
			WaitDays:   a.NumberOr("wait", 0),
			DistanceKm: math.Round(geo.DistanceKm(c.Location, region.Point())*10) / 10,
			Filter:     f.Label(),
		}
		marker := pin(c.Location, orange, 14, domov.ShapeCircle).WithContent("Your Location", c.Address)
		return outcome{
			message: fmt.Sprintf("Nearest Region: %s | Providers: %s | Adequacy: %d%% | Avg Wait: %s days",
				res.Region, humanize.Comma(int64(res.Providers)), res.Adequacy, number(res.WaitDays)),
			data:    res,
			overlay: collection(record.DomainTransparency, marker),
		}, nil
	})
}
