package tools

import (
	"context"
	"fmt"

	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	domen "github.com/kailas-cloud/geolens/internal/domain/enrichment"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

// Equity enriches a clicked point on the access tab. Signed-out sessions
// still get a simulated result.
func (s *Service) Equity(ctx context.Context, sessionID string, lat, lng float64) (domdisp.Entry, error) {
	return s.run(ctx, ToolEquity, sessionID, func(sess *domsess.Session) (outcome, error) {
		if err := requireTab(sess, ToolEquity); err != nil {
			return outcome{}, err
		}
		res, err := s.gw.Enrich(ctx, sess, lat, lng, record.DomainAccess)
		if err != nil {
			return outcome{}, err
		}
		marker := pin(geo.Point(lat, lng), blue, 14, domov.ShapeCircle)
		return outcome{
			message: enrichMessage(res),
			data:    res,
			overlay: collection(record.DomainAccess, marker),
		}, nil
	})
}

// Market enriches a clicked point on the retention tab with the market schema.
func (s *Service) Market(ctx context.Context, sessionID string, lat, lng float64) (domdisp.Entry, error) {
	return s.run(ctx, ToolMarket, sessionID, func(sess *domsess.Session) (outcome, error) {
		if err := requireAuth(sess); err != nil {
			return outcome{}, err
		}
		if err := requireTab(sess, ToolMarket); err != nil {
			return outcome{}, err
		}
		res, err := s.gw.Enrich(ctx, sess, lat, lng, record.DomainRetention)
		if err != nil {
			return outcome{}, err
		}
		return outcome{message: enrichMessage(res), data: res}, nil
	})
}

func enrichMessage(r domen.Result) string {
	if r.Provenance() == domen.ProvenanceLive {
		return fmt.Sprintf("%.4f, %.4f LIVE", r.Lat(), r.Lng())
	}
	return fmt.Sprintf("%.4f, %.4f SIMULATED (%s)", r.Lat(), r.Lng(), r.Reason())
}
