package tools

import (
	"context"
	"fmt"

	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

// LocateResult is the geocoded address shown by the fraud tool.
type LocateResult struct {
	Address string  `json:"address"`
	Score   float64 `json:"score"`
	Type    string  `json:"type"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Locate geocodes an address and pins it on the fraud map.
func (s *Service) Locate(ctx context.Context, sessionID, address string) (domdisp.Entry, error) {
	return s.run(ctx, ToolLocate, sessionID, func(sess *domsess.Session) (outcome, error) {
		c, err := s.gw.Geocode(ctx, sess, address)
		if err != nil {
			return outcome{}, err
		}
		marker := pin(c.Location, blue, 16, domov.ShapeDiamond).
			WithContent("Geocoded Location", c.Address, "Score: "+number(c.Score), "Type: "+c.Type)
		return outcome{
			message: fmt.Sprintf("%s | Score: %s | Type: %s | Coords: %.4f, %.4f",
				c.Address, number(c.Score), c.Type, c.Location.Lon(), c.Location.Lat()),
			data: LocateResult{
				Address: c.Address,
				Score:   c.Score,
				Type:    c.Type,
				Lat:     c.Location.Lat(),
				Lng:     c.Location.Lon(),
			},
			overlay: collection(record.DomainFraud, marker),
		}, nil
	})
}
