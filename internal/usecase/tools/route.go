package tools

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/geolens/internal/domain"
	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

// RouteResult is the failover route between two clicked facilities.
type RouteResult struct {
	Stops   int     `json:"stops"`
	Miles   float64 `json:"miles,omitempty"`
	Minutes float64 `json:"minutes,omitempty"`
	Steps   int     `json:"steps,omitempty"`
}

// AddRouteStop records a click on the cyber tab. The second click solves the
// route; pending stops are cleared before solving, so a failed solve starts over.
func (s *Service) AddRouteStop(ctx context.Context, sessionID string, lat, lng float64) (domdisp.Entry, error) {
	return s.run(ctx, ToolRoute, sessionID, func(sess *domsess.Session) (outcome, error) {
		if err := requireAuth(sess); err != nil {
			return outcome{}, err
		}
		if err := requireTab(sess, ToolRoute); err != nil {
			return outcome{}, err
		}
		if !geo.ValidateCoordinates(lat, lng) {
			return outcome{}, fmt.Errorf("%w: coordinates out of range", domain.ErrInvalidInput)
		}

		stops, ready := sess.AddRouteStop(geo.Point(lat, lng))
		if err := s.sessions.Save(ctx, sess); err != nil {
			return outcome{}, fmt.Errorf("save route stops: %w", err)
		}
		if !ready {
			return outcome{
				message: "Now click the second facility...",
				data:    RouteResult{Stops: len(sess.RouteStops)},
				overlay: collection(record.DomainCyber, stopMarkers(sess.RouteStops)...),
			}, nil
		}

		r, err := s.gw.Route(ctx, sess, stops)
		if err != nil {
			return outcome{}, err
		}
		line := domov.NewLine(domov.CategoryRoute, r.Path, domov.Style{
			Outline:      cyan.WithAlpha(.9),
			OutlineWidth: 3,
		}).WithContent("Failover Route",
			fmt.Sprintf("Distance: %.1f mi", r.Miles),
			fmt.Sprintf("Time: %.0f min", r.Minutes),
		)
		els := append(stopMarkers(stops), line)
		return outcome{
			message: fmt.Sprintf("%.1f miles | %.0f min, %d turn-by-turn steps", r.Miles, r.Minutes, r.Steps),
			data:    RouteResult{Stops: len(stops), Miles: r.Miles, Minutes: r.Minutes, Steps: r.Steps},
			overlay: collection(record.DomainCyber, els...),
		}, nil
	})
}
