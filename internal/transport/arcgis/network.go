package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/locator"
)

type routeResponse struct {
	Routes struct {
		Features []struct {
			Attributes struct {
				TotalMiles      *float64 `json:"Total_Miles"`
				TotalTravelTime *float64 `json:"Total_TravelTime"`
			} `json:"attributes"`
			Geometry struct {
				Paths [][][2]float64 `json:"paths"`
			} `json:"geometry"`
		} `json:"features"`
	} `json:"routes"`
	Directions []struct {
		Features []json.RawMessage `json:"features"`
	} `json:"directions"`
}

type serviceAreaResponse struct {
	SAPolygons struct {
		Features []struct {
			Attributes struct {
				FromBreak float64 `json:"FromBreak"`
				ToBreak   float64 `json:"ToBreak"`
			} `json:"attributes"`
			Geometry struct {
				Rings [][][2]float64 `json:"rings"`
			} `json:"geometry"`
		} `json:"features"`
	} `json:"saPolygons"`
}

// Route solves a route through the stops, in order, with directions.
func (c *Client) Route(ctx context.Context, token string, stops []orb.Point) (locator.Route, error) {
	form := withToken(url.Values{
		"stops":            {joinPoints(stops)},
		"returnDirections": {"true"},
		"outSR":            {"4326"},
	}, token)

	var out locator.Route
	err := c.post(ctx, OpRoute, c.routeURL+"/solve", form, func(body []byte) error {
		var resp routeResponse
		if err := decode(body, &resp); err != nil {
			return err
		}
		if len(resp.Routes.Features) == 0 {
			return fmt.Errorf("route: %w", domain.ErrNoResults)
		}
		f := resp.Routes.Features[0]
		if f.Attributes.TotalMiles == nil || f.Attributes.TotalTravelTime == nil {
			return fmt.Errorf("route without totals: %w", domain.ErrMalformedResponse)
		}
		var path orb.LineString
		for _, p := range f.Geometry.Paths {
			for _, v := range p {
				path = append(path, orb.Point(v))
			}
		}
		if len(path) < 2 {
			return fmt.Errorf("route without geometry: %w", domain.ErrMalformedResponse)
		}
		steps := 0
		if len(resp.Directions) > 0 {
			steps = len(resp.Directions[0].Features)
		}
		out = locator.Route{
			Path:    path,
			Miles:   *f.Attributes.TotalMiles,
			Minutes: *f.Attributes.TotalTravelTime,
			Steps:   steps,
		}
		return nil
	})
	if err != nil {
		return locator.Route{}, err
	}
	return out, nil
}

// ServiceArea solves drive-time polygons, one per break, around a facility.
func (c *Client) ServiceArea(
	ctx context.Context, token string, facility orb.Point, breaks []float64,
) ([]locator.ServiceArea, error) {
	bs := make([]string, len(breaks))
	for i, b := range breaks {
		bs[i] = strconv.FormatFloat(b, 'f', -1, 64)
	}
	form := withToken(url.Values{
		"facilities":       {joinPoints([]orb.Point{facility})},
		"defaultBreaks":    {strings.Join(bs, ",")},
		"trimOuterPolygon": {"true"},
		"outSR":            {"4326"},
	}, token)

	var out []locator.ServiceArea
	err := c.post(ctx, OpServiceArea, c.serviceAreaURL+"/solveServiceArea", form, func(body []byte) error {
		var resp serviceAreaResponse
		if err := decode(body, &resp); err != nil {
			return err
		}
		if len(resp.SAPolygons.Features) == 0 {
			return fmt.Errorf("service area: %w", domain.ErrNoResults)
		}
		for _, f := range resp.SAPolygons.Features {
			poly := make(orb.Polygon, 0, len(f.Geometry.Rings))
			for _, r := range f.Geometry.Rings {
				ring := make(orb.Ring, len(r))
				for i, v := range r {
					ring[i] = orb.Point(v)
				}
				poly = append(poly, ring)
			}
			if len(poly) == 0 {
				return fmt.Errorf("service area without rings: %w", domain.ErrMalformedResponse)
			}
			out = append(out, locator.ServiceArea{
				FromBreak: f.Attributes.FromBreak,
				ToBreak:   f.Attributes.ToBreak,
				Polygon:   poly,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// joinPoints encodes points in the simple "x,y;x,y" syntax.
func joinPoints(pts []orb.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = strconv.FormatFloat(p.Lon(), 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat(), 'f', -1, 64)
	}
	return strings.Join(parts, ";")
}
