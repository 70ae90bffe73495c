package arcgis

import (
	"context"
	"fmt"
	"net/url"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/locator"
)

type xy struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (p xy) point() (orb.Point, bool) {
	if p.X == nil || p.Y == nil {
		return orb.Point{}, false
	}
	return orb.Point{*p.X, *p.Y}, true
}

type geocodeResponse struct {
	Candidates []struct {
		Address    string  `json:"address"`
		Location   xy      `json:"location"`
		Score      float64 `json:"score"`
		Attributes struct {
			MatchAddr string `json:"Match_addr"`
			AddrType  string `json:"Addr_type"`
		} `json:"attributes"`
	} `json:"candidates"`
}

// Geocode returns the best candidate for a single-line address.
func (c *Client) Geocode(ctx context.Context, token, address string) (locator.Candidate, error) {
	form := withToken(url.Values{
		"SingleLine":   {address},
		"maxLocations": {"1"},
		"outFields":    {"Match_addr,Addr_type"},
	}, token)

	var out locator.Candidate
	err := c.post(ctx, OpGeocode, c.geocodeURL+"/findAddressCandidates", form, func(body []byte) error {
		var resp geocodeResponse
		if err := decode(body, &resp); err != nil {
			return err
		}
		if len(resp.Candidates) == 0 {
			return fmt.Errorf("address %q: %w", address, domain.ErrNoResults)
		}
		cand := resp.Candidates[0]
		p, ok := cand.Location.point()
		if !ok {
			return fmt.Errorf("candidate without location: %w", domain.ErrMalformedResponse)
		}
		addr := cand.Address
		if addr == "" {
			addr = cand.Attributes.MatchAddr
		}
		out = locator.Candidate{Address: addr, Location: p, Score: cand.Score, Type: cand.Attributes.AddrType}
		return nil
	})
	if err != nil {
		return locator.Candidate{}, err
	}
	return out, nil
}
