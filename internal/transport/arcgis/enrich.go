package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain"
)

type studyArea struct {
	Geometry struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"geometry"`
}

type enrichResponse struct {
	Results []struct {
		Value struct {
			FeatureSet []struct {
				Features []struct {
					Attributes map[string]any `json:"attributes"`
				} `json:"features"`
			} `json:"FeatureSet"`
		} `json:"value"`
	} `json:"results"`
}

// Enrich returns the raw attributes of the study area around p.
func (c *Client) Enrich(ctx context.Context, token string, p orb.Point, variables []string) (map[string]any, error) {
	var area studyArea
	area.Geometry.X, area.Geometry.Y = p.Lon(), p.Lat()
	areas, err := json.Marshal([]studyArea{area})
	if err != nil {
		return nil, fmt.Errorf("encode study areas: %w", err)
	}
	vars, err := json.Marshal(variables)
	if err != nil {
		return nil, fmt.Errorf("encode variables: %w", err)
	}
	form := withToken(url.Values{
		"studyAreas":        {string(areas)},
		"analysisVariables": {string(vars)},
		"returnGeometry":    {"false"},
	}, token)

	var out map[string]any
	err = c.post(ctx, OpEnrich, c.enrichURL, form, func(body []byte) error {
		var resp enrichResponse
		if err := decode(body, &resp); err != nil {
			return err
		}
		if len(resp.Results) == 0 || len(resp.Results[0].Value.FeatureSet) == 0 ||
			len(resp.Results[0].Value.FeatureSet[0].Features) == 0 {
			return fmt.Errorf("no enrichment data for %v: %w", p, domain.ErrNoResults)
		}
		attrs := resp.Results[0].Value.FeatureSet[0].Features[0].Attributes
		if len(attrs) == 0 {
			return fmt.Errorf("no enrichment data for %v: %w", p, domain.ErrNoResults)
		}
		out = attrs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
