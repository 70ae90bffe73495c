package tools

import (
	"context"
	"fmt"

	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

// PharmacyBreaks are the drive-time bands, in minutes, around the nearest pharmacy.
var PharmacyBreaks = []float64{5, 10}

// PharmacyResult is the nearest pharmacy to a searched address.
type PharmacyResult struct {
	Address    string  `json:"address"`
	PharmacyID string  `json:"pharmacy_id"`
	Pharmacy   string  `json:"pharmacy"`
	AvgCopay   float64 `json:"avg_copay"`
	GenericPct float64 `json:"generic_pct"`
	Desert     bool    `json:"desert"`
	Zones      int     `json:"zones"`
}

// FindPharmacy geocodes an address, picks the nearest pharmacy and solves its
// drive-time service area.
func (s *Service) FindPharmacy(ctx context.Context, sessionID, address string) (domdisp.Entry, error) {
	return s.run(ctx, ToolPharmacy, sessionID, func(sess *domsess.Session) (outcome, error) {
		c, err := s.gw.Geocode(ctx, sess, address)
		if err != nil {
			return outcome{}, err
		}
		ph, err := nearest(s.data.Records(record.DomainRx), c.Location)
		if err != nil {
			return outcome{}, err
		}
		areas, err := s.gw.ServiceArea(ctx, sess, ph.Point(), PharmacyBreaks)
		if err != nil {
			return outcome{}, err
		}

		a := ph.Attributes()
		res := PharmacyResult{
			Address:    c.Address,
			PharmacyID: ph.ID(),
			Pharmacy:   ph.Name(),
			AvgCopay:   a.NumberOr("avg", 0),
			GenericPct: a.NumberOr("generic", 0),
			Desert:     a.Flag("desert"),
			Zones:      len(areas),
		}

		els := []domov.Element{pin(c.Location, orange, 14, domov.ShapeCircle)}
		for i, sa := range areas {
			if len(sa.Polygon) == 0 {
				continue
			}
			fill := amber.WithAlpha(.2)
			if i == 0 {
				fill = green.WithAlpha(.25)
			}
			els = append(els, domov.NewPolygon(domov.CategoryServiceArea, sa.Polygon[0], domov.Style{
				Fill:         fill,
				Outline:      black.WithAlpha(.3),
				OutlineWidth: 1,
			}))
		}
		els = append(els, pin(ph.Point(), blue, 16, domov.ShapeCircle).
			WithRef(ph.ID()).
			WithContent(ph.Name(), fmt.Sprintf("Avg Copay: $%.2f | Generic: %s%%", res.AvgCopay, number(res.GenericPct))))

		desert := "No"
		if res.Desert {
			desert = "Yes"
		}
		return outcome{
			message: fmt.Sprintf("Nearest: %s | Avg Copay: $%.2f | Generic: %s%% | Desert: %s | %d drive-time zones",
				res.Pharmacy, res.AvgCopay, number(res.GenericPct), desert, res.Zones),
			data:    res,
			overlay: collection(record.DomainRx, els...),
		}, nil
	})
}
