// Package locator holds results of the address, routing and drive-time backend operations.
package locator

import "github.com/paulmach/orb"

// Candidate is the best geocoding match for an address.
type Candidate struct {
	Address  string    `json:"address"`
	Location orb.Point `json:"location"`
	Score    float64   `json:"score"`
	Type     string    `json:"type"`
}

// Route is a solved path between stops.
type Route struct {
	Path    orb.LineString `json:"path"`
	Miles   float64        `json:"miles"`
	Minutes float64        `json:"minutes"`
	Steps   int            `json:"steps"`
}

// ServiceArea is one drive-time band around a facility, in minutes.
type ServiceArea struct {
	FromBreak float64     `json:"from_break"`
	ToBreak   float64     `json:"to_break"`
	Polygon   orb.Polygon `json:"polygon"`
}
