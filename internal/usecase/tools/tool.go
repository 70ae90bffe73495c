package tools

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// Tool names one interactive tool.
type Tool string

const (
	ToolLocate   Tool = "locate"
	ToolEquity   Tool = "equity"
	ToolRoute    Tool = "route"
	ToolMarket   Tool = "market"
	ToolProvider Tool = "provider"
	ToolPharmacy Tool = "pharmacy"
)

var toolDomains = map[Tool]record.Domain{
	ToolLocate:   record.DomainFraud,
	ToolEquity:   record.DomainAccess,
	ToolRoute:    record.DomainCyber,
	ToolMarket:   record.DomainRetention,
	ToolProvider: record.DomainTransparency,
	ToolPharmacy: record.DomainRx,
}

// All returns the tools in domain order.
func All() []Tool {
	return []Tool{ToolLocate, ToolEquity, ToolRoute, ToolMarket, ToolProvider, ToolPharmacy}
}

// Domain returns the tab the tool belongs to.
func (t Tool) Domain() record.Domain { return toolDomains[t] }

func (t Tool) String() string { return string(t) }

// ParseTool validates a tool name.
func ParseTool(s string) (Tool, error) {
	t := Tool(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toolDomains[t]; !ok {
		return "", fmt.Errorf("%w: unknown tool %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}
