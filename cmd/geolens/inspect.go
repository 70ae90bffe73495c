package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/geolens/internal/catalog"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	enrichmentuc "github.com/kailas-cloud/geolens/internal/usecase/enrichment"
	overlayuc "github.com/kailas-cloud/geolens/internal/usecase/overlay"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

func newOverlaysCommand() *cobra.Command {
	var plan, specialty string
	cmd := &cobra.Command{
		Use:   "overlays <domain>",
		Short: "Print a domain overlay as GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := record.ParseDomain(args[0])
			if err != nil {
				return err
			}
			f, err := score.ParseFilter(plan, specialty)
			if err != nil {
				return err
			}
			cat, err := catalog.LoadEmbedded()
			if err != nil {
				return err
			}
			set, err := overlayuc.New(cat).Build(cmd.Context(), d, f)
			if err != nil {
				return err
			}
			for _, st := range set.Summary {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", st.Label, st.Value)
			}
			return printJSON(cmd.OutOrStdout(), set.FeatureCollection())
		},
	}
	cmd.Flags().StringVar(&plan, "plan", "", "transparency plan filter (all, hmo, ppo, epo)")
	cmd.Flags().StringVar(&specialty, "specialty", "", "transparency specialty filter")
	return cmd
}

// newSimulateCommand parses its own arguments: negative coordinates such
// as -95.37 would otherwise be read as shorthand flags.
func newSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "simulate <lat> <lng> [--domain name]",
		Short:              "Print the simulated enrichment for a point",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseSimulateArgs(args)
			if err != nil {
				return err
			}
			if in.help {
				return cmd.Help()
			}
			d, err := record.ParseDomain(in.domain)
			if err != nil {
				return err
			}
			cat, err := catalog.LoadEmbedded()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), enrichmentuc.Simulate(d, in.lat, in.lng, cat.TapestrySegments()))
		},
	}
	cmd.Flags().String("domain", record.DomainAccess.String(), "domain whose enrichment schema to use")
	return cmd
}

type simulateInput struct {
	lat, lng float64
	domain   string
	help     bool
}

func parseSimulateArgs(args []string) (simulateInput, error) {
	in := simulateInput{domain: record.DomainAccess.String()}
	var pos []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-h" || a == "--help":
			in.help = true
			return in, nil
		case a == "--":
			pos = append(pos, args[i+1:]...)
			i = len(args)
		case a == "--domain":
			if i+1 >= len(args) {
				return in, fmt.Errorf("flag needs an argument: --domain")
			}
			i++
			in.domain = args[i]
		case strings.HasPrefix(a, "--domain="):
			in.domain = strings.TrimPrefix(a, "--domain=")
		case strings.HasPrefix(a, "--"):
			return in, fmt.Errorf("unknown flag: %s", a)
		default:
			pos = append(pos, a)
		}
	}
	if len(pos) != 2 {
		return in, fmt.Errorf("accepts 2 arg(s), received %d", len(pos))
	}
	var err error
	if in.lat, err = strconv.ParseFloat(pos[0], 64); err != nil {
		return in, fmt.Errorf("lat: %w", err)
	}
	if in.lng, err = strconv.ParseFloat(pos[1], 64); err != nil {
		return in, fmt.Errorf("lng: %w", err)
	}
	if !geo.ValidateCoordinates(in.lat, in.lng) {
		return in, fmt.Errorf("coordinates out of range: %v, %v", in.lat, in.lng)
	}
	return in, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
