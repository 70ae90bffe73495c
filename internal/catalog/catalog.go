package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/geolens/internal/domain/record"
)

//go:embed data/*.yaml
var embedded embed.FS

// Territory is a named group of retention states drawn as one boundary.
type Territory struct {
	Name   string
	States []string
	Color  [3]int
}

// Site is a recommended location without attributes.
type Site struct {
	Name string
	Lat  float64
	Lng  float64
}

// Link is a dependency edge between two cyber facilities, by catalog index.
type Link struct {
	From int
	To   int
}

// Catalog holds all datasets. Immutable after Load.
type Catalog struct {
	records     map[record.Domain][]record.Record
	links       []Link
	territories []Territory
	sites       []Site
	segments    []string
}

type fileRecord struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Lat        float64        `yaml:"lat"`
	Lng        float64        `yaml:"lng"`
	Attributes map[string]any `yaml:"attributes"`
}

type fileTerritory struct {
	Name   string   `yaml:"name"`
	States []string `yaml:"states"`
	Color  [3]int   `yaml:"color"`
}

type fileSite struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

type datasetFile struct {
	Domain           string          `yaml:"domain"`
	Records          []fileRecord    `yaml:"records"`
	Links            [][2]int        `yaml:"links"`
	Territories      []fileTerritory `yaml:"territories"`
	TapestrySegments []string        `yaml:"tapestry_segments"`
	SuitabilitySites []fileSite      `yaml:"suitability_sites"`
}

// LoadEmbedded loads the datasets compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded datasets: %w", err)
	}
	return Load(sub)
}

// MustLoadEmbedded loads the embedded datasets or panics.
func MustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads one <domain>.yaml per domain from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{records: make(map[record.Domain][]record.Record)}
	for _, d := range record.All() {
		name := string(d) + ".yaml"
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", name, err)
		}
		var f datasetFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse dataset %s: %w", name, err)
		}
		if f.Domain != string(d) {
			return nil, fmt.Errorf("dataset %s declares domain %q", name, f.Domain)
		}
		if err := c.addDataset(d, &f); err != nil {
			return nil, fmt.Errorf("dataset %s: %w", path.Base(name), err)
		}
	}
	return c, nil
}

func (c *Catalog) addDataset(d record.Domain, f *datasetFile) error {
	recs := make([]record.Record, 0, len(f.Records))
	seen := make(map[string]bool, len(f.Records))
	for i, fr := range f.Records {
		if seen[fr.ID] {
			return fmt.Errorf("record %d: duplicate id %q", i, fr.ID)
		}
		seen[fr.ID] = true
		attrs, err := record.NewAttributes(fr.Attributes)
		if err != nil {
			return fmt.Errorf("record %s: %w", fr.ID, err)
		}
		r, err := record.New(fr.ID, d, fr.Name, fr.Lat, fr.Lng, attrs)
		if err != nil {
			return err
		}
		recs = append(recs, r)
	}
	c.records[d] = recs

	for _, l := range f.Links {
		if l[0] < 0 || l[0] >= len(recs) || l[1] < 0 || l[1] >= len(recs) {
			return fmt.Errorf("link %v out of range", l)
		}
		c.links = append(c.links, Link{From: l[0], To: l[1]})
	}
	for _, t := range f.Territories {
		c.territories = append(c.territories, Territory{Name: t.Name, States: t.States, Color: t.Color})
	}
	for _, s := range f.SuitabilitySites {
		c.sites = append(c.sites, Site(s))
	}
	c.segments = append(c.segments, f.TapestrySegments...)
	return nil
}

// Records returns the records of a domain in catalog order.
func (c *Catalog) Records(d record.Domain) []record.Record {
	src := c.records[d]
	out := make([]record.Record, len(src))
	copy(out, src)
	return out
}

// Record looks up a record by id.
func (c *Catalog) Record(d record.Domain, id string) (record.Record, bool) {
	for _, r := range c.records[d] {
		if r.ID() == id {
			return r, true
		}
	}
	return record.Record{}, false
}

// Links returns the cyber facility dependency edges.
func (c *Catalog) Links() []Link {
	out := make([]Link, len(c.links))
	copy(out, c.links)
	return out
}

// Territories returns the retention sales territories.
func (c *Catalog) Territories() []Territory {
	out := make([]Territory, len(c.territories))
	for i, t := range c.territories {
		t.States = append([]string(nil), t.States...)
		out[i] = t
	}
	return out
}

// SuitabilitySites returns recommended pharmacy partnership sites.
func (c *Catalog) SuitabilitySites() []Site {
	out := make([]Site, len(c.sites))
	copy(out, c.sites)
	return out
}

// TapestrySegments returns the lifestyle segment names.
func (c *Catalog) TapestrySegments() []string {
	return append([]string(nil), c.segments...)
}
