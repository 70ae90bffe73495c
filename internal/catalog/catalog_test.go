package catalog

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

func TestLoadEmbedded_Counts(t *testing.T) {
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := map[record.Domain]int{
		record.DomainFraud:        50,
		record.DomainAccess:       32,
		record.DomainCyber:        18,
		record.DomainRetention:    50,
		record.DomainTransparency: 12,
		record.DomainRx:           42,
	}
	for d, n := range want {
		if got := len(c.Records(d)); got != n {
			t.Errorf("%s: got %d records, want %d", d, got, n)
		}
	}
	if got := len(c.Links()); got != 17 {
		t.Errorf("links: got %d, want 17", got)
	}
	if got := len(c.Territories()); got != 6 {
		t.Errorf("territories: got %d, want 6", got)
	}
	if got := len(c.SuitabilitySites()); got != 6 {
		t.Errorf("sites: got %d, want 6", got)
	}
	if got := len(c.TapestrySegments()); got != 10 {
		t.Errorf("segments: got %d, want 10", got)
	}
}

func TestLoadEmbedded_FirstFraudRecord(t *testing.T) {
	c := MustLoadEmbedded()
	r := c.Records(record.DomainFraud)[0]
	if r.ID() != "miami-dade-fl" || r.Name() != "Miami-Dade, FL" {
		t.Fatalf("unexpected first record %s %q", r.ID(), r.Name())
	}
	if v, _ := r.Attributes().Number("score"); v != 94 {
		t.Errorf("score = %v", v)
	}
	if !r.Attributes().Flag("flag") {
		t.Error("flag must be true")
	}
	if got, ok := c.Record(record.DomainFraud, "salt-lake-ut"); !ok || got.Lat() != 40.76 {
		t.Errorf("lookup failed: %v %v", got, ok)
	}
}

func TestRecords_ReturnsCopy(t *testing.T) {
	c := MustLoadEmbedded()
	a := c.Records(record.DomainRx)
	a[0] = record.Record{}
	if c.Records(record.DomainRx)[0].ID() == "" {
		t.Fatal("catalog mutated through returned slice")
	}
}

func fixtureFS(overrides map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, d := range record.All() {
		fsys[string(d)+".yaml"] = &fstest.MapFile{Data: []byte("domain: " + string(d) + "\nrecords: []\n")}
	}
	for k, v := range overrides {
		fsys[k] = &fstest.MapFile{Data: []byte(v)}
	}
	return fsys
}

func TestLoad_InvalidCoordinates(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"fraud.yaml": "domain: fraud\nrecords:\n  - id: x\n    name: X\n    lat: 95\n    lng: 0\n",
	})
	_, err := Load(fsys)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoad_DomainMismatch(t *testing.T) {
	fsys := fixtureFS(map[string]string{"rx.yaml": "domain: fraud\nrecords: []\n"})
	if _, err := Load(fsys); err == nil || !strings.Contains(err.Error(), "declares domain") {
		t.Fatalf("expected domain mismatch, got %v", err)
	}
}

func TestLoad_DuplicateID(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"access.yaml": "domain: access\nrecords:\n  - {id: a, name: A, lat: 1, lng: 1}\n  - {id: a, name: B, lat: 2, lng: 2}\n",
	})
	if _, err := Load(fsys); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoad_LinkOutOfRange(t *testing.T) {
	fsys := fixtureFS(map[string]string{
		"cyber.yaml": "domain: cyber\nrecords:\n  - {id: a, name: A, lat: 1, lng: 1}\nlinks:\n  - [0, 3]\n",
	})
	if _, err := Load(fsys); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected link range error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := fixtureFS(nil)
	delete(fsys, "rx.yaml")
	if _, err := Load(fsys); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}
