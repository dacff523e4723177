package domain_test

import (
	"testing"

	"go.trai.ch/whisk/internal/core/domain"
)

func TestFingerprint_String(t *testing.T) {
	fp := domain.Fingerprint{Revision: "abc123", ManifestHash: "deadbeefdeadbeef"}
	if got, want := fp.String(), "abc123:deadbeefdeadbeef"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFingerprint_ChangesWithParts(t *testing.T) {
	base := domain.Fingerprint{Revision: "abc123", ManifestHash: "0000000000000001"}

	revChanged := base
	revChanged.Revision = "def456"
	if revChanged.String() == base.String() {
		t.Error("fingerprint must change when the revision changes")
	}

	hashChanged := base
	hashChanged.ManifestHash = "0000000000000002"
	if hashChanged.String() == base.String() {
		t.Error("fingerprint must change when the manifest hash changes")
	}
}

func TestProject_Product_Core(t *testing.T) {
	p := &domain.Project{
		Core:     domain.Product{Layers: []string{"meta-core"}},
		Products: map[string]domain.Product{"gadget": {DefaultVersion: "dunfell"}},
	}

	core, ok := p.Product(domain.CoreProductName)
	if !ok {
		t.Fatal("core product should always resolve")
	}
	if len(core.Layers) != 1 || core.Layers[0] != "meta-core" {
		t.Errorf("unexpected core layers: %v", core.Layers)
	}

	if _, ok := p.Product("missing"); ok {
		t.Error("unknown product should not resolve")
	}
}

func TestVersionSpec_LayerIndex(t *testing.T) {
	v := domain.VersionSpec{
		Layers: []domain.LayerSet{
			{Name: "oe", Paths: []string{"layers/oe-core/meta"}},
			{Name: "bsp", Paths: []string{"layers/meta-bsp", "layers/meta-bsp-extras"}},
		},
	}

	idx := v.LayerIndex()
	if len(idx) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(idx))
	}
	if len(idx["bsp"]) != 2 {
		t.Errorf("expected 2 bsp paths, got %v", idx["bsp"])
	}
}
