package ledger

import (
	"testing"
)

func TestNetworkSeedsCoversEveryNetwork(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"mainnet", "testnet", "previewnet"} {
		profile, err := networkSeeds(name)
		if err != nil {
			t.Fatalf("seeds for %q: %v", name, err)
		}
		if len(profile.nodes) == 0 {
			t.Fatalf("network %q has no seed nodes", name)
		}
		if profile.mirror == "" {
			t.Fatalf("network %q has no mirror endpoint", name)
		}
		if profile.ledgerID == nil {
			t.Fatalf("network %q has no ledger ID", name)
		}
	}
}

func TestNetworkSeedsIgnoresCase(t *testing.T) {
	t.Parallel()

	upper, err := networkSeeds("Testnet")
	if err != nil {
		t.Fatalf("seeds for Testnet: %v", err)
	}
	lower, err := networkSeeds("testnet")
	if err != nil {
		t.Fatalf("seeds for testnet: %v", err)
	}
	if upper.mirror != lower.mirror {
		t.Fatalf("case must not change the network: %q vs %q", upper.mirror, lower.mirror)
	}
}

func TestNetworkSeedsRejectsUnknownName(t *testing.T) {
	t.Parallel()

	if _, err := networkSeeds("moonnet"); err == nil {
		t.Fatalf("expected error for unknown network")
	}
}
