package whitepaper

import "sort"

// Entry describes one product whitepaper.
type Entry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

var catalog = map[string]Entry{
	"blockchain": {
		ID:      "blockchain",
		Title:   "Megapayer Blockchain",
		Summary: "A layer-one chain with validator rotation and sub-second finality.",
	},
	"social-media": {
		ID:      "social-media",
		Title:   "Megapayer Social",
		Summary: "A creator network where attention is settled on-chain.",
	},
	"p2p-exchange": {
		ID:      "p2p-exchange",
		Title:   "Megapayer P2P Exchange",
		Summary: "Peer-to-peer trading with escrow-backed settlement.",
	},
	"dex": {
		ID:      "dex",
		Title:   "Megapayer DEX",
		Summary: "An automated market maker with concentrated liquidity pools.",
	},
	"wallet": {
		ID:      "wallet",
		Title:   "Megapayer Wallet",
		Summary: "A non-custodial multi-asset wallet.",
	},
	"stablecoin": {
		ID:      "stablecoin",
		Title:   "Megapayer Stablecoin",
		Summary: "A collateralized stable asset for payments.",
	},
	"digital-identity": {
		ID:      "digital-identity",
		Title:   "Megapayer Digital Identity",
		Summary: "Self-sovereign identity with selective disclosure.",
	},
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Entry, bool) {
	e, ok := catalog[id]
	return e, ok
}

// Catalog lists every entry ordered by id.
func Catalog() []Entry {
	out := make([]Entry, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
