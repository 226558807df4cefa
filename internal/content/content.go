// Package content holds the static copy rendered by the site's pages.
package content

import "sort"

// Product is one Megapayer product page.
type Product struct {
	Kind     string
	Name     string
	Tagline  string
	Features []Feature
	Live     bool
}

// Feature is a product bullet.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

var products = []Product{
	{
		Kind:    "blockchain",
		Name:    "Megapayer Blockchain",
		Tagline: "Sub-second finality for everyday payments.",
		Live:    true,
		Features: []Feature{
			{"lucide--blocks", "Linked blocks", "Every block commits to its parent, forming a tamper-evident chain."},
			{"lucide--zap", "Fast finality", "Transactions settle in under a second."},
			{"lucide--leaf", "Low energy", "Proof of stake consensus with modest hardware requirements."},
		},
	},
	{
		Kind:    "validators",
		Name:    "Validator Network",
		Tagline: "Stake, validate and earn.",
		Live:    true,
		Features: []Feature{
			{"lucide--shield-check", "Rotating committees", "Validator sets rotate each epoch."},
			{"lucide--coins", "Staking rewards", "Rewards are distributed every epoch."},
		},
	},
	{
		Kind:    "p2p-exchange",
		Name:    "P2P Exchange",
		Tagline: "Trade directly with escrow-backed settlement.",
		Features: []Feature{
			{"lucide--handshake", "Escrow protection", "Funds are held in escrow until both sides confirm."},
			{"lucide--globe", "Local payment methods", "Settle in the currency your counterparty prefers."},
		},
	},
	{
		Kind:    "dex",
		Name:    "Megapayer DEX",
		Tagline: "Swap any token against deep liquidity pools.",
		Features: []Feature{
			{"lucide--droplets", "Liquidity pools", "Earn fees by providing liquidity."},
			{"lucide--arrow-left-right", "Instant swaps", "Routes span multiple pools automatically."},
		},
	},
	{
		Kind:    "wallet",
		Name:    "Megapayer Wallet",
		Tagline: "Your keys, your coins.",
		Live:    true,
		Features: []Feature{
			{"lucide--key-round", "Non-custodial", "Keys never leave your device."},
			{"lucide--layers", "Multi-asset", "Hold every token in one place."},
		},
	},
	{
		Kind:    "stablecoin",
		Name:    "Megapayer Stablecoin",
		Tagline: "A stable asset for payments.",
		Features: []Feature{
			{"lucide--scale", "Fully collateralized", "Reserves are attested monthly."},
		},
	},
	{
		Kind:    "social-media",
		Name:    "Megapayer Social",
		Tagline: "A creator network that pays its creators.",
		Features: []Feature{
			{"lucide--users", "Creator first", "Tips and subscriptions settle on-chain."},
		},
	},
	{
		Kind:    "digital-identity",
		Name:    "Digital Identity",
		Tagline: "Prove who you are without oversharing.",
		Features: []Feature{
			{"lucide--fingerprint", "Selective disclosure", "Share only the attributes a verifier needs."},
		},
	},
}

// Products lists every product in navigation order.
func Products() []Product {
	return products
}

// ProductByKind finds a product by its scene kind.
func ProductByKind(kind string) (Product, bool) {
	for _, p := range products {
		if p.Kind == kind {
			return p, true
		}
	}
	return Product{}, false
}

// ProductName returns a display name for a coming-soon passthrough value.
func ProductName(kind string) string {
	if p, ok := ProductByKind(kind); ok {
		return p.Name
	}
	return "our next product"
}

type Member struct {
	Name     string
	Role     string
	Bio      string
	Initials string
}

var Team = []Member{
	{"Daniel Okafor", "Chief Executive Officer", "Fifteen years building payment networks across three continents.", "DO"},
	{"Mira Lindqvist", "Chief Technology Officer", "Former protocol engineer focused on consensus and networking.", "ML"},
	{"Haruto Sato", "Head of Research", "Works on cryptographic primitives and zero-knowledge proofs.", "HS"},
	{"Amara Nwosu", "Head of Product", "Leads the wallet and exchange product lines.", "AN"},
	{"Lucas Ferreira", "Head of Community", "Runs ambassador programs and community events.", "LF"},
}

type FAQ struct {
	Question string
	Answer   string
}

var FAQs = []FAQ{
	{"How do I create a wallet?", "Download the Megapayer Wallet and follow the setup steps. Write down your recovery phrase and keep it offline."},
	{"What happens if I lose my recovery phrase?", "Nobody, including Megapayer, can recover your funds without it."},
	{"How does P2P escrow work?", "The buyer's payment is locked in escrow. Once the seller confirms, the escrow releases the asset to the buyer."},
	{"Where can I read the whitepapers?", "Every product has a whitepaper on the Whitepapers page. Excerpts can be downloaded as PDF."},
	{"How do I report a security issue?", "Email security@megapayer.io. Please do not disclose issues publicly before they are fixed."},
}

// ServiceStatus is a row on the status page.
type ServiceStatus struct {
	Name   string
	State  string
	Uptime float64
}

const (
	StateOperational = "operational"
	StateDegraded    = "degraded"
	StateMaintenance = "maintenance"
)

var Services = []ServiceStatus{
	{"Mainnet RPC", StateOperational, 99.98},
	{"Block Explorer", StateOperational, 99.95},
	{"Wallet API", StateOperational, 99.99},
	{"P2P Exchange", StateMaintenance, 99.20},
	{"DEX Router", StateDegraded, 98.70},
	{"Website", StateOperational, 100},
}

// Overall summarizes the status rows.
func Overall(services []ServiceStatus) string {
	state := StateOperational
	for _, s := range services {
		switch s.State {
		case StateDegraded:
			return StateDegraded
		case StateMaintenance:
			state = StateMaintenance
		}
	}
	return state
}

type Entrant struct {
	Address   string
	Points    int
	Referrals int
}

var leaderboard = []Entrant{
	{"0x8f3a...91c2", 48210, 312},
	{"0x1b7e...4d09", 45120, 290},
	{"0xc45d...a7e1", 39880, 201},
	{"0x77aa...0b3f", 35760, 188},
	{"0x02fe...66d4", 31200, 154},
	{"0x9d10...e8a5", 28950, 149},
	{"0xe3c9...1f72", 24410, 97},
	{"0x5a81...bc3e", 21030, 85},
}

// Leaderboard returns the airdrop ranking, highest points first.
func Leaderboard() []Entrant {
	out := append([]Entrant(nil), leaderboard...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out
}

type Link struct {
	Label string
	URL   string
	Icon  string
}

var Community = []Link{
	{"Telegram", "https://t.me/megapayer", "lucide--send"},
	{"X", "https://x.com/megapayer", "lucide--twitter"},
	{"Discord", "https://discord.gg/megapayer", "lucide--message-circle"},
	{"GitHub", "https://github.com/megapayer", "lucide--github"},
}

type Section struct {
	Heading string
	Body    string
}

var Terms = []Section{
	{"Acceptance", "By using megapayer.io you agree to these terms."},
	{"No financial advice", "Content on this site is informational and is not investment advice."},
	{"Availability", "Services are provided as is and may change or be discontinued."},
	{"Governing law", "These terms are governed by the laws of the jurisdiction of incorporation."},
}

var Privacy = []Section{
	{"What we collect", "Contact form submissions and newsletter signups. We do not run third-party trackers."},
	{"How we use it", "Only to respond to you or send the updates you asked for."},
	{"Retention", "Submissions are deleted after twelve months."},
	{"Your rights", "Email privacy@megapayer.io to access or delete your data."},
}
