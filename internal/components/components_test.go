package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/megapayer/site/internal/contact"
	"github.com/megapayer/site/internal/content"
	"github.com/megapayer/site/internal/countdown"
	"github.com/megapayer/site/internal/system"
	"github.com/megapayer/site/internal/whitepaper"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestLayoutTitle(t *testing.T) {
	out := render(t, Layout(PageConfig{Title: "Team", Path: "/team"}))
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Team | Megapayer</title>")
	assert.Contains(t, out, `<a href="/team" class="active">Team</a>`)

	out = render(t, Layout(PageConfig{}))
	assert.Contains(t, out, "<title>Megapayer - Payments on Your Terms</title>")
}

func TestHomeLinksProducts(t *testing.T) {
	out := render(t, HomePage())
	assert.Contains(t, out, `href="/products/blockchain"`)
	assert.Contains(t, out, `href="/coming-soon?product=dex"`)
	assert.Contains(t, out, `data-scene-src="/api/scene/blockchain"`)
}

func TestProductPageEscrow(t *testing.T) {
	p, _ := content.ProductByKind("p2p-exchange")
	assert.Contains(t, render(t, ProductPage(p)), `data-escrow-src="/api/escrow"`)

	p, _ = content.ProductByKind("wallet")
	assert.NotContains(t, render(t, ProductPage(p)), "data-escrow-src")
}

func TestContactPage(t *testing.T) {
	out := render(t, ContactPage(contact.Form{Name: "Ada"}, contact.ErrRequiredFields.Error(), nil))
	assert.Contains(t, out, "Please fill in all required fields")
	assert.Contains(t, out, `value="Ada"`)

	out = render(t, ContactPage(contact.Form{}, "", &contact.Receipt{ID: "abc"}))
	assert.Contains(t, out, "Thank you!")
	assert.Contains(t, out, "Reference: abc")
	assert.NotContains(t, out, "<form")
}

func TestComingSoonPage(t *testing.T) {
	target := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	out := render(t, ComingSoonPage("dex", countdown.Parts{Days: 3, Hours: 4, Minutes: 5, Seconds: 6}, target))
	assert.Contains(t, out, "Megapayer DEX is coming soon")
	assert.Contains(t, out, `data-target="2027-01-01T00:00:00Z"`)
	assert.Contains(t, out, ">03<")
	assert.Contains(t, out, ">06<")
}

func TestStatusPage(t *testing.T) {
	out := render(t, StatusPage(content.Services, nil))
	assert.Contains(t, out, "Mainnet RPC")
	assert.NotContains(t, out, "Web host")

	out = render(t, StatusPage(content.Services, &system.Stats{CPUPercent: 12.5, Uptime: 3 * time.Hour}))
	assert.Contains(t, out, "CPU: 12.5%")
	assert.Contains(t, out, "Uptime: 3h0m0s")
}

func TestAirdropRanks(t *testing.T) {
	out := render(t, AirdropPage(content.Leaderboard()))
	assert.Contains(t, out, "<td>1</td>")
	assert.Contains(t, out, "0x8f3a...91c2")
}

func TestWhitepaperPages(t *testing.T) {
	e, _ := whitepaper.Lookup("wallet")
	out := render(t, WhitepapersPage([]whitepaper.Entry{e}, map[string]bool{}))
	assert.Contains(t, out, "In preparation")

	out = render(t, WhitepapersPage([]whitepaper.Entry{e}, map[string]bool{"wallet": true}))
	assert.Contains(t, out, `href="/whitepaper/wallet"`)

	out = render(t, WhitepaperPage(e, "<h2>Keys</h2>", true))
	assert.Contains(t, out, `action="/api/generate-pdf/wallet"`)
	assert.Contains(t, out, "<h2>Keys</h2>")
	assert.Contains(t, out, "/whitepapers/wallet-whitepaper.pdf")
}

func TestIconName(t *testing.T) {
	assert.Equal(t, "lucide:arrow-left-right", iconName("lucide--arrow-left-right"))
	assert.Equal(t, "plain", iconName("plain"))
}
