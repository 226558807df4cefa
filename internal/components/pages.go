package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/megapayer/site/internal/contact"
	"github.com/megapayer/site/internal/content"
	"github.com/megapayer/site/internal/countdown"
	"github.com/megapayer/site/internal/system"
	"github.com/megapayer/site/internal/whitepaper"
)

func HomePage() g.Node {
	return Layout(
		PageConfig{Path: "/"},
		Hero("Payments on your terms",
			"A blockchain, a wallet, an exchange and an identity layer built to work together.",
			A(Href("/whitepapers"), Class("btn btn-primary"), g.Text("Read the whitepapers")),
		),
		SceneCanvas("blockchain", "h-96"),
		PageSection("Products",
			ID("products"),
			Div(
				Class("grid md:grid-cols-3 gap-6"),
				g.Group(g.Map(content.Products(), productCard)),
			),
		),
	)
}

func productCard(p content.Product) g.Node {
	href := "/products/" + p.Kind
	if !p.Live {
		href = "/coming-soon?product=" + p.Kind
	}
	return A(
		Href(href),
		Class("card bg-base-200 hover:bg-base-300 p-6"),
		H3(Class("font-bold text-lg"), g.Text(p.Name)),
		P(Class("opacity-80"), g.Text(p.Tagline)),
		g.If(!p.Live, Span(Class("badge badge-accent mt-2"), g.Text("Coming soon"))),
	)
}

// SceneCanvas is the mount point for a client-side scene. The script fetches
// the descriptor from the scene API and runs the per-frame loop.
func SceneCanvas(kind, class string) g.Node {
	return Canvas(
		Class("w-full "+class),
		Data("scene", kind),
		Data("scene-src", "/api/scene/"+kind),
		Aria("label", kind+" animation"),
	)
}

func ProductPage(p content.Product) g.Node {
	return Layout(
		PageConfig{Title: p.Name, Description: p.Tagline, Path: "/products/" + p.Kind},
		Hero(p.Name, p.Tagline),
		SceneCanvas(p.Kind, "h-[480px]"),
		g.If(p.Kind == "p2p-exchange", EscrowWidget()),
		PageSection("Features",
			Div(
				Class("grid md:grid-cols-2 gap-6"),
				g.Group(g.Map(p.Features, func(f content.Feature) g.Node {
					return Div(
						Class("flex gap-4"),
						Icon(f.Icon, ""),
						Div(
							H3(Class("font-semibold"), g.Text(f.Title)),
							P(Class("opacity-80"), g.Text(f.Description)),
						),
					)
				})),
			),
		),
		PageSection("",
			A(Href("/whitepaper/"+p.Kind), Class("btn btn-outline"), g.Text("Read the "+p.Name+" whitepaper")),
		),
	)
}

// EscrowWidget renders the escrow flow illustration. It stays idle until
// the start button is pressed.
func EscrowWidget() g.Node {
	steps := []string{"Buyer pays escrow", "Escrow pays seller", "Seller delivers to buyer", "Settled"}
	return PageSection("How escrow works",
		Div(
			Class("escrow"),
			Data("escrow-src", "/api/escrow"),
			Ol(
				Class("steps"),
				g.Group(g.Map(steps, func(s string) g.Node { return Li(Class("step"), g.Text(s)) })),
			),
			Progress(Class("progress w-full"), Value("0"), Max("1")),
			Button(Type("button"), Class("btn btn-primary mt-4"), Data("escrow-start", ""), g.Text("Start")),
		),
	)
}

func AboutPage() g.Node {
	return Layout(
		PageConfig{Title: "About", Path: "/about"},
		Hero("About Megapayer", "We build open financial infrastructure that anyone can use."),
		PageSection("Mission",
			P(g.Text("Payments should be instant, cheap and under the control of the people making them. Every Megapayer product is designed around that idea.")),
		),
		PageSection("Products",
			Ul(
				Class("list-disc ps-6"),
				g.Group(g.Map(content.Products(), func(p content.Product) g.Node {
					return Li(B(g.Text(p.Name)), g.Text(": "+p.Tagline))
				})),
			),
		),
	)
}

func TeamPage() g.Node {
	return Layout(
		PageConfig{Title: "Team", Path: "/team"},
		Hero("Our Team", "The people building Megapayer."),
		PageSection("",
			Div(
				Class("grid md:grid-cols-3 gap-6"),
				g.Group(g.Map(content.Team, func(m content.Member) g.Node {
					return Div(
						Class("card bg-base-200 p-6"),
						Div(Class("avatar placeholder"), Span(Class("text-xl"), g.Text(m.Initials))),
						H3(Class("font-bold mt-2"), g.Text(m.Name)),
						P(Class("text-sm opacity-70"), g.Text(m.Role)),
						P(Class("mt-2"), g.Text(m.Bio)),
					)
				})),
			),
		),
	)
}

func LegalPage(title, path string, sections []content.Section) g.Node {
	return Layout(
		PageConfig{Title: title, Path: path},
		Hero(title, ""),
		g.Group(g.Map(sections, func(s content.Section) g.Node {
			return PageSection(s.Heading, P(g.Text(s.Body)))
		})),
	)
}

func SupportPage() g.Node {
	return Layout(
		PageConfig{Title: "Support", Path: "/support"},
		Hero("Support", "Answers to common questions."),
		PageSection("FAQ",
			g.Group(g.Map(content.FAQs, func(f content.FAQ) g.Node {
				return Details(
					Class("collapse collapse-arrow bg-base-200 mb-2"),
					Summary(Class("collapse-title font-medium"), g.Text(f.Question)),
					Div(Class("collapse-content"), P(g.Text(f.Answer))),
				)
			})),
		),
		PageSection("Still stuck?",
			A(Href("/contact"), Class("btn btn-primary"), g.Text("Contact us")),
		),
	)
}

var stateBadge = map[string]string{
	content.StateOperational: "badge-success",
	content.StateDegraded:    "badge-warning",
	content.StateMaintenance: "badge-info",
}

// StatusPage lists the service states. host is nil when stats are unavailable.
func StatusPage(services []content.ServiceStatus, host *system.Stats) g.Node {
	overall := content.Overall(services)
	return Layout(
		PageConfig{Title: "Status", Path: "/status"},
		Hero("System Status", ""),
		PageSection("",
			Div(Class("alert mb-6"), Span(Class("badge "+stateBadge[overall]), g.Text(overall))),
			Table(
				Class("table"),
				THead(Tr(Th(g.Text("Service")), Th(g.Text("State")), Th(g.Text("Uptime (90d)")))),
				TBody(g.Group(g.Map(services, func(s content.ServiceStatus) g.Node {
					return Tr(
						Td(g.Text(s.Name)),
						Td(Span(Class("badge "+stateBadge[s.State]), g.Text(s.State))),
						Td(g.Textf("%.2f%%", s.Uptime)),
					)
				}))),
			),
		),
		g.Iff(host != nil, func() g.Node {
			return PageSection("Web host",
				Ul(
					Li(g.Textf("CPU: %.1f%%", host.CPUPercent)),
					Li(g.Textf("Memory used: %.1f%%", host.MemUsedPct)),
					Li(g.Text("Uptime: "+host.Uptime.Truncate(time.Minute).String())),
				),
			)
		}),
	)
}

func AirdropPage(entrants []content.Entrant) g.Node {
	return Layout(
		PageConfig{Title: "Airdrop", Path: "/airdrop"},
		Hero("Community Airdrop", "Earn points by testing products and inviting friends."),
		PageSection("Leaderboard",
			Table(
				Class("table"),
				THead(Tr(Th(g.Text("#")), Th(g.Text("Address")), Th(g.Text("Points")), Th(g.Text("Referrals")))),
				TBody(g.Group(mapIndexed(entrants, func(i int, e content.Entrant) g.Node {
					return Tr(
						Td(g.Textf("%d", i+1)),
						Td(Code(g.Text(e.Address))),
						Td(g.Textf("%d", e.Points)),
						Td(g.Textf("%d", e.Referrals)),
					)
				}))),
			),
		),
	)
}

func mapIndexed[T any](ts []T, fn func(int, T) g.Node) []g.Node {
	out := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		out = append(out, fn(i, t))
	}
	return out
}

// ContactPage renders the form. errMsg shows a validation failure; a non-nil
// receipt replaces the form with a confirmation.
func ContactPage(f contact.Form, errMsg string, receipt *contact.Receipt) g.Node {
	if receipt != nil {
		return Layout(
			PageConfig{Title: "Contact", Path: "/contact"},
			Hero("Thank you!", "We received your message and will get back to you soon."),
			PageSection("", P(Class("text-sm opacity-60"), g.Text("Reference: "+receipt.ID))),
		)
	}

	return Layout(
		PageConfig{Title: "Contact", Path: "/contact"},
		Hero("Contact Us", "Questions, partnerships or press. We read everything."),
		PageSection("",
			g.If(errMsg != "", Div(Class("alert alert-error mb-4"), Role("alert"), g.Text(errMsg))),
			FormEl(
				Method("post"), Action("/contact"), Class("grid gap-4 max-w-xl"),
				field("name", "Name", "text", f.Name, true),
				field("email", "Email", "email", f.Email, true),
				field("company", "Company", "text", f.Company, false),
				field("subject", "Subject", "text", f.Subject, false),
				LabelEl(
					Class("form-control"),
					Span(g.Text("Message *")),
					Textarea(Name("message"), Rows("5"), Class("textarea textarea-bordered"), g.Text(f.Message)),
				),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("Send message")),
			),
		),
	)
}

func field(name, label, typ, value string, required bool) g.Node {
	if required {
		label += " *"
	}
	return LabelEl(
		Class("form-control"),
		Span(g.Text(label)),
		Input(Type(typ), Name(name), Value(value), Class("input input-bordered")),
	)
}

// ComingSoonPage shows a countdown to target. The script keeps it ticking
// from data-target.
func ComingSoonPage(product string, left countdown.Parts, target time.Time) g.Node {
	name := content.ProductName(product)
	unit := func(n int, label string) g.Node {
		return Div(
			Class("flex flex-col items-center"),
			Span(Class("countdown font-mono text-5xl"), Data("unit", label), g.Textf("%02d", n)),
			Span(Class("text-sm opacity-70"), g.Text(label)),
		)
	}
	return Layout(
		PageConfig{Title: "Coming Soon", Path: "/coming-soon"},
		Hero(fmt.Sprintf("%s is coming soon", name), "Leave your email and we will let you know when it launches."),
		PageSection("",
			Div(
				Class("flex justify-center gap-6"),
				Data("target", target.UTC().Format(time.RFC3339)),
				Data("countdown-src", "/api/countdown"),
				unit(left.Days, "days"),
				unit(left.Hours, "hours"),
				unit(left.Minutes, "minutes"),
				unit(left.Seconds, "seconds"),
			),
			FormEl(
				Method("post"), Action("/api/signup"), Class("flex gap-2 justify-center mt-8"),
				Input(Type("email"), Name("email"), Placeholder("you@example.com"), Class("input input-bordered")),
				Input(Type("hidden"), Name("product"), Value(product)),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("Notify me")),
			),
		),
	)
}

// WhitepapersPage lists the catalog. onDisk marks ids with an excerpt present.
func WhitepapersPage(entries []whitepaper.Entry, onDisk map[string]bool) g.Node {
	return Layout(
		PageConfig{Title: "Whitepapers", Path: "/whitepapers"},
		Hero("Whitepapers", "Technical documentation for every Megapayer product."),
		PageSection("",
			Div(
				Class("grid md:grid-cols-2 gap-6"),
				g.Group(g.Map(entries, func(e whitepaper.Entry) g.Node {
					return Div(
						Class("card bg-base-200 p-6"),
						Img(Src("/api/whitepaper/"+e.ID+"/preview.png"), Alt(e.Title), Class("mb-4"), g.Attr("loading", "lazy")),
						H3(Class("font-bold"), g.Text(e.Title)),
						P(Class("opacity-80"), g.Text(e.Summary)),
						g.If(onDisk[e.ID], A(Href("/whitepaper/"+e.ID), Class("btn btn-sm mt-4"), g.Text("Read"))),
						g.If(!onDisk[e.ID], Span(Class("badge mt-4"), g.Text("In preparation"))),
					)
				})),
			),
		),
	)
}

// WhitepaperPage shows a rendered excerpt with download actions.
func WhitepaperPage(e whitepaper.Entry, bodyHTML string, hasPDF bool) g.Node {
	return Layout(
		PageConfig{Title: e.Title, Description: e.Summary, Path: "/whitepaper/" + e.ID},
		Hero(e.Title, e.Summary,
			Div(
				Class("flex gap-2"),
				FormEl(
					Method("post"), Action("/api/generate-pdf/"+e.ID),
					Data("pdf-title", e.Title),
					Button(Type("submit"), Class("btn btn-primary"), g.Text("Download excerpt PDF")),
				),
				g.If(hasPDF, A(Href("/whitepapers/"+e.ID+"-whitepaper.pdf"), Class("btn btn-outline"), g.Text("Full whitepaper"))),
			),
		),
		PageSection("", Article(Class("prose max-w-none"), g.Raw(bodyHTML))),
	)
}

func NotFoundPage(message string) g.Node {
	return Layout(
		PageConfig{Title: "Not Found"},
		Hero("404", message, A(Href("/"), Class("btn"), g.Text("Back home"))),
	)
}
