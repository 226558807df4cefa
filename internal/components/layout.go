package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/megapayer/site/internal/content"
)

type PageConfig struct {
	Title       string
	Description string
	Path        string
}

func Layout(config PageConfig, body ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Megapayer - Payments on Your Terms"
	} else {
		config.Title += " | Megapayer"
	}
	if config.Description == "" {
		config.Description = "Megapayer builds a blockchain, wallet, exchange and identity stack for everyday payments."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				Topbar(config.Path),
				Main(g.Group(body)),
				PageFooter(),
				Script(Type("module"), Src("/static/js/scene.js")),
			),
		),
	})
}

type navItem struct {
	Label string
	Href  string
}

var nav = []navItem{
	{"Products", "/#products"},
	{"Whitepapers", "/whitepapers"},
	{"About", "/about"},
	{"Team", "/team"},
	{"Airdrop", "/airdrop"},
	{"Support", "/support"},
}

func Topbar(path string) g.Node {
	return Nav(
		Class("navbar container mx-auto"),
		A(Href("/"), Class("font-bold text-xl"), g.Text("Megapayer")),
		Ul(
			Class("menu menu-horizontal gap-1"),
			g.Group(g.Map(nav, func(item navItem) g.Node {
				return Li(A(
					Href(item.Href),
					g.If(item.Href == path, Class("active")),
					g.Text(item.Label),
				))
			})),
		),
		A(Href("/contact"), Class("btn btn-primary btn-sm"), g.Text("Contact")),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("footer container mx-auto py-10"),
		Div(
			Class("flex gap-4"),
			g.Group(g.Map(content.Community, func(l content.Link) g.Node {
				return A(
					Href(l.URL), Target("_blank"), Rel("noopener noreferrer"),
					Icon(l.Icon, l.Label),
				)
			})),
		),
		Div(
			Class("flex gap-4 text-sm"),
			A(Href("/legal/terms"), g.Text("Terms")),
			A(Href("/legal/privacy"), g.Text("Privacy")),
			A(Href("/status"), g.Text("Status")),
		),
		P(Class("text-xs opacity-60"), g.Textf("© %d Megapayer. All rights reserved.", time.Now().Year())),
	)
}

func Icon(icon, ariaLabel string) g.Node {
	name := iconName(icon)
	if ariaLabel != "" {
		return Span(
			Class("iconify inline-block size-5"),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class("iconify inline-block size-5"),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func iconName(icon string) string {
	for i := 0; i+1 < len(icon); i++ {
		if icon[i] == '-' && icon[i+1] == '-' {
			return icon[:i] + ":" + icon[i+2:]
		}
	}
	return icon
}

func PageSection(title string, children ...g.Node) g.Node {
	return Section(
		Class("container mx-auto py-12"),
		g.If(title != "", H2(Class("text-3xl font-bold mb-6"), g.Text(title))),
		g.Group(children),
	)
}

func Hero(title, subtitle string, extra ...g.Node) g.Node {
	return Div(
		Class("hero py-20"),
		Div(
			Class("hero-content text-center flex-col"),
			H1(Class("text-5xl font-bold"), g.Text(title)),
			g.If(subtitle != "", P(Class("max-w-2xl text-lg opacity-80"), g.Text(subtitle))),
			g.Group(extra),
		),
	)
}
