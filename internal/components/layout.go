package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// RefreshAfter makes the browser reload the page after that many
	// seconds. Zero disables the refresh.
	RefreshAfter int
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "NartureBelle - Natural Pregnancy Care"
	}

	if config.Description == "" {
		config.Description = "Experience the perfect blend of nature and nurture during your pregnancy journey."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				g.If(config.RefreshAfter > 0,
					Meta(g.Attr("http-equiv", "refresh"), Content(strconv.Itoa(config.RefreshAfter))),
				),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/favicon.svg"), Type("image/svg+xml")),

				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-[#e5d6c1] relative"),
				g.Group(content),
			),
		),
	})
}
