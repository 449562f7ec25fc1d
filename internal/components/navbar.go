package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const navLinkClass = "flex items-center px-3 py-2 text-sm font-medium text-[#6b4f35] hover:text-[#a7bbc0] transition-colors"

type navItem struct {
	Target string
	Icon   string
	Label  string
	Class  string
}

func Navbar(logoURL string) g.Node {
	items := []navItem{
		{"home", "lucide--home w-4 h-4 mr-1", "Home", navLinkClass},
		{"contact", "lucide--mail w-4 h-4 mr-1", "Contact Us", navLinkClass},
		{"enquiry", "lucide--file-question w-4 h-4 mr-1", "Enquiry", navLinkClass},
		{"login", "lucide--user-circle-2 w-4 h-4 mr-1", "Login / Register", "flex items-center px-4 py-2 text-sm font-medium text-white bg-[#a7bbc0] rounded-md hover:bg-[#96aab0] transition-colors"},
	}

	return Nav(
		Class("bg-white/90 backdrop-blur-sm shadow-md"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-20"),
				Div(
					Class("flex items-center"),
					Img(Src(logoURL), Alt("NartureBelle Logo"), Class("h-16 w-auto")),
					Span(Class("text-2xl font-serif text-[#6b4f35] ml-2"), g.Text("NartureBelle")),
				),
				Div(
					Class("flex space-x-6"),
					g.Group(g.Map(items, func(it navItem) g.Node {
						return PostButton("/nav/"+it.Target, it.Class,
							Icon(it.Icon, ""),
							g.Text(it.Label),
						)
					})),
				),
			),
		),
	)
}
