package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Title       string
	Description string
}

func Features() g.Node {
	features := []Feature{
		{"Natural Care", "Discover our range of natural and organic products specially curated for expecting mothers."},
		{"Expert Guidance", "Access professional advice and support throughout your pregnancy journey."},
		{"Community Support", "Join our community of mothers and share experiences in a supportive environment."},
	}

	return Div(
		ID("features"),
		Class("bg-[#a7bbc0]/10 py-16"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f Feature) g.Node {
					return Div(
						Class("feature-card bg-white p-8 rounded-lg shadow-md"),
						H3(Class("text-xl font-serif text-[#6b4f35] mb-4"), g.Text(f.Title)),
						P(Class("text-[#6b4f35]"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}
