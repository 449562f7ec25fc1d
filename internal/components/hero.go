package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(imageURL string) g.Node {
	return Div(
		Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-16"),
		Div(
			Class("flex flex-col md:flex-row items-center justify-between gap-12"),
			Div(
				Class("md:w-1/2"),
				H1(
					Class("text-4xl font-serif text-[#6b4f35] mb-6"),
					g.Text("Nurturing You, Nurturing Life."),
				),
				P(
					Class("text-xl text-[#6b4f35] mb-8 leading-relaxed"),
					g.Text("Experience the perfect blend of nature and nurture during your pregnancy journey. Let NartureBelle guide you through this beautiful transformation with care and expertise."),
				),
				PostButton("/nav/journey",
					"px-8 py-4 text-lg font-medium text-white bg-[#a7bbc0] rounded-md hover:bg-[#96aab0] transition-colors shadow-lg",
					g.Text("Begin Your Natural Journey"),
				),
			),
			Div(
				Class("md:w-1/2 flex justify-center"),
				Div(
					Class("rounded-full bg-[#a7bbc0]/10 p-8"),
					Img(Src(imageURL), Alt("Pregnant woman illustration"), Class("w-96 h-96 object-contain")),
				),
			),
		),
	)
}
