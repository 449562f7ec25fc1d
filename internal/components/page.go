package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Narturebelle/Narturebelle/domain/contact"
	"github.com/Narturebelle/Narturebelle/domain/overlay"
)

// LandingConfig is everything the landing page needs to render one
// visitor's view.
type LandingConfig struct {
	LogoImageURL   string
	HeroImageURL   string
	ContactAddress string
	Overlays       overlay.Visibility
	Contact        contact.State
	// Refresh is set while a contact submission timer is pending.
	Refresh bool
}

func LandingPage(config LandingConfig) g.Node {
	refresh := 0
	if config.Refresh {
		refresh = 1
	}

	return Layout(
		PageConfig{RefreshAfter: refresh},
		g.If(config.Overlays.ContactModalOpen, ContactModal(ContactModalConfig{
			State:          config.Contact,
			ContactAddress: config.ContactAddress,
		})),
		g.If(config.Overlays.InfoModalOpen, InfoModal()),
		Navbar(config.LogoImageURL),
		Main(
			Hero(config.HeroImageURL),
			Features(),
		),
	)
}
