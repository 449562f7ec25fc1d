package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Narturebelle/Narturebelle/domain/contact"
	"github.com/Narturebelle/Narturebelle/domain/overlay"
)

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func landing(overlays overlay.Visibility, state contact.State) LandingConfig {
	return LandingConfig{
		LogoImageURL:   "https://img.example/logo.jpg",
		HeroImageURL:   "https://img.example/hero.jpg",
		ContactAddress: "support-care@narturebelle.com",
		Overlays:       overlays,
		Contact:        state,
	}
}

func TestLandingPage_ClosedOverlays(t *testing.T) {
	doc := render(t, LandingPage(landing(overlay.Visibility{}, contact.State{})))

	assert.Equal(t, "Nurturing You, Nurturing Life.", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Equal(t, 0, doc.Find("#info-modal").Length())
	assert.Equal(t, 0, doc.Find("#contact-modal").Length())
	assert.Equal(t, 0, doc.Find(`meta[http-equiv="refresh"]`).Length())

	logo, _ := doc.Find(`img[alt="NartureBelle Logo"]`).Attr("src")
	assert.Equal(t, "https://img.example/logo.jpg", logo)
	hero, _ := doc.Find(`img[alt="Pregnant woman illustration"]`).Attr("src")
	assert.Equal(t, "https://img.example/hero.jpg", hero)
}

func TestNavbar_Targets(t *testing.T) {
	doc := render(t, Navbar("logo.jpg"))

	var actions, labels []string
	doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		a, _ := s.Attr("action")
		actions = append(actions, a)
		labels = append(labels, strings.TrimSpace(s.Find("button").Text()))
	})
	assert.Equal(t, []string{"/nav/home", "/nav/contact", "/nav/enquiry", "/nav/login"}, actions)
	assert.Equal(t, []string{"Home", "Contact Us", "Enquiry", "Login / Register"}, labels)
}

func TestHero_CallToActionOpensJourney(t *testing.T) {
	doc := render(t, Hero("hero.jpg"))

	form := doc.Find(`form[action="/nav/journey"]`)
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "Begin Your Natural Journey", strings.TrimSpace(form.Text()))
}

func TestFeatures_ThreeCards(t *testing.T) {
	doc := render(t, Features())

	var titles []string
	doc.Find(".feature-card h3").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	assert.Equal(t, []string{"Natural Care", "Expert Guidance", "Community Support"}, titles)
}

func TestInfoModal(t *testing.T) {
	doc := render(t, LandingPage(landing(overlay.Visibility{InfoModalOpen: true}, contact.State{})))

	modal := doc.Find("#info-modal")
	require.Equal(t, 1, modal.Length())
	assert.Equal(t, "We're Working On It!", strings.TrimSpace(modal.Find("h2").Text()))
	assert.Equal(t, 2, modal.Find(`form[action="/modals/info/close"]`).Length(), "close icon and Got it button")
	assert.Equal(t, 0, doc.Find("#contact-modal").Length())
}

func TestBothModalsCanBeOpen(t *testing.T) {
	doc := render(t, LandingPage(landing(overlay.Visibility{InfoModalOpen: true, ContactModalOpen: true}, contact.State{})))

	assert.Equal(t, 1, doc.Find("#info-modal").Length())
	assert.Equal(t, 1, doc.Find("#contact-modal").Length())
}

func TestContactModal_SubmitButton(t *testing.T) {
	tests := []struct {
		status   contact.Status
		label    string
		disabled bool
	}{
		{contact.Idle, "Send Message", false},
		{contact.Submitting, "Sending...", true},
		{contact.Success, "Message Sent!", true},
		{contact.Error, "Error Sending Message", true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			doc := render(t, ContactModal(ContactModalConfig{
				State:          contact.State{Status: tt.status},
				ContactAddress: "support-care@narturebelle.com",
			}))

			button := doc.Find(`#contact-form button[type="submit"]`)
			require.Equal(t, 1, button.Length())
			assert.Equal(t, tt.label, strings.TrimSpace(button.Text()))
			_, disabled := button.Attr("disabled")
			assert.Equal(t, tt.disabled, disabled)
		})
	}
}

func TestContactModal_Fields(t *testing.T) {
	state := contact.State{
		Fields: contact.Message{Name: "Jane", Email: "jane@x.com", Subject: "Hi", Message: "Hello"},
		Status: contact.Idle,
	}
	doc := render(t, ContactModal(ContactModalConfig{State: state, ContactAddress: "care@example.com"}))

	form := doc.Find("#contact-form")
	assert.Equal(t, "/contact", form.AttrOr("action", ""))
	assert.Equal(t, "idle", form.AttrOr("data-status", ""))

	assert.Equal(t, "Jane", form.Find(`input[name="name"]`).AttrOr("value", ""))
	assert.Equal(t, "jane@x.com", form.Find(`input[name="email"]`).AttrOr("value", ""))
	assert.Equal(t, "email", form.Find(`input[name="email"]`).AttrOr("type", ""))
	assert.Equal(t, "Hi", form.Find(`input[name="subject"]`).AttrOr("value", ""))
	assert.Equal(t, "Hello", form.Find(`textarea[name="message"]`).Text())

	assert.Equal(t, 4, form.Find("[required]").Length())
	assert.Equal(t, 0, form.Find("[readonly]").Length())
	assert.Contains(t, form.Text(), "Your message will be sent to care@example.com")
}

func TestContactModal_LockedWhileSubmitting(t *testing.T) {
	doc := render(t, ContactModal(ContactModalConfig{State: contact.State{Status: contact.Submitting}}))

	assert.Equal(t, 4, doc.Find("#contact-form [readonly]").Length())
}

func TestLayout_Refresh(t *testing.T) {
	doc := render(t, Layout(PageConfig{RefreshAfter: 1}))

	assert.Equal(t, "1", doc.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))
	assert.Equal(t, "NartureBelle - Natural Pregnancy Care", doc.Find("title").Text())
}

func TestIcon(t *testing.T) {
	doc := render(t, Icon("lucide--send w-4 h-4", ""))

	span := doc.Find("span.iconify")
	assert.Equal(t, "lucide:send", span.AttrOr("data-icon", ""))
	assert.True(t, span.HasClass("w-4"))
	assert.Equal(t, "true", span.AttrOr("aria-hidden", ""))
}
