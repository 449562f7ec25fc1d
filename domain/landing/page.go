// Package landing is the page shell of the NartureBelle landing site: the
// per-visitor page object, the session store that keeps one page per
// visitor, and the HTTP handlers that drive both.
package landing

import (
	"errors"
	"fmt"

	"github.com/Narturebelle/Narturebelle/domain/contact"
	"github.com/Narturebelle/Narturebelle/domain/overlay"
)

// ErrUnknownTarget is returned by Navigate for a target the navbar does not
// render.
var ErrUnknownTarget = errors.New("unknown navigation target")

// Target names a navigation control.
type Target string

const (
	TargetHome    Target = "home"
	TargetContact Target = "contact"
	TargetEnquiry Target = "enquiry"
	TargetLogin   Target = "login"
	TargetJourney Target = "journey"
)

// Targets lists every navigation target.
func Targets() []Target {
	return []Target{TargetHome, TargetContact, TargetEnquiry, TargetLogin, TargetJourney}
}

// Page is what one visitor sees: two overlay flags and the contact form.
type Page struct {
	overlays *overlay.Controller
	form     *contact.Machine
}

// NewPage wires a fresh page around form. A successful submission closes
// the contact modal once the form has reset.
func NewPage(form *contact.Machine) *Page {
	p := &Page{
		overlays: overlay.NewController(),
		form:     form,
	}
	form.OnReset(p.overlays.CloseContact)
	return p
}

// Overlays exposes the overlay flags.
func (p *Page) Overlays() *overlay.Controller { return p.overlays }

// Form exposes the contact form.
func (p *Page) Form() *contact.Machine { return p.form }

// Navigate handles a navbar or hero click. Contact opens the contact form;
// every other section is not built yet and opens the info modal.
func (p *Page) Navigate(t Target) error {
	switch t {
	case TargetContact:
		p.overlays.OpenContact()
	case TargetHome, TargetEnquiry, TargetLogin, TargetJourney:
		p.overlays.OpenInfo()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, string(t))
	}
	return nil
}

// View is a copy of the page for rendering.
type View struct {
	Overlays overlay.Visibility `json:"overlays"`
	Contact  contact.State      `json:"contact"`
}

// CanSubmit reports whether the contact submit button is enabled.
func (v View) CanSubmit() bool { return v.Contact.CanSubmit() }

// Settling reports whether a timer-driven transition is still pending, so
// the rendered page should refresh itself.
func (v View) Settling() bool {
	s := v.Contact.Status
	return s == contact.Submitting || s == contact.Success
}

// View snapshots the page.
func (p *Page) View() View {
	return View{
		Overlays: p.overlays.Snapshot(),
		Contact:  p.form.Snapshot(),
	}
}
