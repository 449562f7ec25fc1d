package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Narturebelle/Narturebelle/domain/contact"
)

const primaryButtonClass = "px-6 py-2 bg-[#a7bbc0] text-white rounded-md hover:bg-[#96aab0] transition-colors"

// InfoModal is the "coming soon" dialog shown for every section that does
// not exist yet.
func InfoModal() g.Node {
	return backdrop("info-modal",
		Div(
			Class("bg-white rounded-lg p-8 max-w-md relative"),
			CloseButton("/modals/info/close"),
			H2(
				Class("text-2xl font-serif text-[#6b4f35] mb-4 text-center"),
				g.Text("We're Working On It!"),
			),
			P(
				Class("text-[#6b4f35] text-center mb-6"),
				g.Text("Our team is putting the finishing touches on this section. We'll be launching soon!"),
			),
			Div(
				Class("flex justify-center"),
				PostButton("/modals/info/close", primaryButtonClass, g.Text("Got it")),
			),
		),
	)
}

type ContactModalConfig struct {
	State          contact.State
	ContactAddress string
}

// ContactModal renders the contact form. The submit button is only enabled
// while the form is idle and its label follows the submission status.
func ContactModal(config ContactModalConfig) g.Node {
	locked := config.State.Status == contact.Submitting || config.State.Status == contact.Success

	return backdrop("contact-modal",
		Div(
			Class("bg-white rounded-lg p-8 max-w-xl w-full mx-4 relative"),
			CloseButton("/modals/contact/close"),
			H2(Class("text-2xl font-serif text-[#6b4f35] mb-6"), g.Text("Contact Us")),
			Form(
				ID("contact-form"),
				Method("post"),
				Action("/contact"),
				Class("space-y-4"),
				g.Attr("data-status", config.State.Status.String()),
				textField(contact.FieldName, "Name", "text", config.State.Fields.Name, locked),
				textField(contact.FieldEmail, "Email", "email", config.State.Fields.Email, locked),
				textField(contact.FieldSubject, "Subject", "text", config.State.Fields.Subject, locked),
				Div(
					fieldLabel(contact.FieldMessage, "Message"),
					Textarea(
						ID(string(contact.FieldMessage)),
						Name(string(contact.FieldMessage)),
						Rows("4"),
						Required(),
						g.If(locked, ReadOnly()),
						Class(inputClass),
						g.Text(config.State.Fields.Message),
					),
				),
				Button(
					Type("submit"),
					g.If(!config.State.CanSubmit(), Disabled()),
					Class("w-full px-6 py-3 bg-[#a7bbc0] text-white rounded-md hover:bg-[#96aab0] transition-colors flex items-center justify-center gap-2 disabled:opacity-75"),
					submitLabel(config.State.Status),
				),
				P(
					Class("text-sm text-[#6b4f35] text-center mt-4"),
					g.Textf("Your message will be sent to %s", config.ContactAddress),
				),
			),
		),
	)
}

// SubmitLabel is the text on the contact form's submit button.
func SubmitLabel(s contact.Status) string {
	switch s {
	case contact.Submitting:
		return "Sending..."
	case contact.Success:
		return "Message Sent!"
	case contact.Error:
		return "Error Sending Message"
	default:
		return "Send Message"
	}
}

func submitLabel(s contact.Status) g.Node {
	if s == contact.Idle {
		return g.Group([]g.Node{Icon("lucide--send w-4 h-4", ""), g.Text(SubmitLabel(s))})
	}
	return g.Text(SubmitLabel(s))
}

const inputClass = "w-full px-4 py-2 border border-[#a7bbc0] rounded-md focus:outline-none focus:ring-2 focus:ring-[#a7bbc0]"

func fieldLabel(f contact.Field, text string) g.Node {
	return Label(
		For(string(f)),
		Class("block text-sm font-medium text-[#6b4f35] mb-1"),
		g.Text(text),
	)
}

func textField(f contact.Field, label, inputType, value string, locked bool) g.Node {
	return Div(
		fieldLabel(f, label),
		Input(
			Type(inputType),
			ID(string(f)),
			Name(string(f)),
			Value(value),
			Required(),
			g.If(locked, ReadOnly()),
			Class(inputClass),
		),
	)
}
