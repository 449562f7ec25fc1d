package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders a lucide icon through Iconify. iconClass is the icon name
// ("lucide--mail") optionally followed by size classes.
func Icon(iconClass, ariaLabel string) g.Node {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return nil
	}
	iconName := strings.Replace(parts[0], "--", ":", 1)
	classes := "iconify inline-block"
	if len(parts) > 1 {
		classes = fmt.Sprintf("iconify inline-block %s", strings.Join(parts[1:], " "))
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// PostButton is a button that submits an empty form to action. Navigation
// works without scripts this way.
func PostButton(action, class string, children ...g.Node) g.Node {
	return Form(
		Method("post"),
		Action(action),
		Class("inline"),
		Button(
			Type("submit"),
			Class(class),
			g.Group(children),
		),
	)
}

// CloseButton is the "x" in the top right corner of a modal.
func CloseButton(action string) g.Node {
	return Form(
		Method("post"),
		Action(action),
		Class("absolute top-4 right-4"),
		Button(
			Type("submit"),
			Class("text-[#6b4f35] hover:text-[#a7bbc0] transition-colors"),
			g.Attr("aria-label", "Close"),
			Icon("lucide--x w-6 h-6", ""),
		),
	)
}

func backdrop(id string, children ...g.Node) g.Node {
	return Div(
		ID(id),
		Class("fixed inset-0 bg-black/50 backdrop-blur-sm z-50 flex items-center justify-center"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Group(children),
	)
}
