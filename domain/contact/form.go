package contact

import (
	"fmt"
	"strings"
)

// Field names one of the four contact form inputs. The string values are
// the HTML input names and the JSON keys of Message.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}
}

// ParseField maps an input name to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(s)); f {
	case FieldName, FieldEmail, FieldSubject, FieldMessage:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Message is what a visitor sends through the contact form. It is also the
// payload a real delivery backend would receive.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of one field.
func (m Message) Get(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldEmail:
		return m.Email
	case FieldSubject:
		return m.Subject
	case FieldMessage:
		return m.Message
	}
	return ""
}

func (m *Message) set(f Field, v string) {
	switch f {
	case FieldName:
		m.Name = v
	case FieldEmail:
		m.Email = v
	case FieldSubject:
		m.Subject = v
	case FieldMessage:
		m.Message = v
	}
}

// Missing reports the first empty field, matching the browser's handling
// of the inputs' required attribute.
func (m Message) Missing() (Field, bool) {
	for _, f := range Fields() {
		if m.Get(f) == "" {
			return f, true
		}
	}
	return "", false
}

// Status is the submission status of the contact form.
type Status int

const (
	Idle Status = iota
	Submitting
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status as its lower-case name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a lower-case status name.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = Idle
	case "submitting":
		*s = Submitting
	case "success":
		*s = Success
	case "error":
		*s = Error
	default:
		return fmt.Errorf("unknown contact status %q", string(b))
	}
	return nil
}

// State is a point-in-time copy of the form.
type State struct {
	Fields Message `json:"fields"`
	Status Status  `json:"status"`
}

// CanSubmit reports whether the submit control is enabled.
func (s State) CanSubmit() bool {
	return s.Status == Idle
}
