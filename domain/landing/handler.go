package landing

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Narturebelle/Narturebelle/domain/contact"
	"github.com/Narturebelle/Narturebelle/domain/overlay"
	"github.com/Narturebelle/Narturebelle/internal/components"
	"github.com/Narturebelle/Narturebelle/pkg/apperror"
	"github.com/Narturebelle/Narturebelle/pkg/logger"
)

// Content is the static part of the page that comes from configuration.
type Content struct {
	LogoImageURL   string
	HeroImageURL   string
	ContactAddress string
}

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Handler serves the landing page for every visitor.
type Handler struct {
	store   *Store
	metrics *Metrics
	content Content
	cookie  CookieConfig
	log     *slog.Logger
}

// NewHandler creates a landing page handler.
func NewHandler(store *Store, metrics *Metrics, content Content, cookie CookieConfig, log *slog.Logger) *Handler {
	return &Handler{
		store:   store,
		metrics: metrics,
		content: content,
		cookie:  cookie,
		log:     log.With(logger.Scope("landing")),
	}
}

// Index renders the page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	view := sess.Page.View()

	page := components.LandingPage(components.LandingConfig{
		LogoImageURL:   h.content.LogoImageURL,
		HeroImageURL:   h.content.HeroImageURL,
		ContactAddress: h.content.ContactAddress,
		Overlays:       view.Overlays,
		Contact:        view.Contact,
		Refresh:        view.Settling(),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := page.Render(w); err != nil {
		h.log.Warn("render landing page", logger.Error(err))
	}
}

// Navigate handles a navbar or call-to-action click.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	target := Target(chi.URLParam(r, "target"))
	sess := h.session(w, r)

	if err := sess.Page.Navigate(target); err != nil {
		h.fail(w, r, err)
		return
	}
	h.metrics.Navigation.WithLabelValues(string(target)).Inc()
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("narturebelle.nav.target", string(target)))

	seeOther(w, r)
}

// CloseInfo dismisses the coming soon modal.
func (h *Handler) CloseInfo(w http.ResponseWriter, r *http.Request) {
	h.overlay(w, r, overlay.CloseInfo)
}

// CloseContact dismisses the contact modal. A pending submission keeps
// running.
func (h *Handler) CloseContact(w http.ResponseWriter, r *http.Request) {
	h.overlay(w, r, overlay.CloseContact)
}

func (h *Handler) overlay(w http.ResponseWriter, r *http.Request, a overlay.Action) {
	sess := h.session(w, r)
	if err := sess.Page.Overlays().Apply(a); err != nil {
		h.fail(w, r, err)
		return
	}
	seeOther(w, r)
}

// Submit takes the posted form, stores its fields and starts a submission.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, apperror.NewBadRequest("malformed form body").WithInternal(err))
		return
	}
	sess := h.session(w, r)

	if !sess.AllowContact() {
		h.metrics.Submissions.WithLabelValues(OutcomeRateLimited).Inc()
		h.log.Warn("contact submission rate limited", slog.String("session", sess.ID))
		h.fail(w, r, apperror.ErrRateLimited)
		return
	}

	form := sess.Page.Form()
	msg := contact.Message{
		Name:    r.PostForm.Get(string(contact.FieldName)),
		Email:   r.PostForm.Get(string(contact.FieldEmail)),
		Subject: r.PostForm.Get(string(contact.FieldSubject)),
		Message: r.PostForm.Get(string(contact.FieldMessage)),
	}
	if err := form.SetFields(msg); err != nil {
		h.metrics.Submissions.WithLabelValues(OutcomeRejected).Inc()
		h.fail(w, r, err)
		return
	}
	if err := form.Submit(r.Context()); err != nil {
		h.metrics.Submissions.WithLabelValues(OutcomeRejected).Inc()
		if f, missing := msg.Missing(); missing && errors.Is(err, contact.ErrMissingField) {
			err = apperror.NewValidation(string(f), string(f)+" is required").WithInternal(err)
		}
		h.fail(w, r, err)
		return
	}
	h.metrics.Submissions.WithLabelValues(OutcomeStarted).Inc()

	seeOther(w, r)
}

// SetField updates a single field as the visitor types.
func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, apperror.NewBadRequest("malformed form body").WithInternal(err))
		return
	}
	field, err := contact.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	sess := h.session(w, r)

	if err := sess.Page.Form().SetField(field, r.PostForm.Get("value")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StateResponse is the body of GET /api/state.
type StateResponse struct {
	View
	CanSubmit   bool   `json:"canSubmit"`
	SubmitLabel string `json:"submitLabel"`
}

// State reports the visitor's page as JSON.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	view := h.session(w, r).Page.View()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(StateResponse{
		View:        view,
		CanSubmit:   view.CanSubmit(),
		SubmitLabel: components.SubmitLabel(view.Contact.Status),
	})
}

// session resolves the visitor's session, issuing a cookie for new ones.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *Session {
	var id string
	if c, err := r.Cookie(h.cookie.Name); err == nil {
		id = c.Value
	}

	sess, created := h.store.Resolve(id)
	if created {
		h.metrics.ActiveSessions.Set(float64(h.store.Len()))
		h.log.Debug("session created", slog.String("session", sess.ID))
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookie.Name,
			Value:    sess.ID,
			Path:     "/",
			MaxAge:   int(h.cookie.TTL.Seconds()),
			HttpOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// fail maps domain errors onto API errors.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.Error
	switch {
	case errors.As(err, &appErr):
	case errors.Is(err, ErrUnknownTarget):
		err = apperror.NewNotFound("navigation target", chi.URLParam(r, "target")).WithInternal(err)
	case errors.Is(err, contact.ErrUnknownField):
		err = apperror.NewNotFound("contact form field", chi.URLParam(r, "field")).WithInternal(err)
	case errors.Is(err, contact.ErrFormLocked), errors.Is(err, contact.ErrNotIdle):
		err = apperror.ErrFormBusy.WithInternal(err)
	case errors.Is(err, contact.ErrMissingField):
		err = apperror.ErrValidation.WithMessage("all contact form fields are required").WithInternal(err)
	}
	apperror.WriteError(w, r, h.log, err)
}

func seeOther(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
