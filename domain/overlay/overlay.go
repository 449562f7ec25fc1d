// Package overlay tracks which of the landing page's two modal dialogs are
// visible. The flags are independent: opening one never closes the other.
package overlay

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownAction is returned by Apply for an action it does not know.
var ErrUnknownAction = errors.New("unknown overlay action")

// Visibility is a point-in-time copy of both overlay flags.
type Visibility struct {
	InfoModalOpen    bool `json:"infoModalOpen"`
	ContactModalOpen bool `json:"contactModalOpen"`
}

// Action names a single flag write.
type Action string

const (
	OpenInfo     Action = "open-info"
	OpenContact  Action = "open-contact"
	CloseInfo    Action = "close-info"
	CloseContact Action = "close-contact"
)

// Controller owns the two flags. Both start closed.
type Controller struct {
	mu  sync.Mutex
	vis Visibility
}

// NewController returns a controller with both overlays closed.
func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) OpenInfo()     { c.set(&c.vis.InfoModalOpen, true) }
func (c *Controller) OpenContact()  { c.set(&c.vis.ContactModalOpen, true) }
func (c *Controller) CloseInfo()    { c.set(&c.vis.InfoModalOpen, false) }
func (c *Controller) CloseContact() { c.set(&c.vis.ContactModalOpen, false) }

func (c *Controller) set(flag *bool, v bool) {
	c.mu.Lock()
	*flag = v
	c.mu.Unlock()
}

// Apply performs the flag write named by a.
func (c *Controller) Apply(a Action) error {
	switch a {
	case OpenInfo:
		c.OpenInfo()
	case OpenContact:
		c.OpenContact()
	case CloseInfo:
		c.CloseInfo()
	case CloseContact:
		c.CloseContact()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
	return nil
}

// Snapshot returns the current flags.
func (c *Controller) Snapshot() Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vis
}
