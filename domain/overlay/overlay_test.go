package overlay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_StartsClosed(t *testing.T) {
	c := NewController()
	assert.Equal(t, Visibility{}, c.Snapshot())
}

func TestController_EachOperationWritesOneFlag(t *testing.T) {
	tests := []struct {
		name  string
		start Visibility
		op    func(*Controller)
		want  Visibility
	}{
		{"open info", Visibility{}, (*Controller).OpenInfo, Visibility{InfoModalOpen: true}},
		{"open contact", Visibility{}, (*Controller).OpenContact, Visibility{ContactModalOpen: true}},
		{"close info keeps contact", Visibility{true, true}, (*Controller).CloseInfo, Visibility{ContactModalOpen: true}},
		{"close contact keeps info", Visibility{true, true}, (*Controller).CloseContact, Visibility{InfoModalOpen: true}},
		{"open info while contact open", Visibility{ContactModalOpen: true}, (*Controller).OpenInfo, Visibility{true, true}},
		{"close already closed", Visibility{}, (*Controller).CloseContact, Visibility{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Controller{vis: tt.start}
			tt.op(c)
			assert.Equal(t, tt.want, c.Snapshot())
		})
	}
}

func TestController_ApplyUnknown(t *testing.T) {
	c := NewController()
	c.OpenInfo()

	err := c.Apply(Action("toggle-everything"))
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, Visibility{InfoModalOpen: true}, c.Snapshot())
}

// Replaying a random toggle sequence must match a reference model that
// treats the two flags as unrelated booleans.
func TestController_SequencesHaveNoHiddenCoupling(t *testing.T) {
	actions := []Action{OpenInfo, OpenContact, CloseInfo, CloseContact}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		c := NewController()
		var info, contact bool

		n := rng.Intn(20)
		for i := 0; i < n; i++ {
			a := actions[rng.Intn(len(actions))]
			require.NoError(t, c.Apply(a))
			switch a {
			case OpenInfo:
				info = true
			case OpenContact:
				contact = true
			case CloseInfo:
				info = false
			case CloseContact:
				contact = false
			}
		}

		assert.Equal(t, Visibility{InfoModalOpen: info, ContactModalOpen: contact}, c.Snapshot(), "run %d", run)
	}
}
