package treatment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenSlots(t *testing.T) {
	tr := &Treatment{
		Name:  "Teeth Cleaning",
		Slots: []string{"9:00 AM", "10:00 AM", "11:00 AM"},
	}

	t.Run("nothing booked", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "10:00 AM", "11:00 AM"}, tr.OpenSlots(nil))
	})

	t.Run("one booked", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "11:00 AM"}, tr.OpenSlots([]string{"10:00 AM"}))
	})

	t.Run("fully booked yields empty non-nil slice", func(t *testing.T) {
		open := tr.OpenSlots([]string{"11:00 AM", "9:00 AM", "10:00 AM"})
		assert.NotNil(t, open)
		assert.Empty(t, open)
	})

	t.Run("unknown booked labels are ignored", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "10:00 AM", "11:00 AM"}, tr.OpenSlots([]string{"2:00 PM"}))
	})

	t.Run("catalog order preserved", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "11:00 AM"}, tr.OpenSlots([]string{"10:00 AM", "10:00 AM"}))
	})
}

func TestHasSlot(t *testing.T) {
	tr := &Treatment{Slots: []string{"9:00 AM", "10:00 AM"}}

	assert.True(t, tr.HasSlot("10:00 AM"))
	assert.False(t, tr.HasSlot("10:00 am"))
	assert.False(t, tr.HasSlot(""))
}
