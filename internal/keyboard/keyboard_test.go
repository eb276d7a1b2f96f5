package keyboard

import (
	"testing"

	"github.com/m04kA/yetal-bot/internal/catalog"
	"github.com/m04kA/yetal-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return NewBuilder(LabelsFromCatalog(c), "https://yetal.co")
}

func TestBuilder_MainMenu(t *testing.T) {
	kb := newBuilder(t).MainMenu()

	require.Len(t, kb.Rows, 2)
	require.Len(t, kb.Rows[0], 1)
	require.Len(t, kb.Rows[1], 1)

	subscribe := kb.Rows[0][0]
	assert.True(t, subscribe.IsLink())
	assert.Equal(t, "https://yetal.co", subscribe.URL)
	assert.Empty(t, subscribe.CallbackData)
	assert.Contains(t, subscribe.Text, "Subscribe")

	contact := kb.Rows[1][0]
	assert.False(t, contact.IsLink())
	assert.Equal(t, domain.CallbackContact, contact.CallbackData)
	assert.Contains(t, contact.Text, "Contact")
}

func TestBuilder_BackButton(t *testing.T) {
	kb := newBuilder(t).BackButton()

	require.Len(t, kb.Rows, 1)
	require.Len(t, kb.Rows[0], 1)
	assert.Equal(t, domain.CallbackMainMenu, kb.Rows[0][0].CallbackData)
	assert.Empty(t, kb.Rows[0][0].URL)
	assert.False(t, kb.IsEmpty())
}

func TestBuilder_ReturnsFreshKeyboards(t *testing.T) {
	b := NewBuilder(Labels{Subscribe: "s", Contact: "c", Back: "b"}, "https://yetal.co")

	first := b.MainMenu()
	first.Rows[0][0].Text = "mutated"

	assert.Equal(t, "s", b.MainMenu().Rows[0][0].Text)
}
