package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLightbox() (*Lightbox, *[]string, *[]string) {
	var opened, copied []string
	l := NewWith(
		func(url string) error { opened = append(opened, url); return nil },
		func(text string) error { copied = append(copied, text); return nil },
	)
	return l, &opened, &copied
}

func TestLightbox_RefreshReplacesLinks(t *testing.T) {
	l, _, _ := newTestLightbox()
	l.Refresh([]string{"a", "b"})
	l.Refresh([]string{"a", "b", "c"})
	assert.Equal(t, 3, l.Len())

	link, err := l.Link(2)
	require.NoError(t, err)
	assert.Equal(t, "c", link)
}

func TestLightbox_RefreshCopiesInput(t *testing.T) {
	l, _, _ := newTestLightbox()
	input := []string{"a"}
	l.Refresh(input)
	input[0] = "changed"

	link, err := l.Link(0)
	require.NoError(t, err)
	assert.Equal(t, "a", link)
}

func TestLightbox_OpenAndCopy(t *testing.T) {
	l, opened, copied := newTestLightbox()
	l.Refresh([]string{"https://cdn.example/1.jpg", "https://cdn.example/2.jpg"})

	link, err := l.Open(1)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/2.jpg", link)
	assert.Equal(t, []string{"https://cdn.example/2.jpg"}, *opened)

	_, err = l.Copy(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example/1.jpg"}, *copied)
}

func TestLightbox_OutOfRange(t *testing.T) {
	l, opened, _ := newTestLightbox()
	l.Refresh([]string{"x"})

	for _, i := range []int{-1, 1, 5} {
		_, err := l.Open(i)
		assert.ErrorIs(t, err, ErrNoImage)
	}
	assert.Empty(t, *opened)
}

func TestLightbox_WrapsOpenerError(t *testing.T) {
	l, _, _ := newTestLightbox()
	l.open = func(string) error { return errors.New("no browser") }
	l.Refresh([]string{"x"})

	_, err := l.Open(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open image")
}
