package goquery_test

import (
	"testing"

	"github.com/hostwalk/hostwalk/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("collects hrefs in document order", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		refs, err := e.Extract(`<html><body>
			<a href="/docs">docs</a>
			<p><a href="about.html">about</a></p>
		</body></html>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"/docs", "about.html"}, refs)
	})

	t.Run("handles unquoted attributes the regex contract rejects", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		refs, err := e.Extract(`<a href=bare.html>bare</a>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"bare.html"}, refs)
	})

	t.Run("skips anchors without href", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		refs, err := e.Extract(`<a name="top">top</a><a href="">empty</a>`)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}

func TestImageExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := goquery.NewImageExtractor()
	refs, err := e.Extract(`<img src="a.png"><a href="x.html"></a><img src='b.jpg'>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.jpg"}, refs)
}
