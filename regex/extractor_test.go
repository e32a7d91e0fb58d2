package regex_test

import (
	"testing"

	"github.com/hostwalk/hostwalk/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("captures double-quoted href", func(t *testing.T) {
		t.Parallel()

		e := regex.NewLinkExtractor()
		refs, err := e.Extract(`<a href="x.html">x</a>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"x.html"}, refs)
	})

	t.Run("captures single-quoted href", func(t *testing.T) {
		t.Parallel()

		e := regex.NewLinkExtractor()
		refs, err := e.Extract(`<a class="nav" href='a/b.html'>b</a>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"a/b.html"}, refs)
	})

	t.Run("matches tags case-insensitively", func(t *testing.T) {
		t.Parallel()

		e := regex.NewLinkExtractor()
		refs, err := e.Extract(`<A HREF="upper.html">u</A>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"upper.html"}, refs)
	})

	t.Run("returns links in document order", func(t *testing.T) {
		t.Parallel()

		e := regex.NewLinkExtractor()
		refs, err := e.Extract(`<a href="one"></a><p>text</p><a id="z" href="two"></a>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, refs)
	})

	t.Run("malformed tag without closing quote yields no match", func(t *testing.T) {
		t.Parallel()

		e := regex.NewLinkExtractor()
		refs, err := e.Extract(`<a href="broken.html`)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("ignores img src attributes", func(t *testing.T) {
		t.Parallel()

		e := regex.NewLinkExtractor()
		refs, err := e.Extract(`<img src="pic.png"><a href="page.html"></a>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"page.html"}, refs)
	})
}

func TestImageExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("captures img src values", func(t *testing.T) {
		t.Parallel()

		e := regex.NewImageExtractor()
		refs, err := e.Extract(`<img src='y.png'>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"y.png"}, refs)
	})

	t.Run("captures multiple images", func(t *testing.T) {
		t.Parallel()

		e := regex.NewImageExtractor()
		refs, err := e.Extract(`<img src="image1.jpg"> <img src="image2.jpg">`)
		require.NoError(t, err)
		assert.Equal(t, []string{"image1.jpg", "image2.jpg"}, refs)
	})

	t.Run("ignores anchor hrefs", func(t *testing.T) {
		t.Parallel()

		e := regex.NewImageExtractor()
		refs, err := e.Extract(`<a href="page.html"></a><img alt="x" src="pic.gif">`)
		require.NoError(t, err)
		assert.Equal(t, []string{"pic.gif"}, refs)
	})

	t.Run("empty page yields no matches", func(t *testing.T) {
		t.Parallel()

		e := regex.NewImageExtractor()
		refs, err := e.Extract("")
		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}
