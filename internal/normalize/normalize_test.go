package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_RejectsExternalURLs(t *testing.T) {
	for _, raw := range []string{
		"http://example.com/",
		"https://example.com/about",
		"/http://example.com/",
		"/https://example.com/",
		"httpanything",
	} {
		_, ok := Clean(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}

func TestClean_StripsQuery(t *testing.T) {
	p, ok := Clean("/search?q=hello&page=2")
	require.True(t, ok)
	assert.Equal(t, "/search/", p)

	// Everything from the first '?' goes, even a second one.
	p, ok = Clean("/a?x=1?y=2")
	require.True(t, ok)
	assert.Equal(t, "/a/", p)
}

func TestClean_SlashBounds(t *testing.T) {
	cases := map[string]string{
		"/about":    "/about/",
		"/about/":   "/about/",
		"about":     "/about/",
		"about/us":  "/about/us/",
		"/":         "/",
		"":          "/",
		"?q=1":      "/",
		"/blog?x=1": "/blog/",
	}
	for raw, want := range cases {
		got, ok := Clean(raw)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
		assert.True(t, got[0] == '/' && got[len(got)-1] == '/', "bounds for %q", raw)
	}
}

func TestClean_Idempotent(t *testing.T) {
	for _, raw := range []string{"/a/b?q=1", "about", "/x/", "/"} {
		once, ok := Clean(raw)
		require.True(t, ok)
		twice, ok := Clean(once)
		require.True(t, ok)
		assert.Equal(t, once, twice)
	}
}
