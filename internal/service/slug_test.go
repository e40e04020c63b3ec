package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World!", "hello-world"},
		{"Hello, World", "hello-world"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"CaFÉ au Lait", "cafe-au-lait"},
		{"Go & Web", "go-and-web"},
		{"!!!", "entry"},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestDisambiguateSlugAppendsMillisecondEpoch(t *testing.T) {
	before := time.Now().UnixMilli()
	got := disambiguateSlug("hello-world")
	after := time.Now().UnixMilli()

	rest, found := strings.CutPrefix(got, "hello-world-")
	require.True(t, found, "suffix missing: %q", got)

	stamp, err := strconv.ParseInt(rest, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stamp, before)
	assert.LessOrEqual(t, stamp, after)
}
