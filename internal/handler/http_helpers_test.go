package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseTagsQuery(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"go", []string{"go"}},
		{"go,web", []string{"go", "web"}},
		{" go , ,web, ", []string{"go", "web"}},
		{",,,", nil},
	}

	for _, tc := range cases {
		got := parseTagsQuery(tc.raw)
		if len(got) != len(tc.want) {
			t.Fatalf("parseTagsQuery(%q) = %v, want %v", tc.raw, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("parseTagsQuery(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		}
	}
}

func TestParsePositiveIntQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query    string
		fallback int
		want     int
	}{
		{"page=3", 1, 3},
		{"page=0", 1, 1},
		{"page=-2", 1, 1},
		{"page=abc", 1, 1},
		{"", 1, 1},
		{"perPage=20", 1, 1},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/?"+tc.query, nil)

		if got := parsePositiveIntQuery(c, "page", tc.fallback); got != tc.want {
			t.Fatalf("query %q: got %d, want %d", tc.query, got, tc.want)
		}
	}
}
