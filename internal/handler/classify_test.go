package handler

import (
	"net/http"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		method string
		item   bool
		want   Kind
	}{
		{http.MethodGet, true, KindShow},
		{http.MethodGet, false, KindList},
		{http.MethodPut, true, KindUpdate},
		{http.MethodPatch, true, KindUpdate},
		{http.MethodPost, false, KindCreate},
		{http.MethodDelete, true, KindDestroy},
		// всё остальное — unknown
		{http.MethodPut, false, KindUnknown},
		{http.MethodPatch, false, KindUnknown},
		{http.MethodPost, true, KindUnknown},
		{http.MethodDelete, false, KindUnknown},
		{http.MethodHead, true, KindUnknown},
		{http.MethodOptions, false, KindUnknown},
	}

	for _, tc := range cases {
		if got := Classify(tc.method, tc.item); got != tc.want {
			t.Fatalf("Classify(%s, item=%v) = %s, want %s", tc.method, tc.item, got, tc.want)
		}
	}
}

func TestIsItemPattern(t *testing.T) {
	cases := []struct {
		pattern string
		want    bool
	}{
		{"/users/:id", true},
		{"/users/{id}", true},
		{"/users/{id}/", true},
		{"/users", false},
		{"/users/", false},
		{"/:id", true},
		{"/users/42", false},
		{"/users/:id/comments", false},
		{"", false},
		{"/", false},
	}

	for _, tc := range cases {
		if got := IsItemPattern(tc.pattern); got != tc.want {
			t.Fatalf("IsItemPattern(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

// GET-классификация согласована с формой шаблона: последний сегмент-плейсхолдер
// означает show, иначе list
func TestClassify_GetFollowsPatternShape(t *testing.T) {
	patterns := map[string]Kind{
		"/users/:id":     KindShow,
		"/users/{id}":    KindShow,
		"/users":         KindList,
		"/projects/:id":  KindShow,
		"/projects":      KindList,
		"/users/:id/pets": KindList,
	}
	for pattern, want := range patterns {
		if got := Classify(http.MethodGet, IsItemPattern(pattern)); got != want {
			t.Fatalf("GET %s classified as %s, want %s", pattern, got, want)
		}
	}
}
