package service

import (
	"context"
	"net/url"
	"testing"

	"go.uber.org/zap"

	"hbnb-front/internal/domain"
	"hbnb-front/internal/render"
)

func TestPageIdentity(t *testing.T) {
	cases := map[string]string{
		"/index.html":        "index.html",
		"/static/place.html": "place.html",
		"add_review.html":    "add_review.html",
		"/":                  "",
		"":                   "",
	}
	for in, want := range cases {
		if got := PageIdentity(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestDispatcher_RoutesToOneController(t *testing.T) {
	api := newMockAPI()
	seedListings(api)
	api.listings["42"] = domain.Listing{ID: "42", Title: "Sea view flat"}
	d := NewDispatcher(zap.NewNop(), api, "token", 4)

	t.Run("index renders cards with filter", func(t *testing.T) {
		doc := render.NewDocument()
		err := d.Load(context.Background(), PageRequest{
			Path:    "/index.html",
			Query:   url.Values{"price": {"$100"}},
			Session: newMemorySession("token", "tok"),
			Target:  doc,
		})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got := cardTitles(t, doc); !equalStrings(got, []string{"Cabin"}) {
			t.Fatalf("unexpected cards %v", got)
		}
	})

	t.Run("place renders detail", func(t *testing.T) {
		doc := render.NewDocument()
		err := d.Load(context.Background(), PageRequest{
			Path:    "/place.html",
			Query:   url.Values{"id": {"42"}},
			Session: newMemorySession("token", "tok"),
			Target:  doc,
		})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if regionText(doc, RegionPlaceTitle) != "Sea view flat" {
			t.Fatalf("expected detail title")
		}
		if doc.Written(RegionPlaces) {
			t.Fatalf("only the detail controller may run")
		}
	})

	t.Run("unknown page is a no-op", func(t *testing.T) {
		before, _, _, _ := api.calls()
		doc := render.NewDocument()
		err := d.Load(context.Background(), PageRequest{
			Path:    "/about.html",
			Session: newMemorySession("token", "tok"),
			Target:  doc,
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if after, _, _, _ := api.calls(); after != before {
			t.Fatalf("unknown page must not call the api")
		}
	})

	t.Run("login page renders shell only", func(t *testing.T) {
		before, _, _, _ := api.calls()
		doc := render.NewDocument()
		err := d.Load(context.Background(), PageRequest{
			Path:    "/login.html",
			Session: newMemorySession(),
			Target:  doc,
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if after, _, _, _ := api.calls(); after != before {
			t.Fatalf("login page must not check auth")
		}
	})
}
