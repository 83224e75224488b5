package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resto/pkg/utils"
)

func newTestPdokClient(server *httptest.Server) *PdokClient {
	return &PdokClient{
		HTTP:       server.Client(),
		BaseURL:    server.URL,
		Cache:      NewInMemoryLookupCache(),
		DefaultTTL: time.Hour,
	}
}

func TestLookupParsesDoc(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "1091TK 52" {
			t.Errorf("query q = %q, want %q", got, "1091TK 52")
		}
		if got := r.URL.Query().Get("fq"); got != "type:adres" {
			t.Errorf("query fq = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"docs":[{
			"straatnaam":"Marcusstraat",
			"woonplaatsnaam":"Amsterdam",
			"postcode":"1091TK",
			"huisnummer":52,
			"centroide_ll":"POINT(4.91979 52.35299)",
			"weergavenaam":"Marcusstraat 52, 1091TK Amsterdam"
		}]}}`))
	}))
	defer server.Close()

	client := newTestPdokClient(server)
	got, err := client.Lookup(context.Background(), "1091 tk", "52", "")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if got.Street != "Marcusstraat" || got.City != "Amsterdam" {
		t.Errorf("unexpected street/city: %+v", got)
	}
	if got.HouseNumber != "52" {
		t.Errorf("house number = %q", got.HouseNumber)
	}
	if got.Address != "Marcusstraat 52, 1091TK Amsterdam" {
		t.Errorf("address = %q", got.Address)
	}
	if got.Lat == nil || got.Lng == nil {
		t.Fatal("expected coordinates")
	}
	if *got.Lat != 52.35299 || *got.Lng != 4.91979 {
		t.Errorf("lat/lng = %v/%v", *got.Lat, *got.Lng)
	}
}

func TestLookupComposesAddressWhenDisplayNameMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"docs":[{
			"straatnaam":"Van Woustraat",
			"woonplaatsnaam":"Amsterdam",
			"postcode":"1074AB",
			"huisnummer":45,
			"huisletter":"B",
			"centroide_ll":"POINT(4.9003 52.3524)"
		}]}}`))
	}))
	defer server.Close()

	client := newTestPdokClient(server)
	got, err := client.Lookup(context.Background(), "1074AB", "45", "B")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.Address != "Van Woustraat 45B, 1074AB Amsterdam" {
		t.Errorf("composed address = %q", got.Address)
	}
	if got.HouseNumberAddition != "B" {
		t.Errorf("addition = %q", got.HouseNumberAddition)
	}
}

func TestLookupMissingFields(t *testing.T) {
	client := &PdokClient{Cache: NewInMemoryLookupCache()}

	for _, tc := range []struct{ postcode, number string }{
		{"", "52"},
		{"1091TK", ""},
		{"  ", "  "},
	} {
		_, err := client.Lookup(context.Background(), tc.postcode, tc.number, "")
		if !errors.Is(err, utils.ErrMissingFields) {
			t.Errorf("Lookup(%q, %q) = %v, want ErrMissingFields", tc.postcode, tc.number, err)
		}
	}
}

func TestLookupNoDocs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"docs":[]}}`))
	}))
	defer server.Close()

	client := newTestPdokClient(server)
	_, err := client.Lookup(context.Background(), "9999ZZ", "1", "")
	if !errors.Is(err, utils.ErrAddressNotFound) {
		t.Errorf("got %v, want ErrAddressNotFound", err)
	}
}

func TestLookupUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestPdokClient(server)
	_, err := client.Lookup(context.Background(), "1091TK", "52", "")
	if !errors.Is(err, utils.ErrLookupUpstream) {
		t.Errorf("got %v, want ErrLookupUpstream", err)
	}
}

func TestLookupCachesResults(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":{"docs":[{
			"straatnaam":"Zeedijk",
			"woonplaatsnaam":"Amsterdam",
			"postcode":"1012AS",
			"huisnummer":77,
			"weergavenaam":"Zeedijk 77, 1012AS Amsterdam"
		}]}}`))
	}))
	defer server.Close()

	client := newTestPdokClient(server)
	for i := 0; i < 3; i++ {
		if _, err := client.Lookup(context.Background(), "1012 AS", "77", ""); err != nil {
			t.Fatalf("Lookup #%d: %v", i+1, err)
		}
	}
	if hits != 1 {
		t.Errorf("upstream hit %d times, want 1 (cached)", hits)
	}
}

func TestParsePoint(t *testing.T) {
	lat, lng := parsePoint("POINT(4.91979 52.35299)")
	if lat == nil || lng == nil {
		t.Fatal("expected both coordinates")
	}
	if *lat != 52.35299 || *lng != 4.91979 {
		t.Errorf("lat/lng = %v/%v", *lat, *lng)
	}

	lat, lng = parsePoint("not wkt")
	if lat != nil || lng != nil {
		t.Error("malformed point should yield nils")
	}
}
