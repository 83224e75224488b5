package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"resto/internal/models/response_models"
	"resto/pkg/utils"
)

type AddressLookupServiceInterface interface {
	Lookup(ctx context.Context, postcode, houseNumber, addition string) (response_models.AddressLookupResult, error)
}

// --------- In-memory cache per normalized query ---------

type lookupCacheEntry struct {
	Result    response_models.AddressLookupResult
	ExpiresAt time.Time
}

type LookupCache interface {
	Get(key string) (response_models.AddressLookupResult, bool)
	Set(key string, v response_models.AddressLookupResult, ttl time.Duration)
}

type inMemoryLookupCache struct {
	mu    sync.RWMutex
	store map[string]lookupCacheEntry
}

func NewInMemoryLookupCache() LookupCache {
	return &inMemoryLookupCache{store: make(map[string]lookupCacheEntry)}
}

func (c *inMemoryLookupCache) Get(key string) (response_models.AddressLookupResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[key]
	if !ok || time.Now().After(it.ExpiresAt) {
		return response_models.AddressLookupResult{}, false
	}
	return it.Result, true
}

func (c *inMemoryLookupCache) Set(key string, v response_models.AddressLookupResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = lookupCacheEntry{Result: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- PDOK locatieserver client ---------------

// PdokClient resolves Dutch postcode + house number pairs through the
// public PDOK locatieserver. Addresses are stable, so hits are cached for
// a day.
type PdokClient struct {
	HTTP       *http.Client
	BaseURL    string
	Cache      LookupCache
	DefaultTTL time.Duration
}

func NewPdokClient(cache LookupCache) *PdokClient {
	baseURL := os.Getenv("PDOK_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.pdok.nl/bzk/locatieserver/search/v3_1/free"
	}
	return &PdokClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		BaseURL:    baseURL,
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
	}
}

var pointPattern = regexp.MustCompile(`POINT\(([-0-9.]+)\s+([-0-9.]+)\)`)

// parsePoint extracts lat/lng from a WKT "POINT(lng lat)" string.
func parsePoint(value string) (lat, lng *float64) {
	match := pointPattern.FindStringSubmatch(value)
	if match == nil {
		return nil, nil
	}
	lngV, err1 := strconv.ParseFloat(match[1], 64)
	latV, err2 := strconv.ParseFloat(match[2], 64)
	if err1 != nil || err2 != nil {
		return nil, nil
	}
	return &latV, &lngV
}

type pdokDoc struct {
	Straatnaam           string      `json:"straatnaam"`
	Woonplaatsnaam       string      `json:"woonplaatsnaam"`
	Postcode             string      `json:"postcode"`
	Huisnummer           json.Number `json:"huisnummer"`
	Huisletter           string      `json:"huisletter"`
	Huisnummertoevoeging string      `json:"huisnummertoevoeging"`
	CentroideLL          string      `json:"centroide_ll"`
	Weergavenaam         string      `json:"weergavenaam"`
}

func (c *PdokClient) Lookup(ctx context.Context, postcode, houseNumber, addition string) (response_models.AddressLookupResult, error) {
	normalizedPostcode := utils.NormalizePostcode(postcode)
	normalizedNumber := strings.TrimSpace(houseNumber)
	normalizedAddition := strings.TrimSpace(addition)

	if normalizedPostcode == "" || normalizedNumber == "" {
		return response_models.AddressLookupResult{}, utils.ErrMissingFields
	}

	query := normalizedPostcode + " " + normalizedNumber + normalizedAddition
	if cached, ok := c.Cache.Get(query); ok {
		return cached, nil
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return response_models.AddressLookupResult{}, err
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("fq", "type:adres")
	q.Set("rows", "1")
	q.Set("fl", strings.Join([]string{
		"straatnaam",
		"woonplaatsnaam",
		"postcode",
		"huisnummer",
		"huisletter",
		"huisnummertoevoeging",
		"centroide_ll",
		"weergavenaam",
	}, " "))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return response_models.AddressLookupResult{}, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return response_models.AddressLookupResult{}, utils.ErrLookupUpstream
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return response_models.AddressLookupResult{}, fmt.Errorf("%w: %s", utils.ErrLookupUpstream, resp.Status)
	}

	var payload struct {
		Response struct {
			Docs []pdokDoc `json:"docs"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return response_models.AddressLookupResult{}, utils.ErrLookupUpstream
	}
	if len(payload.Response.Docs) == 0 {
		return response_models.AddressLookupResult{}, utils.ErrAddressNotFound
	}
	doc := payload.Response.Docs[0]

	lat, lng := parsePoint(doc.CentroideLL)

	resultAddition := doc.Huisletter + doc.Huisnummertoevoeging

	resultPostcode := doc.Postcode
	if resultPostcode == "" {
		resultPostcode = normalizedPostcode
	}
	resultNumber := doc.Huisnummer.String()
	if resultNumber == "" {
		resultNumber = normalizedNumber
	}

	address := doc.Weergavenaam
	if address == "" {
		address = utils.FormatAddress(utils.AddressParts{
			Street:              doc.Straatnaam,
			HouseNumber:         resultNumber,
			HouseNumberAddition: resultAddition,
			Postcode:            resultPostcode,
			City:                doc.Woonplaatsnaam,
		})
	}

	result := response_models.AddressLookupResult{
		Street:              doc.Straatnaam,
		City:                doc.Woonplaatsnaam,
		Postcode:            resultPostcode,
		HouseNumber:         resultNumber,
		HouseNumberAddition: resultAddition,
		Lat:                 lat,
		Lng:                 lng,
		Address:             address,
	}

	c.Cache.Set(query, result, c.DefaultTTL)
	return result, nil
}
