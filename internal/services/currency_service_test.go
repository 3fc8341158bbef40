package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubCurrencyService(baseURL string) *CurrencyService {
	return &CurrencyService{
		httpClient: &http.Client{Timeout: geocodeTimeout},
		baseURL:    baseURL,
		cache:      gocache.New(geocodeCacheTTL, 2*geocodeCacheTTL),
	}
}

func TestResolveCurrencyMapsCountryToCurrency(t *testing.T) {
	var gotUserAgent, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`[{"address": {"country_code": "fr", "country": "France"}}]`))
	}))
	defer server.Close()

	svc := newStubCurrencyService(server.URL)
	info := svc.ResolveCurrency(context.Background(), "Paris")

	assert.Equal(t, "EUR", info.Currency)
	assert.Equal(t, "€", info.Symbol)
	assert.Equal(t, "France", info.Country)
	assert.Equal(t, "FR", info.CountryCode)
	assert.Equal(t, "PrimeTravel/1.0", gotUserAgent)
	assert.Equal(t, "Paris", gotQuery)
}

func TestResolveCurrencyFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := newStubCurrencyService(server.URL)
	info := svc.ResolveCurrency(context.Background(), "Paris")

	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "$", info.Symbol)
	assert.Equal(t, "Unknown", info.Country)
}

func TestResolveCurrencyFallsBackOnEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := newStubCurrencyService(server.URL)
	info := svc.ResolveCurrency(context.Background(), "Atlantis")

	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "Unknown", info.Country)
}

func TestResolveCurrencyFallsBackOnUnmappedCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"address": {"country_code": "zz", "country": "Nowhere"}}]`))
	}))
	defer server.Close()

	svc := newStubCurrencyService(server.URL)
	info := svc.ResolveCurrency(context.Background(), "Nowhere City")

	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "$", info.Symbol)
	assert.Equal(t, "Unknown", info.Country)
}

func TestResolveCurrencyFallsBackWhenUnreachable(t *testing.T) {
	svc := newStubCurrencyService("http://127.0.0.1:1")
	svc.httpClient.Timeout = 200 * time.Millisecond

	info := svc.ResolveCurrency(context.Background(), "Paris")

	assert.Equal(t, "USD", info.Currency)
	assert.Equal(t, "Unknown", info.Country)
}

func TestResolveCurrencyCachesSuccessfulLookups(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[{"address": {"country_code": "jp", "country": "Japan"}}]`))
	}))
	defer server.Close()

	svc := newStubCurrencyService(server.URL)
	first := svc.ResolveCurrency(context.Background(), "Tokyo")
	second := svc.ResolveCurrency(context.Background(), "tokyo")

	assert.Equal(t, "JPY", first.Currency)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "case-insensitive cache should absorb the second lookup")
}

func TestResolveCurrencyDoesNotCacheFallback(t *testing.T) {
	failing := true
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if failing {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"address": {"country_code": "in", "country": "India"}}]`))
	}))
	defer server.Close()

	svc := newStubCurrencyService(server.URL)

	info := svc.ResolveCurrency(context.Background(), "Mumbai")
	require.Equal(t, "USD", info.Currency)

	failing = false
	info = svc.ResolveCurrency(context.Background(), "Mumbai")

	assert.Equal(t, "INR", info.Currency)
	assert.Equal(t, "₹", info.Symbol)
	assert.Equal(t, 2, hits, "fallback results are not cached, so the retry hits the geocoder")
}

func TestCurrencyTableCoversCommonDestinations(t *testing.T) {
	cases := map[string][2]string{
		"US": {"USD", "$"},
		"GB": {"GBP", "£"},
		"UK": {"GBP", "£"},
		"FR": {"EUR", "€"},
		"JP": {"JPY", "¥"},
		"IN": {"INR", "₹"},
		"EC": {"USD", "$"},
	}
	for code, want := range cases {
		entry, ok := countryCurrencyTable[code]
		require.True(t, ok, "missing entry for %s", code)
		assert.Equal(t, want[0], entry.Currency)
		assert.Equal(t, want[1], entry.Symbol)
	}
}
