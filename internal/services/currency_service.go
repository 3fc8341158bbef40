package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	nominatimUserAgent      = "PrimeTravel/1.0"

	geocodeTimeout  = 5 * time.Second
	geocodeCacheTTL = time.Hour
)

type CurrencyServiceInterface interface {
	// ResolveCurrency maps a free-text city to its local currency. It never
	// returns an error: any failure degrades to the USD fallback, because
	// currency resolution is best-effort enrichment, not a correctness-
	// critical step.
	ResolveCurrency(ctx context.Context, city string) CurrencyInfo
}

type CurrencyService struct {
	httpClient *http.Client
	baseURL    string
	cache      *gocache.Cache
}

func NewCurrencyService() CurrencyServiceInterface {
	baseURL := os.Getenv("NOMINATIM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	return &CurrencyService{
		httpClient: &http.Client{Timeout: geocodeTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		cache:      gocache.New(geocodeCacheTTL, 2*geocodeCacheTTL),
	}
}

func (s *CurrencyService) ResolveCurrency(ctx context.Context, city string) CurrencyInfo {
	cacheKey := strings.ToLower(strings.TrimSpace(city))
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(CurrencyInfo)
	}

	countryCode, country, err := s.lookupCountry(ctx, city)
	if err != nil {
		log.Printf("Geocoding error for %q: %v", city, err)
		return fallbackCurrencyInfo()
	}

	entry, ok := countryCurrencyTable[countryCode]
	if !ok {
		log.Printf("No currency mapping for country code %q (city %q)", countryCode, city)
		return fallbackCurrencyInfo()
	}

	info := CurrencyInfo{
		CountryCode: countryCode,
		Country:     country,
		Currency:    entry.Currency,
		Symbol:      entry.Symbol,
	}
	s.cache.Set(cacheKey, info, gocache.DefaultExpiration)
	return info
}

// lookupCountry queries Nominatim with a single attempt, result limit 1.
func (s *CurrencyService) lookupCountry(ctx context.Context, city string) (string, string, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return "", "", err
	}
	// Required by Nominatim's usage policy.
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("nominatim http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", "", fmt.Errorf("nominatim bad status: %s", resp.Status)
	}

	var results []struct {
		Address struct {
			CountryCode string `json:"country_code"`
			Country     string `json:"country"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", "", fmt.Errorf("nominatim decode: %w", err)
	}

	if len(results) == 0 || results[0].Address.CountryCode == "" {
		return "", "", fmt.Errorf("no address result for %q", city)
	}

	countryCode := strings.ToUpper(results[0].Address.CountryCode)
	country := results[0].Address.Country
	if country == "" {
		country = countryCode
	}
	return countryCode, country, nil
}
