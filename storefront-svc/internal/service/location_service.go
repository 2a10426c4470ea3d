package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// HTTPLocator resolves an IP address through an ipinfo-style JSON API
// whose "loc" field holds "lat,lon".
type HTTPLocator struct {
	BaseURL string
	Client  HTTPClient
}

func NewHTTPLocator(baseURL string, client HTTPClient) *HTTPLocator {
	return &HTTPLocator{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

// Locate looks up ip, or the caller's own public address when ip is empty.
func (l *HTTPLocator) Locate(ctx context.Context, ip string) (float64, float64, error) {
	url := l.BaseURL + "/json"
	if ip != "" {
		url = l.BaseURL + "/" + ip + "/json"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geolocation returned status %d", resp.StatusCode)
	}

	var body struct {
		Loc string `json:"loc"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("decode geolocation response: %w", err)
	}

	parts := strings.Split(body.Loc, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("geolocation response has no location")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

type LocationService struct {
	locator IPLocator
	cache   LocationCache
}

func NewLocationService(locator IPLocator, cache LocationCache) *LocationService {
	return &LocationService{locator: locator, cache: cache}
}

// DefaultLocation suggests "lat,lon" for the client. Any failure yields an
// empty string so the caller can still type coordinates by hand.
func (s *LocationService) DefaultLocation(ctx context.Context, clientIP string) string {
	ip := publicIP(clientIP)
	entry := logrus.WithField("ip", clientIP)

	if s.cache != nil {
		if loc, found, err := s.cache.GetLocation(ctx, ip); err != nil {
			entry.WithError(err).Warn("location cache read failed")
		} else if found {
			return loc
		}
	}

	lat, lon, err := s.locator.Locate(ctx, ip)
	if err != nil {
		entry.WithError(err).Warn("geolocation lookup failed")
		return ""
	}

	loc := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
	if s.cache != nil {
		if err := s.cache.SetLocation(ctx, ip, loc); err != nil {
			entry.WithError(err).Warn("location cache write failed")
		}
	}
	return loc
}

// publicIP drops loopback, private and unparseable addresses so the lookup
// falls back to the server's own public address.
func publicIP(raw string) string {
	ip := net.ParseIP(strings.TrimSpace(raw))
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return ""
	}
	return ip.String()
}

var (
	_ IPLocator                = (*HTTPLocator)(nil)
	_ LocationServiceInterface = (*LocationService)(nil)
)
