package device

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const locationTimeout = 10 * time.Second

// Locator fetches a device's last known position from the device provider.
type Locator struct {
	client  *http.Client
	baseURL string
}

func NewLocator(baseURL string) *Locator {
	return &Locator{
		client:  &http.Client{Timeout: locationTimeout},
		baseURL: baseURL,
	}
}

// LastKnown returns nil on any failure: timeouts, transport errors, non-OK
// responses and bad payloads all read as "no location available".
func (l *Locator) LastKnown(ctx context.Context, imei string) *Location {
	ctx, cancel := context.WithTimeout(ctx, locationTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/devices/"+imei+"/location", nil)
	if err != nil {
		return nil
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}
	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil
	}
	return &loc
}
