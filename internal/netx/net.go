// Package netx contains small HTTP helpers used by the CLI.
package netx

import (
	"context"
	"fmt"
	"net/http"
)

// Probe issues a HEAD request to url and reports an error unless the
// response status is 2xx. The detail screen uses it to detect profile
// images that resolve to a URL but cannot actually be loaded.
func Probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("probe failed: %s", resp.Status)
	}
	return nil
}
