package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProbeVideoURL HEAD-checks an episode's video URL so admins find out about
// dead links at save time instead of from support tickets. Gated by
// PROBE_VIDEO_URLS in config.
func ProbeVideoURL(url string) error {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Head(url)
	if err != nil {
		return fmt.Errorf("video url unreachable: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("video url returned status %d", resp.StatusCode())
	}
	return nil
}
