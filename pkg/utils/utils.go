package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// URLToHostname returns the lowercased host of inURL without a leading
// "www." label or port.
func URLToHostname(inURL string) (string, error) {
	u, err := url.Parse(inURL)
	if err != nil {
		return "", fmt.Errorf("could not parse url: %w", err)
	}

	if u.Host == "" {
		return "", fmt.Errorf("url %q has no host", inURL)
	}

	return StripHostname(u.Hostname()), nil
}

func StripHostname(hostname string) string {
	hostname = strings.ToLower(hostname)
	return strings.TrimPrefix(hostname, "www.")
}
