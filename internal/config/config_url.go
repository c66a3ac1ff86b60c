// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"net/url"
)

// validateHTTPURL validates that a URL is a base URL for an HTTP/HTTPS service.
// Validates: scheme (http/https), host present, no query params.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// validateBaseURL is validateHTTPURL plus a check that no path is present.
// Endpoint paths are appended by the client.
func validateBaseURL(rawURL, fieldName string) error {
	if err := validateHTTPURL(rawURL, fieldName); err != nil {
		return err
	}
	parsedURL, _ := url.Parse(rawURL) //nolint:errcheck // parsed above
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}
	return nil
}
