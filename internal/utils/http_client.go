// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used for calls to the document store.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(15*time.Second, "X-Csrf-Token", session.CSRFToken)
//	resp, err := client.R().SetContext(ctx).Get(url)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client with the given request timeout. When
// token is not nil, every request carries its current value in header;
// empty values are not sent. The token is read per request so a rotated
// session token is picked up without rebuilding the client.
func NewHTTPClient(timeout time.Duration, header string, token func() string) *HTTPClient {
	client := resty.New().SetTimeout(timeout)

	if token != nil && header != "" {
		client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if v := token(); v != "" {
				r.SetHeader(header, v)
			}
			return nil
		})
	}

	return &HTTPClient{Client: client}
}
