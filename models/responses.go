// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchResponse is the JSON body returned by the search endpoint.
type SearchResponse struct {
	Results []string `json:"results"`
	Message string   `json:"message,omitempty"`
}

// ErrorResponse is the JSON body returned for failed requests. Message is a
// generic status text, or the validation failure for client errors.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CountResponse is the JSON body returned by the record count endpoint.
type CountResponse struct {
	Count int64 `json:"count"`
}
