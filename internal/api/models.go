package api

import "encoding/json"

// SearchResponse is the envelope returned by the v2 hosts search endpoint.
type SearchResponse struct {
	Code   int          `json:"code"`
	Status string       `json:"status"`
	Error  string       `json:"error,omitempty"`
	Result SearchResult `json:"result"`
}

// SearchResult holds one page of hits. Hits are kept as raw documents so
// the JSONL output can carry each record exactly as the API returned it.
type SearchResult struct {
	Query string            `json:"query"`
	Total int               `json:"total"`
	Hits  []json.RawMessage `json:"hits"`
	Links Links             `json:"links"`
}

// Links carries the pagination cursors for a result page.
type Links struct {
	Next string `json:"next"`
	Prev string `json:"prev"`
}

// Host is the typed view of a hit used for the CSV projection. The
// fields mirror the search field list in DefaultFields; anything the API
// omits decodes to its zero value or nil.
type Host struct {
	IP               string           `json:"ip"`
	Location         Location         `json:"location"`
	AutonomousSystem AutonomousSystem `json:"autonomous_system"`
	Services         []Service        `json:"services"`
}

type Location struct {
	Country    string   `json:"country"`
	Province   string   `json:"province"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

type AutonomousSystem struct {
	ASN  *int   `json:"asn"`
	Name string `json:"name"`
}

type Service struct {
	Port              int        `json:"port"`
	ServiceName       string     `json:"service_name"`
	TransportProtocol string     `json:"transport_protocol"`
	Software          []Software `json:"software"`
	Endpoints         []Endpoint `json:"endpoints"`
}

type Software struct {
	Product string `json:"product"`
	Vendor  string `json:"vendor"`
	Version string `json:"version"`
}

// Endpoint is a per-path sub-record of a service; HTTP is nil for
// endpoints that carry no HTTP-layer data.
type Endpoint struct {
	HTTP *HTTPEndpoint `json:"http"`
}

type HTTPEndpoint struct {
	HTMLTitle  string `json:"html_title"`
	StatusCode *int   `json:"status_code"`
	Host       string `json:"host"`
	Path       string `json:"path"`
	Scheme     string `json:"scheme"`
}
