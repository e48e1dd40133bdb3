package api

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	BaseURL = "https://search.censys.io/api/v2"
)

// DefaultFields restricts search hits to the fields the JSONL/CSV
// outputs use. A narrower response is lighter on the API quota.
var DefaultFields = []string{
	"ip",
	"location.country",
	"location.province",
	"location.city",
	"location.postal_code",
	"location.latitude",
	"location.longitude",
	"autonomous_system.asn",
	"autonomous_system.name",
	"services.port",
	"services.service_name",
	"services.transport_protocol",
	"services.software.product",
	"services.software.vendor",
	"services.software.version",
	"services.endpoints.http.html_title",
	"services.endpoints.http.status_code",
	"services.endpoints.http.host",
	"services.endpoints.http.path",
	"services.endpoints.http.scheme",
}

type Client struct {
	restyClient *resty.Client
}

func NewClient(apiID, apiSecret string) *Client {
	client := resty.New()
	client.SetBaseURL(BaseURL)
	client.SetBasicAuth(apiID, apiSecret)
	return &Client{restyClient: client}
}

// SetBaseURL overrides the API endpoint; tests point it at a fake server.
func (c *Client) SetBaseURL(url string) {
	c.restyClient.SetBaseURL(url)
}

// Search fetches one page of host search results. cursor is empty for
// the first page; the returned result carries the cursor for the next
// page in Links.Next (empty when the result set is exhausted).
func (c *Client) Search(ctx context.Context, query string, perPage int, cursor string, fields []string) (*SearchResult, error) {
	req := c.restyClient.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("per_page", strconv.Itoa(perPage))

	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}
	if len(fields) > 0 {
		req.SetQueryParam("fields", strings.Join(fields, ","))
	}

	var searchResp SearchResponse
	resp, err := req.SetResult(&searchResp).Get("/hosts/search")
	if err != nil {
		return nil, &RequestError{Message: err.Error(), transient: true}
	}

	if resp.IsError() {
		switch {
		case resp.StatusCode() == 401 || resp.StatusCode() == 403:
			return nil, &AuthError{StatusCode: resp.StatusCode()}
		case resp.StatusCode() == 429 || resp.StatusCode() >= 500:
			return nil, &RequestError{StatusCode: resp.StatusCode(), Message: apiMessage(resp.Body(), resp.Status()), transient: true}
		default:
			return nil, &RequestError{StatusCode: resp.StatusCode(), Message: apiMessage(resp.Body(), resp.Status())}
		}
	}

	if searchResp.Code != 0 && searchResp.Code != 200 {
		return nil, &RequestError{StatusCode: searchResp.Code, Message: searchResp.Error}
	}

	return &searchResp.Result, nil
}

// apiMessage pulls the error field out of an error body, falling back to
// the HTTP status line.
func apiMessage(body []byte, status string) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return status
}
