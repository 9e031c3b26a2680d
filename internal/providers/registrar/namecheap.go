// Package registrar is a minimal Namecheap xml.response client. The API
// takes every parameter, credentials included, in the query string of a
// single GET; requests are therefore assembled as url.Values and always
// printable with the ApiKey redacted.
package registrar

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/northroot-labs/pagesops/internal/domain"
	"github.com/northroot-labs/pagesops/internal/domain/entity"
	"github.com/northroot-labs/pagesops/internal/infrastructure/credentials"
	"github.com/northroot-labs/pagesops/internal/infrastructure/logger"
)

const (
	DefaultEndpoint = "https://api.namecheap.com/xml.response"

	CommandSetCustom = "namecheap.domains.dns.setCustom"
	CommandSetHosts  = "namecheap.domains.dns.setHosts"
)

// ParseDomain splits a domain into (SLD, TLD) by taking the last two
// dot-separated labels. Multi-label public suffixes are not special-cased:
// "a.b.co.uk" yields ("co", "uk").
func ParseDomain(domainName string) (sld, tld string, err error) {
	parts := strings.Split(domainName, ".")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidDomain, domainName)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// Request is an assembled Namecheap API call.
type Request struct {
	Command string
	params  url.Values
}

func newRequest(auth credentials.NamecheapAuth, command, sld, tld string) *Request {
	params := url.Values{}
	params.Set("ApiUser", auth.APIUser)
	params.Set("ApiKey", auth.APIKey)
	params.Set("UserName", auth.Username)
	params.Set("ClientIp", auth.ClientIP)
	params.Set("Command", command)
	params.Set("SLD", sld)
	params.Set("TLD", tld)
	return &Request{Command: command, params: params}
}

// NewSetCustomRequest points the domain at custom nameservers.
func NewSetCustomRequest(auth credentials.NamecheapAuth, sld, tld string, nameservers []string) *Request {
	req := newRequest(auth, CommandSetCustom, sld, tld)
	req.params.Set("Nameservers", strings.Join(nameservers, ","))
	return req
}

// NewSetHostsRequest replaces the domain's host records with the given
// table, encoded as HostName1../RecordType1../Address1../TTL1.. keys.
func NewSetHostsRequest(auth credentials.NamecheapAuth, sld, tld string, hosts []entity.Record) *Request {
	req := newRequest(auth, CommandSetHosts, sld, tld)
	for i, host := range hosts {
		idx := strconv.Itoa(i + 1)
		req.params.Set("HostName"+idx, host.Name)
		req.params.Set("RecordType"+idx, string(host.Type))
		req.params.Set("Address"+idx, host.Content)
		req.params.Set("TTL"+idx, strconv.Itoa(host.TTL))
	}
	return req
}

func (r *Request) Encode() string {
	return r.params.Encode()
}

// RedactedEncode is Encode with the ApiKey value replaced. Safe to print.
func (r *Request) RedactedEncode() string {
	redacted := url.Values{}
	for key, values := range r.params {
		redacted[key] = values
	}
	redacted.Set("ApiKey", "***")
	return redacted.Encode()
}

// Response carries the raw body plus the minimally parsed outcome. The
// API reports Status="OK" or Status="ERROR" on the ApiResponse element;
// bodies that do not parse keep Status empty and are treated as success.
type Response struct {
	Body   string
	Status string
	Errors []string
}

// Failed reports a provider-declared error. An unparseable body is not a
// failure.
func (r *Response) Failed() bool {
	return strings.EqualFold(r.Status, "ERROR")
}

// Truncated returns at most n leading bytes of the body for display.
func (r *Response) Truncated(n int) string {
	if len(r.Body) <= n {
		return r.Body
	}
	return r.Body[:n]
}

type apiResponse struct {
	XMLName xml.Name `xml:"ApiResponse"`
	Status  string   `xml:"Status,attr"`
	Errors  struct {
		Errors []struct {
			Number string `xml:"Number,attr"`
			Text   string `xml:",chardata"`
		} `xml:"Error"`
	} `xml:"Errors"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient() *Client {
	return NewClientWithEndpoint(DefaultEndpoint)
}

func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: domain.DefaultRequestTimeout},
	}
}

// Do performs the single GET the command amounts to and returns the raw
// body with the parsed status. Transport errors are returned as-is for the
// caller to report.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+req.Encode(), nil)
	if err != nil {
		return nil, domain.WrapOp("build request", err)
	}

	logger.Debug("calling namecheap", "command", req.Command)
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domain.WrapOp("read response", err)
	}

	resp := &Response{Body: string(body)}
	var parsed apiResponse
	if err := xml.Unmarshal(body, &parsed); err == nil {
		resp.Status = parsed.Status
		for _, apiErr := range parsed.Errors.Errors {
			msg := strings.TrimSpace(apiErr.Text)
			if apiErr.Number != "" {
				msg = fmt.Sprintf("[%s] %s", apiErr.Number, msg)
			}
			resp.Errors = append(resp.Errors, msg)
		}
	}

	logger.Debug("namecheap responded", "command", req.Command, "status", resp.Status, "http_status", httpResp.StatusCode)
	return resp, nil
}
