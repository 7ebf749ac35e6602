// Package cors implements the ACAO filter that fronts the YT HTTP proxy.
//
// The filter reflects the request Origin (or "*") for GET, POST and PUT,
// and answers OPTIONS preflights itself without consulting downstream
// handlers. Origins are never validated.
package cors

import (
	"net/http"
	"strings"
)

const (
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderMaxAge           = "Access-Control-Max-Age"

	wildcardOrigin = "*"
	allowMethods   = "POST, PUT, GET, OPTIONS"
	maxAge         = "3600"
)

// allowedHeaders is the request header allow-list advertised on preflight, in order.
var allowedHeaders = []string{
	"authorization",
	"origin",
	"content-type",
	"accept",
	"x-yt-parameters",
	"x-yt-parameters0",
	"x-yt-parameters-0",
	"x-yt-parameters1",
	"x-yt-parameters-1",
	"x-yt-input-format",
	"x-yt-input-format0",
	"x-yt-input-format-0",
	"x-yt-output-format",
	"x-yt-output-format0",
	"x-yt-output-format-0",
	"x-yt-header-format",
	"x-yt-suppress-redirect",
}

var allowHeadersValue = strings.Join(allowedHeaders, ",")

// Method is the filter's view of the request method.
type Method int

const (
	MethodOther Method = iota
	MethodGet
	MethodPost
	MethodPut
	MethodOptions
)

// ParseMethod matches the request method exactly; "get" is MethodOther.
func ParseMethod(m string) Method {
	switch m {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	case "PUT":
		return MethodPut
	case "OPTIONS":
		return MethodOptions
	default:
		return MethodOther
	}
}

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodOptions:
		return "OPTIONS"
	default:
		return "other"
	}
}

// Outcome tells the host whether the request continues downstream.
type Outcome int

const (
	// Continue hands the request to the next handler.
	Continue Outcome = iota
	// Terminated means the response is complete and must be sent with no body.
	Terminated
)

func (o Outcome) String() string {
	if o == Terminated {
		return "terminated"
	}
	return "continue"
}

// Header is a single response header produced by the filter.
type Header struct {
	Name  string
	Value string
}

// Decision is the filter result for one request.
type Decision struct {
	Method  Method
	Headers []Header
	Outcome Outcome
}

// Decide computes the headers and outcome for a request. hasOrigin reports
// whether the Origin header was supplied; an empty value counts as absent.
func Decide(method, origin string, hasOrigin bool) Decision {
	if !hasOrigin || origin == "" {
		origin = wildcardOrigin
	}

	m := ParseMethod(method)
	d := Decision{Method: m, Outcome: Continue}

	switch m {
	case MethodGet, MethodPost, MethodPut:
		d.Headers = credentialHeaders(origin)
	case MethodOptions:
		d.Headers = append(credentialHeaders(origin),
			Header{Name: HeaderAllowMethods, Value: allowMethods},
			Header{Name: HeaderAllowHeaders, Value: allowHeadersValue},
			Header{Name: HeaderMaxAge, Value: maxAge},
		)
		d.Outcome = Terminated
	}

	return d
}

func credentialHeaders(origin string) []Header {
	return []Header{
		{Name: HeaderAllowCredentials, Value: "true"},
		{Name: HeaderAllowOrigin, Value: origin},
	}
}

// Apply sets every header of the decision on h, replacing existing values.
func (d Decision) Apply(h http.Header) {
	for _, hdr := range d.Headers {
		h.Set(hdr.Name, hdr.Value)
	}
}
