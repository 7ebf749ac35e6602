package cors

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const wantAllowHeaders = "authorization,origin,content-type,accept," +
	"x-yt-parameters,x-yt-parameters0,x-yt-parameters-0,x-yt-parameters1,x-yt-parameters-1," +
	"x-yt-input-format,x-yt-input-format0,x-yt-input-format-0," +
	"x-yt-output-format,x-yt-output-format0,x-yt-output-format-0," +
	"x-yt-header-format,x-yt-suppress-redirect"

func TestParseMethod(t *testing.T) {
	testCases := []struct {
		in   string
		want Method
	}{
		{in: "GET", want: MethodGet},
		{in: "POST", want: MethodPost},
		{in: "PUT", want: MethodPut},
		{in: "OPTIONS", want: MethodOptions},
		{in: "get", want: MethodOther},
		{in: "Options", want: MethodOther},
		{in: "DELETE", want: MethodOther},
		{in: "PATCH", want: MethodOther},
		{in: "", want: MethodOther},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, ParseMethod(tc.in))
		})
	}
}

func TestDecideSimpleMethods(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			d := Decide(method, "https://example.com", true)
			require.Equal(t, Continue, d.Outcome)
			require.Equal(t, []Header{
				{Name: HeaderAllowCredentials, Value: "true"},
				{Name: HeaderAllowOrigin, Value: "https://example.com"},
			}, d.Headers)
		})
	}
}

func TestDecideDefaultsOrigin(t *testing.T) {
	d := Decide(http.MethodGet, "", false)
	require.Equal(t, "*", headerValue(d, HeaderAllowOrigin))

	d = Decide(http.MethodGet, "", true)
	require.Equal(t, "*", headerValue(d, HeaderAllowOrigin))
}

func TestDecidePreflight(t *testing.T) {
	d := Decide(http.MethodOptions, "", false)
	require.Equal(t, Terminated, d.Outcome)
	require.Equal(t, MethodOptions, d.Method)
	require.Equal(t, []Header{
		{Name: HeaderAllowCredentials, Value: "true"},
		{Name: HeaderAllowOrigin, Value: "*"},
		{Name: HeaderAllowMethods, Value: "POST, PUT, GET, OPTIONS"},
		{Name: HeaderAllowHeaders, Value: wantAllowHeaders},
		{Name: HeaderMaxAge, Value: "3600"},
	}, d.Headers)
}

func TestDecidePreflightReflectsOrigin(t *testing.T) {
	d := Decide(http.MethodOptions, "null", true)
	require.Equal(t, "null", headerValue(d, HeaderAllowOrigin))
}

func TestDecideOtherMethods(t *testing.T) {
	for _, method := range []string{http.MethodDelete, http.MethodPatch, http.MethodHead, "get", "BREW"} {
		t.Run(method, func(t *testing.T) {
			d := Decide(method, "https://example.com", true)
			require.Equal(t, Continue, d.Outcome)
			require.Empty(t, d.Headers)
		})
	}
}

func TestDecideIsRepeatable(t *testing.T) {
	first := Decide(http.MethodOptions, "https://a.example", true)
	second := Decide(http.MethodOptions, "https://a.example", true)
	require.Equal(t, first, second)

	// mutating one decision must not leak into the next
	first.Headers[0].Value = "false"
	third := Decide(http.MethodOptions, "https://a.example", true)
	require.Equal(t, second, third)
}

func TestAllowedHeaders(t *testing.T) {
	got := allowedHeaders
	require.Len(t, got, 17)
	require.Equal(t, wantAllowHeaders, strings.Join(got, ","))
	for _, name := range got {
		require.NotContains(t, name, ",")
		require.Equal(t, strings.ToLower(name), name)
	}
	require.Equal(t, wantAllowHeaders, allowHeadersValue)
}

func TestDecisionApply(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAllowOrigin, "stale")
	Decide(http.MethodPut, "https://example.com", true).Apply(h)

	require.Equal(t, []string{"https://example.com"}, h.Values(HeaderAllowOrigin))
	require.Equal(t, "true", h.Get(HeaderAllowCredentials))
	require.Empty(t, h.Get(HeaderMaxAge))
}

func headerValue(d Decision, name string) string {
	for _, h := range d.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}
