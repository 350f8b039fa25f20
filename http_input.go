package fieldtypes

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	__compTimeCheckHTTPInputImplementsInput Input = &HTTPInput{}
)

// HTTPInput implements Input for an *http.Request.
//
// Values are collected once, at construction, in this order (later sources
// win on conflicting keys):
//   - query parameters
//   - url-encoded form fields
//   - top-level JSON body members (application/json)
//
// Parameters with a single value are stored as a string, repeated ones as
// []string. The request body is restored after reading so later handlers
// can still consume it.
type HTTPInput struct {
	request *http.Request
	values  Values
}

func NewHTTPInput(request *http.Request) (*HTTPInput, error) {
	if request == nil {
		return nil, fmt.Errorf("expected *http.Request, got nil")
	}

	hi := &HTTPInput{request: request, values: make(Values)}

	if request.URL != nil {
		mergeURLValues(hi.values, request.URL.Query())
	}

	body, err := readBody(request)
	if err != nil {
		return nil, err
	}

	switch mediaType(request.Header.Get("Content-Type")) {
	case ContentTypeApplicationJSON:
		jsonValues, err := jsonObjectValues(body)
		if err != nil {
			return nil, err
		}
		for k, v := range jsonValues {
			hi.values[k] = v
		}
	case ContentTypeFormURLEncoded:
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("error parsing form body: %w", err)
		}
		mergeURLValues(hi.values, form)
	}

	return hi, nil
}

// Request returns the underlying HTTP request.
func (hi *HTTPInput) Request() *http.Request {
	return hi.request
}

func (hi *HTTPInput) All() Values {
	return hi.values.Clone()
}

func (hi *HTTPInput) Replace(values Values) {
	hi.values = values.Clone()
}

func readBody(request *http.Request) ([]byte, error) {
	if request.Body == nil || request.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	request.Body.Close()
	request.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func mergeURLValues(dst Values, src url.Values) {
	for key, vals := range src {
		switch len(vals) {
		case 0:
			continue
		case 1:
			dst[key] = vals[0]
		default:
			dst[key] = append([]string(nil), vals...)
		}
	}
}

func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ContentTypeDelimiter)
	return strings.ToLower(strings.TrimSpace(mt))
}
