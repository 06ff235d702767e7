package dispatch

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/lambda-feedback/mathy/models"
)

const contentTypeJSON = "application/json"

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Operation is the route that produced the response.
	Operation models.Operation
}

// ResultContent is the body of a successful response.
type ResultContent struct {
	Result any `json:"result"`
}

// ErrorContent is the body of a failed response.
type ErrorContent struct {
	Error string `json:"error"`
}

// Float is a float64 encoded with the shortest round-tripping digits. It
// uses exponent notation when the decimal exponent is below -4 or at least
// 16, and otherwise always carries a fractional part, so 2 is sent as 2.0.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, &json.UnsupportedValueError{Str: strconv.FormatFloat(v, 'g', -1, 64)}
	}

	// shortest digits, with an exponent of at least two digits
	sci := strconv.FormatFloat(v, 'e', -1, 64)

	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return nil, err
	}

	if exp < -4 || exp >= 16 {
		return []byte(sci), nil
	}

	b := strconv.AppendFloat(nil, v, 'f', -1, 64)
	if !bytes.ContainsRune(b, '.') {
		b = append(b, '.', '0')
	}

	return b, nil
}

// newResponse serializes content into a response with the given status.
func newResponse(status int, content any) Response {
	body, err := json.Marshal(content)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorContent{Error: internalErrorMessage})
	}

	header := make(http.Header)
	header.Set("Content-Type", contentTypeJSON)

	return Response{
		StatusCode: status,
		Header:     header,
		Body:       body,
	}
}

// newResultResponse creates a 200 response carrying result.
func newResultResponse(result any) Response {
	return newResponse(http.StatusOK, ResultContent{Result: result})
}

// newErrorResponse creates an error response for err.
func newErrorResponse(err error) Response {
	status, message := getErrorStatus(err)
	return newResponse(status, ErrorContent{Error: message})
}
