package dispatch

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/lambda-feedback/mathy/dispatch/schema"
)

var errValidationFailed = errors.New("validation failed")

// validationError is returned for responses that violate the response schema.
type validationError struct {
	Result *gojsonschema.Result
}

func (e *validationError) Error() string {
	if len(e.Result.Errors()) == 0 {
		return "invalid response"
	}

	return fmt.Sprintf("invalid response: %s", e.Result.Errors()[0])
}

// validate checks a serialized response body against the response schema.
func (d *Dispatcher) validate(body []byte) error {
	res, err := d.schemas.Validate(schema.SchemaTypeResponse, body)
	if err != nil {
		return fmt.Errorf("%w: %w", errValidationFailed, err)
	}

	if res.Valid() {
		return nil
	}

	return &validationError{Result: res}
}
