package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/lambda-feedback/mathy/dispatch/schema"
	"github.com/lambda-feedback/mathy/models"
	"github.com/lambda-feedback/mathy/numeric"
)

// mean handles GET and POST /mean with a JSON array body.
func (d *Dispatcher) mean(ctx context.Context, body BodyReader) (any, error) {
	if body == nil {
		return nil, ErrBodyUnreadable
	}

	data, err := body.ReadBody(ctx)
	if err != nil {
		d.log.Debug("failed to read body", zap.Error(err))
		return nil, ErrBodyUnreadable
	}

	if !json.Valid(data) {
		return nil, ErrBodyInvalidJSON
	}

	res, err := d.schemas.Validate(schema.SchemaTypeMeanRequest, data)
	if err != nil {
		d.log.Debug("schema validation failed", zap.Error(err))
		return nil, ErrBodyInvalidJSON
	}

	if !res.Valid() {
		if schema.HasErrorType(res, schema.ErrorTypeInvalidType) {
			return nil, ErrBodyNotArray
		}
		if schema.HasErrorType(res, schema.ErrorTypeArrayMinItems) {
			return nil, ErrBodyEmptyArray
		}
		d.log.Debug("invalid mean request", zap.Any("errors", res.Errors()))
		return nil, ErrBodyNotArray
	}

	value, err := models.ParseValue(data)
	if err != nil {
		return nil, ErrBodyInvalidJSON
	}

	values := make([]float64, 0, len(value.Array))
	for _, item := range value.Array {
		f, ok := item.Float()
		if !ok {
			return nil, ErrBodyElementNotNumber
		}
		values = append(values, f)
	}

	// the schema rejects empty arrays, so an error here is an internal fault
	result, err := numeric.Mean(values)
	if err != nil {
		return nil, fmt.Errorf("mean of %d values: %w", len(values), err)
	}

	return Float(result), nil
}
