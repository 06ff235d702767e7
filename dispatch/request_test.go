package dispatch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/mathy/dispatch"
)

func TestParseQuery(t *testing.T) {
	params := dispatch.ParseQuery("n=1&n=2&empty=&flag&a=%20x&bad=%zz+y&b=c+d&semi=5;x=1&eq=a=b&&")

	assert.Equal(t, []string{"1", "2"}, params["n"])
	assert.Equal(t, []string{" x"}, params["a"])
	assert.Equal(t, []string{"c d"}, params["b"])
	assert.Equal(t, []string{"%zz y"}, params["bad"])
	assert.Equal(t, []string{"5;x=1"}, params["semi"])
	assert.Equal(t, []string{"a=b"}, params["eq"])
	assert.NotContains(t, params, "empty")
	assert.NotContains(t, params, "flag")
	assert.NotContains(t, params, "")

	first, ok := params.First("n")
	require.True(t, ok)
	assert.Equal(t, "1", first)

	_, ok = params.First("missing")
	assert.False(t, ok)
}

func TestBodyReader_OneShot(t *testing.T) {
	body := dispatch.BytesBody([]byte(`[1]`))

	data, err := body.ReadBody(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(data))

	_, err = body.ReadBody(context.Background())
	assert.ErrorIs(t, err, dispatch.ErrBodyConsumed)
}

func TestBodyReader_Limit(t *testing.T) {
	body := dispatch.NewBodyReader(strings.NewReader("12345"), 5)
	data, err := body.ReadBody(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))

	body = dispatch.NewBodyReader(strings.NewReader("123456"), 5)
	_, err = body.ReadBody(context.Background())
	assert.ErrorIs(t, err, dispatch.ErrBodyTooLarge)
}

func TestBodyReader_NilReader(t *testing.T) {
	data, err := dispatch.NewBodyReader(nil, 0).ReadBody(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}
