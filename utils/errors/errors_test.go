package errors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/muhammadheryan/warehouse/constant"
	cerr "github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", cerr.SetCustomErrorDetail(constant.ErrNoCapacity, "product 8"))

	assert.True(t, errors.Is(err, cerr.SetCustomError(constant.ErrNoCapacity)))
	assert.False(t, errors.Is(err, cerr.SetCustomError(constant.ErrCapacityExceeded)))
	assert.Equal(t, constant.ErrNoCapacity, cerr.TypeOf(err))
	assert.Equal(t, constant.ErrInternal, cerr.TypeOf(errors.New("plain")))
}

func TestCustomError_JSON(t *testing.T) {
	b, err := json.Marshal(cerr.SetCustomErrorDetail(constant.ErrDuplicateKey, "email a@x.com"))
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "0006", got["code"])
	assert.Equal(t, "data already exists", got["message"])
	assert.Equal(t, "email a@x.com", got["detail"])
	assert.Equal(t, "data already exists: email a@x.com", cerr.SetCustomErrorDetail(constant.ErrDuplicateKey, "email a@x.com").Error())
}
