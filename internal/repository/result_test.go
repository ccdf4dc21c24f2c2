package repository

import (
	"net/http"
	"testing"

	"github.com/news-forum-api/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactlyOne(t *testing.T) {
	got, err := exactlyOne([]int{7}, "missing")
	require.NoError(t, err)
	assert.Equal(t, 7, *got)

	_, err = exactlyOne([]int(nil), "missing")
	assert.Equal(t, apperror.NotFound("missing"), err)
}

func TestAtLeastOne(t *testing.T) {
	got, err := atLeastOne([]string{"a", "b"}, "none")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = atLeastOne([]string{}, "none")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestListing(t *testing.T) {
	assert.Equal(t, []int{}, listing([]int(nil)))
	assert.Equal(t, []int{1}, listing([]int{1}))
}
