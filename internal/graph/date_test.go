package graph

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	raw, err := json.Marshal(Date{at})
	require.NoError(t, err)
	assert.Equal(t, "1709294400000", string(raw))

	for _, in := range []interface{}{int32(1000), int64(1709294400000), float64(1709294400000), json.Number("1709294400000")} {
		var d Date
		require.NoError(t, d.UnmarshalGraphQL(in))
		assert.False(t, d.IsZero())
	}

	var d Date
	require.NoError(t, d.UnmarshalGraphQL(float64(1709294400000)))
	assert.True(t, at.Equal(d.Time))

	assert.Error(t, d.UnmarshalGraphQL("yesterday"))
	assert.True(t, Date{}.ImplementsGraphQLType("Date"))
}
