package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"grover-graphql/internal/model"
	"grover-graphql/internal/testutil"
)

func TestRunIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	opts := Options{Email: "demo@example.com", Password: "grover-demo"}

	require.NoError(t, Run(ctx, db, opts, zap.NewNop()))
	require.NoError(t, Run(ctx, db, opts, zap.NewNop()))

	counts := map[interface{}]int64{
		&model.Category{}:        int64(len(categories)),
		&model.Product{}:         int64(len(products)),
		&model.Merchant{}:        int64(len(merchants)),
		&model.Location{}:        int64(len(locations)),
		&model.Variant{}:         int64(len(variants)),
		&model.VariantHistory{}:  int64(len(variants)),
		&model.User{}:            1,
		&model.ProductList{}:     1,
		&model.ProductListItem{}: 2,
	}
	for m, want := range counts {
		var got int64
		require.NoError(t, db.Model(m).Count(&got).Error)
		assert.Equal(t, want, got, "%T", m)
	}

	var user model.User
	require.NoError(t, db.Where(model.User{Email: opts.Email}).First(&user).Error)
	assert.True(t, user.CheckPassword(opts.Password))

	var history model.VariantHistory
	require.NoError(t, db.First(&history).Error)
	assert.Equal(t, 1, history.Revision)
	assert.Equal(t, model.ActionInsert, history.Action)
}

func TestRunValidatesOptions(t *testing.T) {
	db := testutil.NewDB(t)
	err := Run(context.Background(), db, Options{Email: "nope", Password: "short"}, zap.NewNop())
	assert.Error(t, err)
}
