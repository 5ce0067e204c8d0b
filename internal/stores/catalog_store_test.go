package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_FetchProductMetadata_NoIDs(t *testing.T) {
	t.Parallel()

	// no query is issued, so a nil pool is never touched
	store := NewCatalogStore(nil)

	products, err := store.FetchProductMetadata(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMembershipsQuery_SelectsAllOrOneStatus(t *testing.T) {
	t.Parallel()

	assert.Contains(t, selectMembershipsSQL, "$1::text = 'all'")
	assert.Contains(t, selectProductMetadataSQL, "= ANY($1)")
}
