package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
)

func TestNewTrackOrderQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		trackingID := kernel.NewTrackingID()

		query, err := queries.NewTrackOrderQuery(trackingID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, trackingID.IsEqual(query.TrackingID()))
	})

	t.Run("should return error when tracking id is empty", func(t *testing.T) {
		_, err := queries.NewTrackOrderQuery(kernel.TrackingID{})
		assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})

	t.Run("should return error when query was not constructed", func(t *testing.T) {
		var query queries.TrackOrderQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrTrackOrderQueryIsNotConstructed)
	})
}
