package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cordwain/internal/domain/specification"
)

func createTestMedia(t *testing.T, view specification.ViewKey, url string) *specification.MediaAsset {
	asset, err := specification.NewMediaAsset(view, url)
	require.NoError(t, err)
	return asset
}

func TestSpecificationRepository_SaveMedia(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpecificationRepository(db)
	ctx := context.Background()

	t.Run("save assigns an ID", func(t *testing.T) {
		asset := createTestMedia(t, specification.ViewLateral, "https://cdn.example.com/lateral.jpg")

		err := repo.SaveMedia(ctx, 10, 2, asset)
		assert.NoError(t, err)
		assert.NotZero(t, asset.ID())
	})

	t.Run("second upload for the same view is rejected", func(t *testing.T) {
		first := createTestMedia(t, specification.ViewMedial, "https://cdn.example.com/medial.jpg")
		require.NoError(t, repo.SaveMedia(ctx, 10, 2, first))

		second := createTestMedia(t, specification.ViewMedial, "https://cdn.example.com/medial-2.jpg")
		err := repo.SaveMedia(ctx, 10, 2, second)
		assert.Error(t, err)
	})

	t.Run("same view on another position is allowed", func(t *testing.T) {
		asset := createTestMedia(t, specification.ViewMedial, "https://cdn.example.com/p3-medial.jpg")
		err := repo.SaveMedia(ctx, 10, 3, asset)
		assert.NoError(t, err)
	})

	t.Run("placeholder cannot be saved", func(t *testing.T) {
		placeholder := specification.PlaceholderAsset(specification.ViewToe)
		err := repo.SaveMedia(ctx, 10, 2, placeholder)
		assert.Error(t, err)
	})
}

func TestSpecificationRepository_GetByOrderPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpecificationRepository(db)
	ctx := context.Background()

	t.Run("position without media yields an empty specification", func(t *testing.T) {
		spec, err := repo.GetByOrderPosition(ctx, 99, 1)
		assert.NoError(t, err)
		require.NotNil(t, spec)
		assert.Empty(t, spec.PersistedViews())
		assert.Empty(t, spec.Annotations())
	})

	t.Run("aggregate collects media and annotations of its position", func(t *testing.T) {
		lateral := createTestMedia(t, specification.ViewLateral, "https://cdn.example.com/lateral.jpg")
		require.NoError(t, repo.SaveMedia(ctx, 10, 2, lateral))
		toe := createTestMedia(t, specification.ViewToe, "https://cdn.example.com/toe.jpg")
		require.NoError(t, repo.SaveMedia(ctx, 10, 2, toe))

		other := createTestMedia(t, specification.ViewLateral, "https://cdn.example.com/other.jpg")
		require.NoError(t, repo.SaveMedia(ctx, 20, 1, other))

		a, err := specification.NewAnnotation(lateral.ID(), 0.25, 0.75, "Seam runs crooked here", "Anna Vogel")
		require.NoError(t, err)
		require.NoError(t, repo.SaveAnnotation(ctx, 10, 2, a))

		spec, err := repo.GetByOrderPosition(ctx, 10, 2)
		assert.NoError(t, err)
		assert.Len(t, spec.PersistedViews(), 2)

		asset, ok := spec.PersistedAsset(specification.ViewLateral)
		require.True(t, ok)
		assert.Equal(t, lateral.ID(), asset.ID())
		assert.Equal(t, "https://cdn.example.com/lateral.jpg", asset.URL())
		assert.Equal(t, specification.MediaStatusOpen, asset.Status())

		require.Len(t, spec.Annotations(), 1)
		assert.Equal(t, "Seam runs crooked here", spec.Annotations()[0].Note())
		assert.InDelta(t, 0.25, spec.Annotations()[0].X(), 1e-9)
		assert.InDelta(t, 0.75, spec.Annotations()[0].Y(), 1e-9)
	})
}

func TestSpecificationRepository_UpdateMedia(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpecificationRepository(db)
	ctx := context.Background()

	t.Run("status and URL changes persist", func(t *testing.T) {
		asset := createTestMedia(t, specification.ViewHeel, "https://cdn.example.com/heel.jpg")
		require.NoError(t, repo.SaveMedia(ctx, 10, 2, asset))

		require.NoError(t, asset.ChangeStatus(specification.MediaStatusResolved))
		require.NoError(t, asset.Replace("https://cdn.example.com/heel-v2.jpg"))

		err := repo.UpdateMedia(ctx, asset)
		assert.NoError(t, err)

		spec, err := repo.GetByOrderPosition(ctx, 10, 2)
		require.NoError(t, err)
		found, ok := spec.PersistedAsset(specification.ViewHeel)
		require.True(t, ok)
		assert.Equal(t, asset.ID(), found.ID())
		assert.Equal(t, specification.MediaStatusResolved, found.Status())
		assert.Equal(t, "https://cdn.example.com/heel-v2.jpg", found.URL())
	})

	t.Run("asset without ID is rejected", func(t *testing.T) {
		asset := createTestMedia(t, specification.ViewTop, "https://cdn.example.com/top.jpg")
		err := repo.UpdateMedia(ctx, asset)
		assert.Error(t, err)
	})
}

func TestSpecificationRepository_DeleteMedia(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpecificationRepository(db)
	ctx := context.Background()

	t.Run("delete cascades annotations", func(t *testing.T) {
		asset := createTestMedia(t, specification.ViewSole, "https://cdn.example.com/sole.jpg")
		require.NoError(t, repo.SaveMedia(ctx, 10, 2, asset))

		a, err := specification.NewAnnotation(asset.ID(), 0.5, 0.5, "Check tread depth", "Tom Weber")
		require.NoError(t, err)
		require.NoError(t, repo.SaveAnnotation(ctx, 10, 2, a))

		err = repo.DeleteMedia(ctx, asset.ID())
		assert.NoError(t, err)

		spec, err := repo.GetByOrderPosition(ctx, 10, 2)
		require.NoError(t, err)
		_, ok := spec.PersistedAsset(specification.ViewSole)
		assert.False(t, ok)
		assert.Empty(t, spec.Annotations())
	})

	t.Run("delete non-existent media should fail", func(t *testing.T) {
		err := repo.DeleteMedia(ctx, 9999)
		assert.Error(t, err)
	})
}

func TestSpecificationRepository_Annotations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpecificationRepository(db)
	ctx := context.Background()

	asset := createTestMedia(t, specification.ViewInsole, "https://cdn.example.com/insole.jpg")
	require.NoError(t, repo.SaveMedia(ctx, 10, 2, asset))

	t.Run("save assigns an ID", func(t *testing.T) {
		a, err := specification.NewAnnotation(asset.ID(), 0.1, 0.9, "Padding too thin", "Anna Vogel")
		require.NoError(t, err)

		err = repo.SaveAnnotation(ctx, 10, 2, a)
		assert.NoError(t, err)
		assert.NotZero(t, a.ID())
	})

	t.Run("delete removes a single annotation", func(t *testing.T) {
		a, err := specification.NewAnnotation(asset.ID(), 0.3, 0.3, "Temporary note", "Tom Weber")
		require.NoError(t, err)
		require.NoError(t, repo.SaveAnnotation(ctx, 10, 2, a))

		err = repo.DeleteAnnotation(ctx, a.ID())
		assert.NoError(t, err)

		spec, err := repo.GetByOrderPosition(ctx, 10, 2)
		require.NoError(t, err)
		for _, remaining := range spec.Annotations() {
			assert.NotEqual(t, a.ID(), remaining.ID())
		}
	})

	t.Run("delete non-existent annotation should fail", func(t *testing.T) {
		err := repo.DeleteAnnotation(ctx, 9999)
		assert.Error(t, err)
	})
}
