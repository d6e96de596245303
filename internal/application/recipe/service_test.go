package recipe_test

import (
	"context"
	"testing"

	recipeapp "github.com/hauqxngo/NomNom/internal/application/recipe"
	gormrepo "github.com/hauqxngo/NomNom/internal/infrastructure/persistence/gorm"
	"github.com/hauqxngo/NomNom/internal/infrastructure/persistence/sqlite"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	apperrors "github.com/hauqxngo/NomNom/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// stubSuggestions is a canned suggestion source for tests
type stubSuggestions struct {
	suggestion *outbound.Suggestion
	err        error
	gotTags    string
}

func (s *stubSuggestions) Suggest(_ context.Context, tags string) (*outbound.Suggestion, error) {
	s.gotTags = tags
	if s.err != nil {
		return nil, s.err
	}
	return s.suggestion, nil
}

// RecipeServiceTestSuite exercises the recipe service against an
// in-memory sqlite database.
type RecipeServiceTestSuite struct {
	suite.Suite
	service     *recipeapp.Service
	suggestions *stubSuggestions
	ctx         context.Context
}

func (s *RecipeServiceTestSuite) SetupTest() {
	db, err := sqlite.SetupDatabase("", gormlogger.Silent)
	require.NoError(s.T(), err)

	s.suggestions = &stubSuggestions{}
	s.service = recipeapp.NewService(gormrepo.NewRecipeRepository(db), s.suggestions, zap.NewNop())
	s.ctx = context.Background()
}

func (s *RecipeServiceTestSuite) create(ownerID uint, title string) *recipeapp.DTO {
	dto, err := s.service.Create(s.ctx, ownerID, recipeapp.CreateCommand{Title: title})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), dto)
	return dto
}

func (s *RecipeServiceTestSuite) TestCreateAndGet() {
	created := s.create(1, "Shakshuka")

	got, err := s.service.Get(s.ctx, created.ID)
	require.NoError(s.T(), err)
	s.Equal("Shakshuka", got.Title)
	s.Equal(uint(1), got.OwnerID)
	s.False(got.Done)
}

func (s *RecipeServiceTestSuite) TestCreateInvalidTitle() {
	_, err := s.service.Create(s.ctx, 1, recipeapp.CreateCommand{Title: "   "})

	require.Error(s.T(), err)
	s.True(apperrors.Is(err, apperrors.CodeValidationFailed))
}

func (s *RecipeServiceTestSuite) TestGetMissing() {
	_, err := s.service.Get(s.ctx, 9999)

	require.Error(s.T(), err)
	s.True(apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

func (s *RecipeServiceTestSuite) TestUpdateOwnership() {
	created := s.create(1, "Original")

	s.Run("NonOwner_IsDenied", func() {
		_, err := s.service.Update(s.ctx, 2, created.ID, recipeapp.UpdateCommand{Title: "Hijacked"})

		require.Error(s.T(), err)
		s.True(apperrors.Is(err, apperrors.CodeNotOwner))

		unchanged, err := s.service.Get(s.ctx, created.ID)
		require.NoError(s.T(), err)
		s.Equal("Original", unchanged.Title)
	})

	s.Run("Owner_CanEdit", func() {
		dto, err := s.service.Update(s.ctx, 1, created.ID, recipeapp.UpdateCommand{Title: "Edited"})

		require.NoError(s.T(), err)
		s.Equal("Edited", dto.Title)
		s.Equal(uint(1), dto.OwnerID)
	})
}

func (s *RecipeServiceTestSuite) TestDeleteOwnership() {
	created := s.create(1, "Keeper")

	s.Run("NonOwner_IsDeniedAndRecipeSurvives", func() {
		err := s.service.Delete(s.ctx, 2, created.ID)

		require.Error(s.T(), err)
		s.True(apperrors.Is(err, apperrors.CodeNotOwner))

		_, err = s.service.Get(s.ctx, created.ID)
		s.NoError(err)
	})

	s.Run("Owner_CanDelete", func() {
		require.NoError(s.T(), s.service.Delete(s.ctx, 1, created.ID))

		_, err := s.service.Get(s.ctx, created.ID)
		require.Error(s.T(), err)
		s.True(apperrors.Is(err, apperrors.CodeRecipeNotFound))
	})
}

func (s *RecipeServiceTestSuite) TestToggleDone() {
	created := s.create(1, "Stew")

	s.Run("NonOwner_IsDenied", func() {
		_, err := s.service.ToggleDone(s.ctx, 2, created.ID)

		require.Error(s.T(), err)
		s.True(apperrors.Is(err, apperrors.CodeNotOwner))
	})

	s.Run("Toggle_SetsDoneAndTimestamp", func() {
		dto, err := s.service.ToggleDone(s.ctx, 1, created.ID)

		require.NoError(s.T(), err)
		s.True(dto.Done)
		s.NotNil(dto.DoneOn)
	})

	s.Run("SecondToggle_RestoresOriginalState", func() {
		dto, err := s.service.ToggleDone(s.ctx, 1, created.ID)

		require.NoError(s.T(), err)
		s.False(dto.Done)
		s.Nil(dto.DoneOn)
	})
}

func (s *RecipeServiceTestSuite) TestListForOwner() {
	s.create(1, "Mine")
	s.create(2, "Theirs")

	list, err := s.service.ListForOwner(s.ctx, 1)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 1)
	s.Equal("Mine", list[0].Title)
}

func (s *RecipeServiceTestSuite) TestSuggest() {
	s.Run("PassesTagsThrough", func() {
		s.suggestions.suggestion = &outbound.Suggestion{Title: "Tacos", SourceURL: "https://example.com/tacos"}

		got, err := s.service.Suggest(s.ctx, "mexican,dinner")

		require.NoError(s.T(), err)
		s.Equal("Tacos", got.Title)
		s.Equal("mexican,dinner", s.suggestions.gotTags)
	})

	s.Run("UpstreamErrorSurfaces", func() {
		s.suggestions.err = apperrors.NewNoSuggestionsError("vegan")

		_, err := s.service.Suggest(s.ctx, "vegan")

		require.Error(s.T(), err)
		s.True(apperrors.Is(err, apperrors.CodeNoSuggestions))
	})
}

func (s *RecipeServiceTestSuite) TestSaveSuggestion() {
	dto, err := s.service.SaveSuggestion(s.ctx, 1, &outbound.Suggestion{
		Title:     "Pad Thai",
		ImageURL:  "https://example.com/padthai.png",
		SourceURL: "https://example.com/padthai",
	})

	require.NoError(s.T(), err)
	s.Equal("Pad Thai", dto.Title)
	s.Equal(uint(1), dto.OwnerID)

	count, err := s.service.CountForOwner(s.ctx, 1)
	require.NoError(s.T(), err)
	s.Equal(int64(1), count)
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
