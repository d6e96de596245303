// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/hauqxngo/NomNom/internal/domain/recipe"
	"github.com/hauqxngo/NomNom/internal/domain/user"
)

// UserFactory provides methods to create test users
type UserFactory struct {
	faker *gofakeit.Faker
	seq   uint
}

// NewUserFactory creates a new user factory with seeded faker
func NewUserFactory(seed int64) *UserFactory {
	return &UserFactory{faker: gofakeit.New(seed)}
}

// ValidUser creates a valid user with generated data. The password is
// always "correct horse" so tests can authenticate against it.
func (f *UserFactory) ValidUser() (*user.User, error) {
	f.seq++
	return user.NewUser(
		f.faker.FirstName(),
		f.faker.LastName(),
		fmt.Sprintf("user%d@example.com", f.seq),
		"correct horse",
		"",
	)
}

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// ValidRecipe creates a valid recipe owned by the given user
func (f *RecipeFactory) ValidRecipe(ownerID uint) (*recipe.Recipe, error) {
	return recipe.NewRecipe(
		ownerID,
		f.faker.Dinner(),
		"https://example.com/recipes/"+f.faker.UUID(),
		f.faker.Sentence(8),
		f.faker.Paragraph(1, 3, 8, " "),
		"",
		false,
	)
}
