// Package recipe contains the core domain logic for recipe tracking.
package recipe

import (
	"strings"
	"time"
)

// DefaultImageURL is used when a recipe is saved without an image.
const DefaultImageURL = "https://www.freeiconspng.com/uploads/free-recipe-sheet-clip-art-21.png"

// Recipe represents a recipe saved by a user.
// The owner is fixed at creation and never changes.
type Recipe struct {
	id           uint
	title        string
	sourceURL    string
	ingredients  string
	instructions string
	imageURL     string
	createdOn    time.Time
	done         bool
	doneOn       *time.Time
	leftovers    bool
	ownerID      uint
}

// NewRecipe creates a new Recipe with validation
func NewRecipe(ownerID uint, title, sourceURL, ingredients, instructions, imageURL string, leftovers bool) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if ownerID == 0 {
		return nil, ErrOwnerRequired
	}

	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	return &Recipe{
		title:        title,
		sourceURL:    sourceURL,
		ingredients:  ingredients,
		instructions: instructions,
		imageURL:     imageURL,
		createdOn:    time.Now(),
		leftovers:    leftovers,
		ownerID:      ownerID,
	}, nil
}

// Reconstitute rebuilds a recipe from persisted state without validation.
func Reconstitute(id uint, ownerID uint, title, sourceURL, ingredients, instructions, imageURL string, createdOn time.Time, done bool, doneOn *time.Time, leftovers bool) *Recipe {
	return &Recipe{
		id:           id,
		title:        title,
		sourceURL:    sourceURL,
		ingredients:  ingredients,
		instructions: instructions,
		imageURL:     imageURL,
		createdOn:    createdOn,
		done:         done,
		doneOn:       doneOn,
		leftovers:    leftovers,
		ownerID:      ownerID,
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uint {
	return r.id
}

// SetID assigns the database-generated identifier after insert.
func (r *Recipe) SetID(id uint) {
	r.id = id
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// SourceURL returns where the recipe came from, if anywhere
func (r *Recipe) SourceURL() string {
	return r.sourceURL
}

// Ingredients returns the recipe's ingredients text
func (r *Recipe) Ingredients() string {
	return r.ingredients
}

// Instructions returns the recipe's instructions text
func (r *Recipe) Instructions() string {
	return r.instructions
}

// ImageURL returns the recipe's image URL
func (r *Recipe) ImageURL() string {
	return r.imageURL
}

// CreatedOn returns when the recipe was saved
func (r *Recipe) CreatedOn() time.Time {
	return r.createdOn
}

// Done reports whether the recipe has been cooked
func (r *Recipe) Done() bool {
	return r.done
}

// DoneOn returns when the recipe was marked cooked, if it was
func (r *Recipe) DoneOn() *time.Time {
	return r.doneOn
}

// Leftovers reports the optional leftovers flag
func (r *Recipe) Leftovers() bool {
	return r.leftovers
}

// OwnerID returns the owning user's ID
func (r *Recipe) OwnerID() uint {
	return r.ownerID
}

// OwnedBy reports whether the given user owns this recipe
func (r *Recipe) OwnedBy(userID uint) bool {
	return r.ownerID == userID
}

// Update replaces the recipe's editable fields with validation.
// The owner and creation time are immutable.
func (r *Recipe) Update(title, sourceURL, ingredients, instructions, imageURL string, leftovers bool) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	r.title = title
	r.sourceURL = sourceURL
	r.ingredients = ingredients
	r.instructions = instructions
	if imageURL != "" {
		r.imageURL = imageURL
	}
	r.leftovers = leftovers

	return nil
}

// ToggleDone flips the cooked flag. Applying it twice returns the recipe
// to its original state, including the done timestamp.
func (r *Recipe) ToggleDone() {
	r.done = !r.done
	if r.done {
		now := time.Now()
		r.doneOn = &now
	} else {
		r.doneOn = nil
	}
}

// validateTitle validates the recipe title
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len(title) > 100 {
		return ErrTitleTooLong
	}
	return nil
}
