package catalog

import (
	"fmt"
	"slices"

	"atelier/internal/pkg/errs"
)

// Genre is who the garment is cut for.
type Genre string

const (
	GenreMen      Genre = "Homme"
	GenreWomen    Genre = "Femme"
	GenreChildren Genre = "Enfant"
)

// Event is the occasion a garment is worn for.
type Event string

const (
	EventCeremony Event = "Cérémonie"
	EventDaily    Event = "Quotidien"
	EventEvening  Event = "Soirée"
)

// Difficulty grades how hard a model is to sew.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Débutant"
	DifficultyIntermediate Difficulty = "Intermédiaire"
	DifficultyAdvanced     Difficulty = "Avancé"
)

func (g Genre) Validate() error {
	return oneOf("genre", g, GenreMen, GenreWomen, GenreChildren)
}

func (e Event) Validate() error {
	return oneOf("event", e, EventCeremony, EventDaily, EventEvening)
}

func (d Difficulty) Validate() error {
	return oneOf("difficulty", d, DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced)
}

func oneOf[T ~string](param string, v T, allowed ...T) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not one of %q", v, allowed))
}
