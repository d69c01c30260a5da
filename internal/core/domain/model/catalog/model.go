package catalog

import (
	"errors"
	"net/url"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrTitleIsRequired       = errs.NewValueIsRequiredError("title")
	ErrImageIsRequired       = errs.NewValueIsRequiredError("image urls")
	ErrModelIsNotConstructed = errors.New("Model must be created via NewModel constructor")
)

// Model is a catalog entry. The first image is the cover shown in listings.
type Model struct {
	id          kernel.UUID
	title       string
	genre       Genre
	event       Event
	difficulty  Difficulty
	fabric      string
	description string
	imageURLs   []string
	patternLink string
	guard       guard.ConstructorGuard
}

// ModelParams groups the descriptive fields of a Model.
type ModelParams struct {
	Title       string
	Genre       Genre
	Event       Event
	Difficulty  Difficulty
	Fabric      string
	Description string
	ImageURLs   []string
	PatternLink string
}

func NewModel(id kernel.UUID, p ModelParams) (*Model, error) {
	title := strings.TrimSpace(p.Title)

	errList := []error{id.Validate(), p.Genre.Validate(), p.Event.Validate(), p.Difficulty.Validate()}
	if title == "" {
		errList = append(errList, ErrTitleIsRequired)
	}
	if len(p.ImageURLs) == 0 {
		errList = append(errList, ErrImageIsRequired)
	}
	for _, raw := range append(cloneStrings(p.ImageURLs), p.PatternLink) {
		if raw == "" {
			continue
		}
		if _, err := url.ParseRequestURI(raw); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("url", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Model{
		id:          id,
		title:       title,
		genre:       p.Genre,
		event:       p.Event,
		difficulty:  p.Difficulty,
		fabric:      p.Fabric,
		description: p.Description,
		imageURLs:   cloneStrings(p.ImageURLs),
		patternLink: p.PatternLink,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func (m *Model) Validate() error {
	if m == nil {
		return ErrModelIsNotConstructed
	}
	return m.guard.Validate(ErrModelIsNotConstructed)
}

func (m *Model) ID() kernel.UUID        { return m.id }
func (m *Model) Title() string          { return m.title }
func (m *Model) Genre() Genre           { return m.genre }
func (m *Model) Event() Event           { return m.event }
func (m *Model) Difficulty() Difficulty { return m.difficulty }
func (m *Model) Fabric() string         { return m.fabric }
func (m *Model) Description() string    { return m.description }
func (m *Model) PatternLink() string    { return m.patternLink }

// ImageURLs returns a copy of the gallery, cover first.
func (m *Model) ImageURLs() []string {
	return cloneStrings(m.imageURLs)
}

// CoverImage returns the first image.
func (m *Model) CoverImage() string {
	return m.imageURLs[0]
}
