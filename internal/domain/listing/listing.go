package listing

import (
	"strings"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/pkg/patch"
	"groupbuy-service/internal/pkg/sanitize"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDraft       = errs.Class("listing draft is invalid", errs.ErrInvalidArgument)
	ErrEmptyName          = errs.Class("product name cannot be empty", errs.ErrInvalidArgument)
	ErrPeopleOutOfRange   = errs.Class("number of people is out of the allowed range", errs.ErrInvalidArgument)
	ErrDraftTokenNotFound = errs.Class("listing draft token is invalid or expired", errs.ErrNotFound)
)

// Draft is a scraped product the server trusts. Clients only ever hold the
// opaque token that refers to it.
type Draft struct {
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	Description         string          `json:"description"`
	DiscountDescription string          `json:"discountDescription"`
	PricePerUnit        decimal.Decimal `json:"pricePerUnit"`
	DiscountedPrice     decimal.Decimal `json:"discountedPrice"`
	ImageURL            string          `json:"imageUrl"`
	SourceURL           string          `json:"sourceUrl"`
	MinPeople           int             `json:"minPeople"`
	MaxPeople           int             `json:"maxPeople"`
}

func (d Draft) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return errs.Wrap(ErrInvalidDraft, "name is required")
	case d.MinPeople < 1 || d.MaxPeople < d.MinPeople:
		return errs.Wrap(ErrInvalidDraft, "people range is invalid")
	case d.MaxPeople < groupbuy.MinParticipants:
		return errs.Wrapf(ErrInvalidDraft, "a group buy needs at least %d people", groupbuy.MinParticipants)
	case !d.PricePerUnit.IsPositive():
		return errs.Wrap(ErrInvalidDraft, "price per unit must be positive")
	case d.DiscountedPrice.IsNegative():
		return errs.Wrap(ErrInvalidDraft, "discounted price cannot be negative")
	}
	return nil
}

type Listing struct {
	id             uuid.UUID
	draft          Draft
	name           string
	numberOfPeople int
	createdBy      uuid.UUID
	createdAt      time.Time
}

// NewListing merges the user's editable fields into the trusted draft.
// Prices always come from the draft. The group buy it opens needs at least
// groupbuy.MinParticipants people even when the draft allows fewer.
func NewListing(draft Draft, nameOverride *string, numberOfPeople int, createdBy uuid.UUID, now time.Time) (*Listing, error) {
	if numberOfPeople < max(draft.MinPeople, groupbuy.MinParticipants) || numberOfPeople > draft.MaxPeople {
		return nil, ErrPeopleOutOfRange
	}

	name := sanitize.StripTags(patch.CoalesceText(nameOverride, draft.Name))
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Listing{
		id:             uuid.New(),
		draft:          draft,
		name:           name,
		numberOfPeople: numberOfPeople,
		createdBy:      createdBy,
		createdAt:      now,
	}, nil
}

func (l *Listing) ID() uuid.UUID        { return l.id }
func (l *Listing) Draft() Draft         { return l.draft }
func (l *Listing) Name() string         { return l.name }
func (l *Listing) NumberOfPeople() int  { return l.numberOfPeople }
func (l *Listing) CreatedBy() uuid.UUID { return l.createdBy }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }
