package rating

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrRatingIsNotConstructed = errors.New("rating must be created via New or Restore")

// Rating is one client's evaluation of one completed order. An order carries
// at most one rating.
type Rating struct {
	id         kernel.UUID
	orderID    kernel.UUID
	clientID   kernel.UUID
	providerID kernel.UUID
	score      kernel.Score
	comment    *kernel.Comment
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// New builds a rating. Eligibility must already have been established; New
// only checks the fields themselves.
func New(
	id, orderID, clientID, providerID kernel.UUID,
	score kernel.Score,
	comment *kernel.Comment,
	now time.Time,
) (*Rating, error) {
	return Restore(id, orderID, clientID, providerID, score, comment, now, now)
}

// Restore rebuilds a rating loaded from storage.
func Restore(
	id, orderID, clientID, providerID kernel.UUID,
	score kernel.Score,
	comment *kernel.Comment,
	createdAt, updatedAt time.Time,
) (*Rating, error) {
	r := &Rating{
		id:            id,
		orderID:       orderID,
		clientID:      clientID,
		providerID:    providerID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		wrapField("id", id.Validate()),
		wrapField("order id", orderID.Validate()),
		wrapField("client id", clientID.Validate()),
		wrapField("provider id", providerID.Validate()),
		r.setScore(score),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}

	if clientID.IsEqual(providerID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("provider id", fmt.Errorf("%s is also the client", providerID))
	}

	return r, nil
}

func wrapField(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID         { return r.id }
func (r *Rating) OrderID() kernel.UUID    { return r.orderID }
func (r *Rating) ClientID() kernel.UUID   { return r.clientID }
func (r *Rating) ProviderID() kernel.UUID { return r.providerID }
func (r *Rating) Score() kernel.Score     { return r.score }
func (r *Rating) CreatedAt() time.Time    { return r.createdAt }
func (r *Rating) UpdatedAt() time.Time    { return r.updatedAt }

// Comment returns nil when the client left no comment.
func (r *Rating) Comment() *kernel.Comment {
	if r.comment == nil {
		return nil
	}
	c := *r.comment
	return &c
}

func (r *Rating) ChangeScore(score kernel.Score, now time.Time) error {
	if err := r.setScore(score); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

// ChangeComment replaces the comment; nil removes it.
func (r *Rating) ChangeComment(comment *kernel.Comment, now time.Time) error {
	if err := r.setComment(comment); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

func (r *Rating) setScore(score kernel.Score) error {
	if err := score.Validate(); err != nil {
		return err
	}
	r.score = score
	return nil
}

func (r *Rating) setComment(comment *kernel.Comment) error {
	if comment == nil {
		r.comment = nil
		return nil
	}
	if err := comment.Validate(); err != nil {
		return err
	}
	c := *comment
	r.comment = &c
	return nil
}
