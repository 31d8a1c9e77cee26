package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateRatingCommandIsNotConstructed = errors.New(
	"UpdateRatingCommand must be created via NewUpdateRatingCommand constructor",
)

// UpdateRatingCommand edits a rating. A nil score leaves it unchanged. A nil
// comment leaves it unchanged; a pointer to "" removes it.
type UpdateRatingCommand struct {
	id            kernel.UUID
	score         *kernel.Score
	commentChange bool
	comment       *kernel.Comment

	guard guard.ConstructorGuard
}

func NewUpdateRatingCommand(id kernel.UUID, score *int, comment *string) (UpdateRatingCommand, error) {
	cmd := UpdateRatingCommand{id: id, guard: guard.NewConstructorGuard()}

	var scoreErr, commentErr error
	if score != nil {
		s, err := kernel.NewScore(*score)
		scoreErr = err
		cmd.score = &s
	}
	if comment != nil {
		cmd.commentChange = true
		cmd.comment, commentErr = services.OptionalComment(comment)
	}

	if err := errors.Join(id.Validate(), scoreErr, commentErr); err != nil {
		return UpdateRatingCommand{}, err
	}

	if cmd.score == nil && !cmd.commentChange {
		return UpdateRatingCommand{}, errs.NewValueIsRequiredError("score or comment")
	}

	return cmd, nil
}

func (c UpdateRatingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRatingCommandIsNotConstructed)
}

func (c UpdateRatingCommand) ID() kernel.UUID { return c.id }

// Score returns the new score, or nil to keep the current one.
func (c UpdateRatingCommand) Score() *kernel.Score { return c.score }

// Comment reports whether the comment changes and its new value.
func (c UpdateRatingCommand) Comment() (*kernel.Comment, bool) { return c.comment, c.commentChange }
