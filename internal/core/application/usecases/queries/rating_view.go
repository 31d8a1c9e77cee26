package queries

import (
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const ratingColumns = "id, order_id, client_id, provider_id, score, comment, created_at, updated_at"

// RatingView is the read model of a rating. Comment is nil when the client
// left none.
type RatingView struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	ClientID   kernel.UUID
	ProviderID kernel.UUID
	Score      int
	Comment    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func scanRatingView(rows *sql.Rows) (RatingView, error) {
	var (
		view                              RatingView
		id, orderID, clientID, providerID uuid.UUID
		comment                           sql.NullString
	)
	if err := rows.Scan(
		&id, &orderID, &clientID, &providerID,
		&view.Score, &comment, &view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return RatingView{}, err
	}

	view.ID, _ = kernel.UUIDFromBytes(id[:])
	view.OrderID, _ = kernel.UUIDFromBytes(orderID[:])
	view.ClientID, _ = kernel.UUIDFromBytes(clientID[:])
	view.ProviderID, _ = kernel.UUIDFromBytes(providerID[:])
	if comment.Valid {
		c := comment.String
		view.Comment = &c
	}

	return view, nil
}

// scanRatingViews drains rows; no rows yields an empty, non-nil slice.
func scanRatingViews(rows *sql.Rows) ([]RatingView, error) {
	views := make([]RatingView, 0)
	for rows.Next() {
		view, err := scanRatingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
