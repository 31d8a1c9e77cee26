// Package amountcodec reads NUMERIC money columns back into kernel.Money.
package amountcodec

import (
	"marketplace/internal/core/domain/model/kernel"

	"github.com/rs/zerolog"
)

// Decoder applies the money loading policy shared by all repositories.
// In lenient mode a malformed stored amount becomes 0.00 and a warning is
// logged; in strict mode the load fails.
type Decoder struct {
	log    zerolog.Logger
	strict bool
}

func NewDecoder(log zerolog.Logger, strict bool) Decoder {
	return Decoder{
		log:    log.With().Str("component", "amount_decoder").Logger(),
		strict: strict,
	}
}

// Decode converts raw, the text form of column in table for row id.
func (d Decoder) Decode(table, column, id, raw string) (kernel.Money, error) {
	m, err := kernel.MoneyFromPersisted(raw)
	if err == nil {
		return m, nil
	}

	if d.strict {
		return kernel.Money{}, err
	}

	d.log.Warn().
		Err(err).
		Str("table", table).
		Str("column", column).
		Str("id", id).
		Str("raw", raw).
		Msg("stored amount coerced to 0.00")

	return m, nil
}

// Encode returns the text form stored in NUMERIC(10,2) columns.
func Encode(m kernel.Money) string {
	return m.String()
}
