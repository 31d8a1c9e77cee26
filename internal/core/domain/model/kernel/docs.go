// Package kernel holds the value objects shared by every aggregate of the
// marketplace: identifiers, money, rating scores and length-bounded text.
//
// Value objects are immutable, compared by value, and can only be obtained
// through their constructors; a zero value fails Validate. Invalid input never
// produces a usable value: constructors return a typed error instead.
//
// Error kinds:
//   - ErrInvalidAmount: non-positive, NaN or infinite money
//   - ErrInvalidScore: score outside 1..5
//   - ErrInvalidText: text shorter or longer than its field bounds
//   - ErrAmountCoerced: a stored amount could not be read and was replaced by 0.00
package kernel
