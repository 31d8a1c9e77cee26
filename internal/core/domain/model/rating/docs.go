// Package rating holds the Rating entity a client leaves on a completed order,
// and the rejection kinds produced when a rating is refused.
package rating
