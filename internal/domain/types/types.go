// Package types contains common types used across the application
package types

import (
	"time"

	"github.com/okian/caltrack/internal/domain/calorie"
)

// Calculation is a computed Result stamped with an id and time.
type Calculation struct {
	ID         string         `json:"id"`
	ComputedAt time.Time      `json:"computed_at"`
	Input      calorie.Input  `json:"input"`
	Result     calorie.Result `json:"result"`
}
