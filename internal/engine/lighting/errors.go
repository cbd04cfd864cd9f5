package lighting

import "errors"

// ErrInvalidConfig is returned when day cycle settings cannot drive a
// controller. Errors wrap it with details; test with errors.Is.
var ErrInvalidConfig = errors.New("invalid day cycle config")
