package climb

import "errors"

var (
	ErrNotCardinal     = errors.New("climb: direction is not cardinal")
	ErrInvalidQuality  = errors.New("climb: grip quality out of range")
	ErrDuplicateGrip   = errors.New("climb: grip already registered at position")
	ErrInvalidGeometry = errors.New("climb: invalid grid geometry")
)
