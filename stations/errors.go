package stations

import "errors"

var (
	ErrInvalidStationData = errors.New("invalid station data")
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
)
