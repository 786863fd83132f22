package plant

import "errors"

// Sentinel errors for Plant mutation.
var (
	// ErrCellOccupied indicates Place targeted a cell that already holds a station.
	ErrCellOccupied = errors.New("plant: cell already occupied")

	// ErrStationAlreadyPlaced indicates the named station is already placed elsewhere.
	ErrStationAlreadyPlaced = errors.New("plant: station already placed")

	// ErrCellOutOfRange indicates a cell lies outside the grid's bounds.
	ErrCellOutOfRange = errors.New("plant: cell out of range")

	// ErrUnknownStation indicates a station name absent from the grid's model set.
	ErrUnknownStation = errors.New("plant: unknown station model")
)
