package world

import "errors"

var (
	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrInvalidWhiteLevel is returned for a white level outside [0, 1].
	ErrInvalidWhiteLevel = errors.New("invalid white level")
	// ErrUnknownTile is returned for a grapheme or name outside the tile set.
	ErrUnknownTile = errors.New("unknown tile")
	// ErrRaggedRows is returned when rows of a drawn map differ in width.
	ErrRaggedRows = errors.New("rows differ in width")
	// ErrNoOpenCell is returned when a grid has no empty cell for the player.
	ErrNoOpenCell = errors.New("no empty cell to place the player")
	// ErrAlreadyClassified is returned when classifying a grid that already holds markers.
	ErrAlreadyClassified = errors.New("grid already holds markers")
	// ErrUnknownStrategy is returned for an unrecognized classification strategy.
	ErrUnknownStrategy = errors.New("unknown classification strategy")
)
