package board

import (
	"log/slog"

	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
)

// Service provides ship placement on boards
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new BoardService
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// PlaceShip validates the coordinates and places the ship on the board.
// The board is left untouched when the placement is rejected.
func (s *Service) PlaceShip(board *model.Board, spec model.ShipSpec, coords []model.Coordinate) error {
	if err := board.ValidatePlacement(coords); err != nil {
		return err
	}
	if len(coords) != spec.Size {
		return model.ErrPlacementOutOfBounds
	}
	board.PlaceShip(model.NewShip(spec), coords)
	return nil
}

// PlaceShipAt expands an anchor and orientation into coordinates and places the ship
func (s *Service) PlaceShipAt(board *model.Board, spec model.ShipSpec, anchor model.Coordinate, orientation model.Orientation) ([]model.Coordinate, error) {
	if !orientation.Valid() {
		return nil, model.ErrInvalidOrientation
	}
	coords := model.ShipCoordinates(anchor, orientation, spec.Size)
	if err := s.PlaceShip(board, spec, coords); err != nil {
		return nil, err
	}
	return coords, nil
}

// PlaceShipRandomly samples orientations and anchors until one fits.
// There is no attempt limit; with the canonical fleet on an empty board a
// fit always exists.
func (s *Service) PlaceShipRandomly(board *model.Board, spec model.ShipSpec) []model.Coordinate {
	attempts := 0
	for {
		attempts++
		orientation := model.OrientationHorizontal
		if s.random.Intn(2) == 1 {
			orientation = model.OrientationVertical
		}

		var anchor model.Coordinate
		span := model.BoardSize - spec.Size + 1
		if orientation == model.OrientationHorizontal {
			anchor = model.Coordinate{Row: s.random.Intn(model.BoardSize), Col: s.random.Intn(span)}
		} else {
			anchor = model.Coordinate{Row: s.random.Intn(span), Col: s.random.Intn(model.BoardSize)}
		}

		coords := model.ShipCoordinates(anchor, orientation, spec.Size)
		if board.IsValidPlacement(coords) {
			board.PlaceShip(model.NewShip(spec), coords)
			s.logger.Debug("ship placed randomly",
				slog.String("ship", spec.Name),
				slog.String("anchor", anchor.String()),
				slog.String("orientation", string(orientation)),
				slog.Int("attempts", attempts),
			)
			return coords
		}
	}
}

// PlaceFleetRandomly places every spec in order and returns the coordinates used
func (s *Service) PlaceFleetRandomly(board *model.Board, roster []model.ShipSpec) [][]model.Coordinate {
	placed := make([][]model.Coordinate, 0, len(roster))
	for _, spec := range roster {
		placed = append(placed, s.PlaceShipRandomly(board, spec))
	}
	return placed
}

// Interface for dependency injection
type ServiceInterface interface {
	PlaceShip(board *model.Board, spec model.ShipSpec, coords []model.Coordinate) error
	PlaceShipAt(board *model.Board, spec model.ShipSpec, anchor model.Coordinate, orientation model.Orientation) ([]model.Coordinate, error)
	PlaceShipRandomly(board *model.Board, spec model.ShipSpec) []model.Coordinate
	PlaceFleetRandomly(board *model.Board, roster []model.ShipSpec) [][]model.Coordinate
}

var _ ServiceInterface = (*Service)(nil)
