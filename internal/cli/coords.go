package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/battleship-go2/internal/model"
)

var errInvalidCoordinate = errors.New("coordinates look like B7: a row letter A-J then a column 1-10")

// ParseCoordinate reads a coordinate such as "A1" or "j10".
// Well-formed coordinates past the edge of the board report
// model.ErrCoordinateOutOfBounds.
func ParseCoordinate(s string) (model.Coordinate, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 || s[0] < 'A' || s[0] > 'Z' {
		return model.Coordinate{}, fmt.Errorf("%q: %w", s, errInvalidCoordinate)
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("%q: %w", s, errInvalidCoordinate)
	}

	c := model.Coordinate{Row: int(s[0] - 'A'), Col: col - 1}
	if !c.InBounds() {
		return c, fmt.Errorf("%s: %w", s, model.ErrCoordinateOutOfBounds)
	}
	return c, nil
}

// ParseOrientation accepts h, v, horizontal or vertical
func ParseOrientation(s string) (model.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return model.OrientationHorizontal, nil
	case "v", "vertical":
		return model.OrientationVertical, nil
	default:
		return "", fmt.Errorf("%q: %w", s, model.ErrInvalidOrientation)
	}
}

