package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/match"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// playRowMajor fires at every cell in order until the match ends
func playRowMajor(ctx context.Context, controller *match.Controller, id model.MatchID) ([]*match.TurnReport, error) {
	var reports []*match.TurnReport
	for row := range model.BoardSize {
		for col := range model.BoardSize {
			report, err := controller.Attack(ctx, id, model.Coordinate{Row: row, Col: col})
			if err != nil {
				return reports, err
			}
			reports = append(reports, report)
			if report.State == model.MatchStateGameOver {
				return reports, nil
			}
		}
	}
	return reports, nil
}

// Test: Complete match flow from creation to game over
func (s *IntegrationSuite) TestCompleteMatchFlow() {
	s.app.MockIDs.QueueMatchID("match01")

	// Step 1: Create a match
	m, err := s.app.MatchController.CreateMatch(s.ctx, "Ada")
	s.Require().NoError(err)
	s.Equal(model.MatchID("match01"), m.ID)

	// Step 2: Place the first three ships by hand
	s.Require().NoError(s.app.MatchController.PlaceNextShip(s.ctx, m.ID, model.Coordinate{Row: 0, Col: 0}, model.OrientationHorizontal))
	s.Require().NoError(s.app.MatchController.PlaceNextShip(s.ctx, m.ID, model.Coordinate{Row: 2, Col: 9}, model.OrientationVertical))
	s.Require().NoError(s.app.MatchController.PlaceNextShip(s.ctx, m.ID, model.Coordinate{Row: 9, Col: 0}, model.OrientationHorizontal))

	// Step 3: Rejected placement does not move the roster
	err = s.app.MatchController.PlaceNextShip(s.ctx, m.ID, model.Coordinate{Row: 9, Col: 1}, model.OrientationHorizontal)
	s.ErrorIs(err, model.ErrPlacementOverlap)

	snap, err := s.app.MatchController.Snapshot(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(3, snap.RosterCursor)
	s.Equal("Destroyer 2", snap.NextShip.Name)

	// Step 4: Auto-place the rest, which starts the battle
	s.Require().NoError(s.app.MatchController.PlaceRemainingShipsRandomly(s.ctx, m.ID))
	state, _, err := s.app.MatchController.State(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(model.MatchStateBattle, state)

	// Step 5: Fire until someone wins
	reports, err := playRowMajor(s.ctx, s.app.MatchController, m.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(reports)

	last := reports[len(reports)-1]
	s.Equal(model.MatchStateGameOver, last.State)
	s.NotEmpty(last.Winner)
	s.Equal(len(reports), last.Turn)

	// Step 6: Final snapshot agrees with the report
	snap, err = s.app.MatchController.Snapshot(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(last.Winner, snap.Winner)
	if last.Winner == model.SideHuman {
		s.Equal(snap.FleetSize, snap.OpponentSunk)
	} else {
		s.Equal(snap.FleetSize, snap.HumanSunk)
	}

	// Step 7: Nothing more is accepted
	_, err = s.app.MatchController.Attack(s.ctx, m.ID, model.Coordinate{Row: 9, Col: 9})
	s.ErrorIs(err, model.ErrMatchOver)
}

// Test: The same seed replays the same match
func (s *IntegrationSuite) TestSeededMatchesRepeat() {
	play := func() []model.Coordinate {
		app := NewTestApp()
		m, err := app.MatchController.CreateMatch(s.ctx, "Ada")
		s.Require().NoError(err)
		s.Require().NoError(app.MatchController.PlaceRemainingShipsRandomly(s.ctx, m.ID))

		reports, err := playRowMajor(s.ctx, app.MatchController, m.ID)
		s.Require().NoError(err)

		var replies []model.Coordinate
		for _, r := range reports {
			if r.Reply != nil {
				replies = append(replies, r.Reply.Target)
			}
		}
		return replies
	}

	first := play()
	s.NotEmpty(first)
	s.Equal(first, play())
}

// Test: Matches in one registry do not interfere
func (s *IntegrationSuite) TestMatchesAreIndependent() {
	a, err := s.app.MatchController.CreateMatch(s.ctx, "Ada")
	s.Require().NoError(err)
	b, err := s.app.MatchController.CreateMatch(s.ctx, "Grace")
	s.Require().NoError(err)
	s.NotEqual(a.ID, b.ID)

	s.Require().NoError(s.app.MatchController.PlaceRemainingShipsRandomly(s.ctx, a.ID))
	s.Require().NoError(s.app.MatchController.AbandonMatch(s.ctx, b.ID))

	stateA, _, _ := s.app.MatchController.State(s.ctx, a.ID)
	stateB, _, _ := s.app.MatchController.State(s.ctx, b.ID)
	s.Equal(model.MatchStateBattle, stateA)
	s.Equal(model.MatchStateAbandoned, stateB)

	matches, err := s.app.Storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Len(matches, 2)
}

func (s *IntegrationSuite) TestNewWiresDefaults() {
	seed := uint64(42)
	app := New(Config{Seed: &seed})

	m, err := app.MatchController.CreateMatch(s.ctx, "")
	s.Require().NoError(err)
	s.Len(string(m.ID), 8)
	s.IsType(match.NopSink{}, app.Events)
}
