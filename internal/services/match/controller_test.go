package match

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/mcoot/battleship-go2/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/board"
	"github.com/mcoot/battleship-go2/internal/services/bot"
	matchmocks "github.com/mcoot/battleship-go2/internal/services/match/mocks"
	"github.com/mcoot/battleship-go2/internal/storage/memory"
	"github.com/mcoot/battleship-go2/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	ids        *mocks.MockIDs
	botRandom  *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDs()
	s.botRandom = mocks.NewMockRandom()
	s.controller = s.newController(NopSink{})
	s.ctx = context.Background()
}

func (s *ControllerSuite) newController(events EventSink) *Controller {
	logger := testutil.NopLogger()
	// Fleet placement needs a real source; an empty mock queue always returns 0
	boardService := board.New(random.NewSeeded(7), logger)
	botService := bot.NewService(bot.NewHuntTargetStrategy(s.botRandom), logger)
	return NewController(s.storage, boardService, botService, s.clock, s.ids, events, logger)
}

func (s *ControllerSuite) createMatch() *model.Match {
	match, err := s.controller.CreateMatch(s.ctx, "Ada")
	s.Require().NoError(err)
	return match
}

// placeFleetInRows puts roster ship i horizontally at the start of row i
func (s *ControllerSuite) placeFleetInRows(id model.MatchID) {
	for row := range len(model.DefaultRoster()) {
		err := s.controller.PlaceNextShip(s.ctx, id, model.Coordinate{Row: row, Col: 0}, model.OrientationHorizontal)
		s.Require().NoError(err)
	}
}

func (s *ControllerSuite) battleMatch() *model.Match {
	match := s.createMatch()
	s.placeFleetInRows(match.ID)
	s.Require().Equal(model.MatchStateBattle, match.State)
	return match
}

// CreateMatch tests

func (s *ControllerSuite) TestCreateMatchSucceeds() {
	s.ids.QueueMatchID("abc12345")

	match, err := s.controller.CreateMatch(s.ctx, "Ada")
	s.Require().NoError(err)

	s.Equal(model.MatchID("abc12345"), match.ID)
	s.Equal(model.MatchStateSetup, match.State)
	s.Equal("Ada", match.Human.Name)
	s.Equal(model.SideHuman, match.Human.Side)
	s.Equal(AutomatedName, match.Automated.Name)
	s.Equal(model.DefaultRoster(), match.Human.Roster)
	s.Equal(0, match.Human.RosterCursor)
	s.Empty(match.Automated.Board.Ships)
	s.Equal(s.clock.Now(), match.CreatedAt)

	exists, _ := s.storage.MatchExists(s.ctx, "abc12345")
	s.True(exists)
}

func (s *ControllerSuite) TestCreateMatchDefaultName() {
	match, err := s.controller.CreateMatch(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(DefaultHumanName, match.Human.Name)
}

func (s *ControllerSuite) TestCreateMatchSkipsTakenIDs() {
	s.ids.QueueMatchID("taken", "fresh")
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "taken"})

	match, err := s.controller.CreateMatch(s.ctx, "Ada")
	s.Require().NoError(err)
	s.Equal(model.MatchID("fresh"), match.ID)
}

func (s *ControllerSuite) TestGetMatchNotFound() {
	_, err := s.controller.GetMatch(s.ctx, "missing")
	s.ErrorIs(err, model.ErrMatchNotFound)

	_, _, err = s.controller.State(s.ctx, "missing")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// PlaceNextShip tests

func (s *ControllerSuite) TestPlaceNextShipAdvancesRoster() {
	match := s.createMatch()

	err := s.controller.PlaceNextShip(s.ctx, match.ID, model.Coordinate{Row: 0, Col: 0}, model.OrientationVertical)
	s.Require().NoError(err)

	s.Equal(1, match.Human.RosterCursor)
	s.Require().Len(match.Human.Board.Ships, 1)
	s.Equal("Carrier", match.Human.Board.Ships[0].Name)
	s.Equal(model.Coordinate{Row: 4, Col: 0}, match.Human.Board.Ships[0].Positions[4])

	snap, err := s.controller.Snapshot(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Require().NotNil(snap.NextShip)
	s.Equal("Battleship", snap.NextShip.Name)
	s.Equal(model.MatchStateSetup, snap.State)
}

func (s *ControllerSuite) TestPlaceNextShipOverlapLeavesStateUnchanged() {
	match := s.createMatch()
	_ = s.controller.PlaceNextShip(s.ctx, match.ID, model.Coordinate{Row: 4, Col: 0}, model.OrientationHorizontal)

	err := s.controller.PlaceNextShip(s.ctx, match.ID, model.Coordinate{Row: 2, Col: 2}, model.OrientationVertical)
	s.ErrorIs(err, model.ErrPlacementOverlap)
	s.True(model.IsPlacementError(err))

	s.Equal(1, match.Human.RosterCursor)
	s.Equal(5, match.Human.Board.CountState(model.CellOccupied))
}

func (s *ControllerSuite) TestPlaceNextShipOutOfBounds() {
	match := s.createMatch()

	err := s.controller.PlaceNextShip(s.ctx, match.ID, model.Coordinate{Row: 0, Col: 6}, model.OrientationHorizontal)
	s.ErrorIs(err, model.ErrPlacementOutOfBounds)
	s.Equal(0, match.Human.RosterCursor)
	s.Empty(match.Human.Board.Ships)
}

func (s *ControllerSuite) TestPlaceNextShipInvalidOrientation() {
	match := s.createMatch()

	err := s.controller.PlaceNextShip(s.ctx, match.ID, model.Coordinate{}, model.Orientation("diagonal"))
	s.ErrorIs(err, model.ErrInvalidOrientation)
	s.Equal(0, match.Human.RosterCursor)
}

func (s *ControllerSuite) TestPlacingLastShipStartsBattle() {
	s.clock.Advance(time.Minute)
	match := s.battleMatch()

	s.True(match.Human.FleetPlaced())
	s.True(match.Automated.FleetPlaced())
	s.Len(match.Automated.Board.Ships, 6)
	s.Equal(19, match.Automated.Board.CountState(model.CellOccupied))
	s.Equal(19, match.Human.Board.CountState(model.CellOccupied))

	state, winner, err := s.controller.State(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Equal(model.MatchStateBattle, state)
	s.Empty(winner)
}

func (s *ControllerSuite) TestPlaceNextShipRejectedDuringBattle() {
	match := s.battleMatch()

	err := s.controller.PlaceNextShip(s.ctx, match.ID, model.Coordinate{Row: 9, Col: 0}, model.OrientationHorizontal)
	s.ErrorIs(err, model.ErrNotInSetup)

	err = s.controller.PlaceRemainingShipsRandomly(s.ctx, match.ID)
	s.ErrorIs(err, model.ErrNotInSetup)
}

// PlaceRemainingShipsRandomly tests

func (s *ControllerSuite) TestPlaceRemainingShipsRandomly() {
	match := s.createMatch()
	_ = s.controller.PlaceNextShip(s.ctx, match.ID, model.Coordinate{Row: 0, Col: 0}, model.OrientationHorizontal)

	err := s.controller.PlaceRemainingShipsRandomly(s.ctx, match.ID)
	s.Require().NoError(err)

	s.Equal(model.MatchStateBattle, match.State)
	s.Equal(len(match.Human.Roster), match.Human.RosterCursor)
	s.Equal(19, match.Human.Board.CountState(model.CellOccupied))
	s.Equal(model.Coordinate{Row: 0, Col: 0}, match.Human.Board.Ships[0].Positions[0])
}

// Attack tests

func (s *ControllerSuite) TestAttackOutOfBoundsCheckedFirst() {
	match := s.createMatch()

	_, err := s.controller.Attack(s.ctx, match.ID, model.Coordinate{Row: 10, Col: 0})
	s.ErrorIs(err, model.ErrCoordinateOutOfBounds)

	_, err = s.controller.Attack(s.ctx, "missing", model.Coordinate{Row: -1, Col: 0})
	s.ErrorIs(err, model.ErrCoordinateOutOfBounds)
}

func (s *ControllerSuite) TestAttackDuringSetup() {
	match := s.createMatch()

	_, err := s.controller.Attack(s.ctx, match.ID, model.Coordinate{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrNotInBattle)
}

func (s *ControllerSuite) TestAttackResolvesBothShots() {
	match := s.battleMatch()
	target := firstCellInState(match.Automated.Board, model.CellEmpty)

	report, err := s.controller.Attack(s.ctx, match.ID, target)
	s.Require().NoError(err)

	s.Equal(target, report.Target)
	s.Equal(model.OutcomeMiss, report.Result.Outcome)
	s.Require().NotNil(report.Reply)
	// Empty random queue means the bot takes the first unresolved cell
	s.Equal(model.Coordinate{Row: 0, Col: 0}, report.Reply.Target)
	s.Equal(model.OutcomeHit, report.Reply.Result.Outcome)
	s.Equal(model.MatchStateBattle, report.State)
	s.Equal(1, report.Turn)
	s.Equal(1, match.Turn)
	s.True(match.Targeting.InTargetMode())
}

func (s *ControllerSuite) TestAttackAlreadyAttackedSkipsReply() {
	match := s.battleMatch()
	target := firstCellInState(match.Automated.Board, model.CellEmpty)
	_, _ = s.controller.Attack(s.ctx, match.ID, target)
	humanResolved := 100 - len(match.Human.Board.Unresolved())

	report, err := s.controller.Attack(s.ctx, match.ID, target)
	s.Require().NoError(err)

	s.Equal(model.OutcomeAlreadyAttacked, report.Result.Outcome)
	s.Nil(report.Reply)
	s.Equal(1, report.Turn)
	s.Equal(humanResolved, 100-len(match.Human.Board.Unresolved()))
}

func (s *ControllerSuite) TestHumanWins() {
	match := s.battleMatch()

	var targets []model.Coordinate
	for _, ship := range match.Automated.Board.Ships {
		targets = append(targets, ship.Positions...)
	}

	var report *TurnReport
	for i, target := range targets {
		var err error
		report, err = s.controller.Attack(s.ctx, match.ID, target)
		s.Require().NoError(err)
		if i < len(targets)-1 {
			s.Require().Equal(model.MatchStateBattle, report.State)
			s.Require().NotNil(report.Reply)
		}
	}

	s.Equal(model.MatchStateGameOver, report.State)
	s.Equal(model.SideHuman, report.Winner)
	s.Nil(report.Reply)
	s.Equal(19, report.Turn)
	s.True(match.Automated.Board.AllShipsSunk())
	s.False(match.Human.Board.AllShipsSunk())

	_, err := s.controller.Attack(s.ctx, match.ID, model.Coordinate{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrMatchOver)
	s.ErrorIs(s.controller.AbandonMatch(s.ctx, match.ID), model.ErrMatchOver)

	snap, _ := s.controller.Snapshot(s.ctx, match.ID)
	s.Equal(6, snap.OpponentSunk)
}

func (s *ControllerSuite) TestAutomatedWins() {
	match := s.battleMatch()

	var report *TurnReport
	for _, target := range match.Automated.Board.Unresolved() {
		if match.Automated.Board.CellAt(target).State != model.CellEmpty {
			continue
		}
		var err error
		report, err = s.controller.Attack(s.ctx, match.ID, target)
		s.Require().NoError(err)
		if report.State == model.MatchStateGameOver {
			break
		}
	}

	s.Require().NotNil(report)
	s.Equal(model.MatchStateGameOver, report.State)
	s.Equal(model.SideAutomated, report.Winner)
	s.Require().NotNil(report.Reply)
	s.Equal(model.OutcomeSunk, report.Reply.Result.Outcome)
	s.True(match.Human.Board.AllShipsSunk())
	s.Equal(0, match.Automated.Board.SunkCount())
	s.LessOrEqual(report.Turn, 60)

	state, winner, err := s.controller.State(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Equal(model.MatchStateGameOver, state)
	s.Equal(model.SideAutomated, winner)
}

// Snapshot tests

func (s *ControllerSuite) TestSnapshotMasksOpponentUntilOver() {
	match := s.battleMatch()
	shipCell := match.Automated.Board.Ships[0].Positions[0]

	snap, err := s.controller.Snapshot(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Equal(model.CellEmpty, snap.OpponentBoard[shipCell.Row][shipCell.Col])
	s.Equal(model.CellOccupied, snap.HumanBoard[0][0])
	s.Nil(snap.NextShip)
	s.Equal(6, snap.FleetSize)

	s.Require().NoError(s.controller.AbandonMatch(s.ctx, match.ID))

	snap, _ = s.controller.Snapshot(s.ctx, match.ID)
	s.Equal(model.CellOccupied, snap.OpponentBoard[shipCell.Row][shipCell.Col])
}

// AbandonMatch tests

func (s *ControllerSuite) TestAbandonMatch() {
	match := s.createMatch()
	s.clock.Advance(time.Hour)

	err := s.controller.AbandonMatch(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Equal(model.MatchStateAbandoned, match.State)
	s.Equal(s.clock.Now(), match.UpdatedAt)

	s.ErrorIs(s.controller.AbandonMatch(s.ctx, match.ID), model.ErrMatchAbandoned)
	s.ErrorIs(s.controller.PlaceRemainingShipsRandomly(s.ctx, match.ID), model.ErrMatchAbandoned)
	_, err = s.controller.Attack(s.ctx, match.ID, model.Coordinate{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrMatchAbandoned)
}

// Event tests

func (s *ControllerSuite) TestEventsPublishedInOrder() {
	ctrl := gomock.NewController(s.T())
	sink := matchmocks.NewMockEventSink(ctrl)
	s.controller = s.newController(sink)

	match := s.createMatch()

	gomock.InOrder(
		sink.EXPECT().Publish(gomock.Any(), eventOf(model.EventShipPlaced, model.SideHuman)).Times(6),
		sink.EXPECT().Publish(gomock.Any(), eventOf(model.EventBattleStarted, "")),
	)
	s.Require().NoError(s.controller.PlaceRemainingShipsRandomly(s.ctx, match.ID))

	target := firstCellInState(match.Automated.Board, model.CellEmpty)
	gomock.InOrder(
		sink.EXPECT().Publish(gomock.Any(), eventOf(model.EventAttackResolved, model.SideHuman)),
		sink.EXPECT().Publish(gomock.Any(), eventOf(model.EventAttackResolved, model.SideAutomated)),
	)
	_, err := s.controller.Attack(s.ctx, match.ID, target)
	s.Require().NoError(err)

	// Repeated shots publish nothing
	_, err = s.controller.Attack(s.ctx, match.ID, target)
	s.Require().NoError(err)

	sink.EXPECT().Publish(gomock.Any(), eventOf(model.EventMatchAbandoned, ""))
	s.Require().NoError(s.controller.AbandonMatch(s.ctx, match.ID))
}

func firstCellInState(b *model.Board, state model.CellState) model.Coordinate {
	for row := range model.BoardSize {
		for col := range model.BoardSize {
			c := model.Coordinate{Row: row, Col: col}
			if b.CellAt(c).State == state {
				return c
			}
		}
	}
	panic(fmt.Sprintf("no cell in state %s", state))
}

type eventMatcher struct {
	eventType model.EventType
	side      model.Side
}

func eventOf(eventType model.EventType, side model.Side) gomock.Matcher {
	return eventMatcher{eventType: eventType, side: side}
}

func (m eventMatcher) Matches(x any) bool {
	event, ok := x.(model.Event)
	return ok && event.Type == m.eventType && event.Side == m.side
}

func (m eventMatcher) String() string {
	return fmt.Sprintf("%s event from %q", m.eventType, m.side)
}
