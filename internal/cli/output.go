package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/match"
	"github.com/mcoot/battleship-go2/internal/simulation"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == FormatJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

// Prompt writes an input prompt; JSON output stays line-delimited so it has none
func (o *Output) Prompt(prompt string) {
	if o.format != FormatJSON {
		fmt.Fprint(o.out, prompt)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	if o.format != FormatJSON {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MatchView:
		o.printMatch(v)
	case TurnView:
		o.printTurn(v)
	case simulation.Report:
		o.printReport(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ShipView describes a ship waiting to be placed
type ShipView struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// MatchView is the rendered form of a match snapshot
type MatchView struct {
	ID            string     `json:"id"`
	State         string     `json:"state"`
	Winner        string     `json:"winner,omitempty"`
	Turn          int        `json:"turn"`
	Player        string     `json:"player"`
	NextShip      *ShipView  `json:"next_ship,omitempty"`
	HumanBoard    [][]string `json:"human_board"`
	OpponentBoard [][]string `json:"opponent_board"`
	HumanSunk     int        `json:"human_sunk"`
	OpponentSunk  int        `json:"opponent_sunk"`
	FleetSize     int        `json:"fleet_size"`
}

// ShotView is a single resolved shot
type ShotView struct {
	Target string `json:"target"`
	Result string `json:"result"`
	Ship   string `json:"ship,omitempty"`
}

// TurnView is the rendered form of a turn report
type TurnView struct {
	Shot   ShotView  `json:"shot"`
	Reply  *ShotView `json:"reply,omitempty"`
	State  string    `json:"state"`
	Winner string    `json:"winner,omitempty"`
	Turn   int       `json:"turn"`
}

// NewMatchView converts a snapshot for output
func NewMatchView(snap model.MatchSnapshot) MatchView {
	view := MatchView{
		ID:            string(snap.ID),
		State:         string(snap.State),
		Winner:        string(snap.Winner),
		Turn:          snap.Turn,
		Player:        snap.HumanName,
		HumanBoard:    boardStrings(snap.HumanBoard),
		OpponentBoard: boardStrings(snap.OpponentBoard),
		HumanSunk:     snap.HumanSunk,
		OpponentSunk:  snap.OpponentSunk,
		FleetSize:     snap.FleetSize,
	}
	if snap.NextShip != nil {
		view.NextShip = &ShipView{Name: snap.NextShip.Name, Size: snap.NextShip.Size}
	}
	return view
}

// NewTurnView converts a turn report for output
func NewTurnView(report *match.TurnReport) TurnView {
	view := TurnView{
		Shot:   newShotView(report.Target, report.Result),
		State:  string(report.State),
		Winner: string(report.Winner),
		Turn:   report.Turn,
	}
	if report.Reply != nil {
		reply := newShotView(report.Reply.Target, report.Reply.Result)
		view.Reply = &reply
	}
	return view
}

func newShotView(target model.Coordinate, result model.AttackResult) ShotView {
	return ShotView{
		Target: target.String(),
		Result: string(result.Outcome),
		Ship:   result.ShipName,
	}
}

func boardStrings(cells [][]model.CellState) [][]string {
	rows := make([][]string, len(cells))
	for i, row := range cells {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = string(cell)
		}
	}
	return rows
}

var cellSymbols = map[string]string{
	string(model.CellEmpty):    ".",
	string(model.CellOccupied): "O",
	string(model.CellHit):      "X",
	string(model.CellMiss):     "~",
	string(model.CellSunk):     "#",
}

func (o *Output) printMatch(m MatchView) {
	fmt.Fprintf(o.out, "Match: %s\n", m.ID)
	fmt.Fprintf(o.out, "State: %s\n", m.State)
	fmt.Fprintf(o.out, "Turn: %d\n", m.Turn)

	fmt.Fprintf(o.out, "\n%s's fleet (%d/%d sunk):\n", m.Player, m.HumanSunk, m.FleetSize)
	o.printBoard(m.HumanBoard)
	fmt.Fprintf(o.out, "\nOpponent (%d/%d sunk):\n", m.OpponentSunk, m.FleetSize)
	o.printBoard(m.OpponentBoard)

	if m.NextShip != nil {
		fmt.Fprintf(o.out, "\nNext ship: %s (%d cells)\n", m.NextShip.Name, m.NextShip.Size)
	}
	if m.Winner != "" {
		fmt.Fprintf(o.out, "\nWinner: %s\n", m.Winner)
	}
}

func (o *Output) printBoard(cells [][]string) {
	if len(cells) == 0 {
		return
	}

	// Column headers
	fmt.Fprint(o.out, "   ")
	for col := range cells[0] {
		fmt.Fprintf(o.out, "%3d", col+1)
	}
	fmt.Fprintln(o.out)

	for row, line := range cells {
		var b strings.Builder
		for _, cell := range line {
			symbol, ok := cellSymbols[cell]
			if !ok {
				symbol = "?"
			}
			b.WriteString("  ")
			b.WriteString(symbol)
		}
		fmt.Fprintf(o.out, " %c %s\n", 'A'+row, b.String())
	}
}

func (o *Output) printTurn(t TurnView) {
	fmt.Fprintf(o.out, "You fired at %s: %s\n", t.Shot.Target, describeShot(t.Shot))
	if t.Reply != nil {
		fmt.Fprintf(o.out, "Opponent fired at %s: %s\n", t.Reply.Target, describeShot(*t.Reply))
	}
	if t.Winner != "" {
		fmt.Fprintf(o.out, "Game over after %d turns. Winner: %s\n", t.Turn, t.Winner)
	}
}

func describeShot(s ShotView) string {
	switch model.AttackOutcome(s.Result) {
	case model.OutcomeSunk:
		return "sunk " + s.Ship + "!"
	case model.OutcomeAlreadyAttacked:
		return "already attacked, fire again"
	default:
		return s.Result
	}
}

func (o *Output) printReport(r simulation.Report) {
	fmt.Fprintf(o.out, "Games: %d (shooter: %s)\n", r.Games, model.BotStrategyDisplayName(r.Shooter))
	fmt.Fprintf(o.out, "Shooter wins: %d\n", r.HumanWins)
	fmt.Fprintf(o.out, "Opponent wins: %d\n", r.AutomatedWins)
	fmt.Fprintf(o.out, "Turns: min %d, max %d, mean %.1f\n", r.MinTurns, r.MaxTurns, r.MeanTurns)
}
