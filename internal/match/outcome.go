package match

import "fmt"

// Verdict is the outcome of a match.
type Verdict int

const (
	VerdictPending Verdict = iota
	VerdictPlayer
	VerdictAgent
	VerdictDraw
)

func (v Verdict) String() string {
	switch v {
	case VerdictPending:
		return "pending"
	case VerdictPlayer:
		return "player_wins"
	case VerdictAgent:
		return "agent_wins"
	case VerdictDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Banner is the text shown on the result screen.
func (v Verdict) Banner() string {
	switch v {
	case VerdictPlayer:
		return "Player Wins!"
	case VerdictAgent:
		return "Computer Wins!"
	case VerdictDraw:
		return "Draw!"
	default:
		return ""
	}
}

// Result holds both sides' scores and the verdict they produce.
type Result struct {
	Verdict        Verdict
	Cells          int
	PlayerExplored int
	AgentExplored  int
	PlayerScore    int
	AgentScore     int
	Description    string
}

// DetermineVerdict scores both sides as cells minus cells explored; the
// higher score wins.
func DetermineVerdict(cells, playerExplored, agentExplored int) Result {
	r := Result{
		Cells:          cells,
		PlayerExplored: playerExplored,
		AgentExplored:  agentExplored,
		PlayerScore:    cells - playerExplored,
		AgentScore:     cells - agentExplored,
	}
	switch {
	case r.PlayerScore > r.AgentScore:
		r.Verdict = VerdictPlayer
		r.Description = fmt.Sprintf("player_fewer_cells_by_%d", r.PlayerScore-r.AgentScore)
	case r.AgentScore > r.PlayerScore:
		r.Verdict = VerdictAgent
		r.Description = fmt.Sprintf("agent_fewer_cells_by_%d", r.AgentScore-r.PlayerScore)
	default:
		r.Verdict = VerdictDraw
		r.Description = fmt.Sprintf("both_explored_%d", playerExplored)
	}
	return r
}
