package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineVerdict(t *testing.T) {
	cases := []struct {
		name           string
		player, agent  int
		want           Verdict
		banner         string
		descSubstr     string
		playerScore    int
		agentScoreWant int
	}{
		{"player explores less", 40, 90, VerdictPlayer, "Player Wins!", "player_fewer_cells_by_50", 585, 535},
		{"agent explores less", 120, 90, VerdictAgent, "Computer Wins!", "agent_fewer_cells_by_30", 505, 535},
		{"tie", 90, 90, VerdictDraw, "Draw!", "both_explored_90", 535, 535},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := DetermineVerdict(625, tc.player, tc.agent)
			assert.Equal(t, tc.want, r.Verdict)
			assert.Equal(t, tc.banner, r.Verdict.Banner())
			assert.Contains(t, r.Description, tc.descSubstr)
			assert.Equal(t, tc.playerScore, r.PlayerScore)
			assert.Equal(t, tc.agentScoreWant, r.AgentScore)
		})
	}
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "pending", VerdictPending.String())
	assert.Equal(t, "player_wins", VerdictPlayer.String())
	assert.Equal(t, "agent_wins", VerdictAgent.String())
	assert.Equal(t, "draw", VerdictDraw.String())
	assert.Equal(t, "unknown", Verdict(42).String())
	assert.Empty(t, VerdictPending.Banner())
}
