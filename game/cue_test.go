package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCue_String(t *testing.T) {
	assert.Equal(t, "wall_bounce", CueWallBounce.String())
	assert.Equal(t, "paddle_hit", CuePaddleHit.String())
	assert.Equal(t, "score", CueScore.String())
	assert.Equal(t, "cue(0)", Cue(0).String())
}

func TestCue_JSON(t *testing.T) {
	data, err := json.Marshal([]Cue{CueWallBounce, CueScore})
	require.NoError(t, err)
	assert.JSONEq(t, `["wall_bounce","score"]`, string(data))

	var cue Cue
	assert.Error(t, json.Unmarshal([]byte(`"boing"`), &cue))
	_, err = json.Marshal(Cue(99))
	assert.Error(t, err)
}

func TestSideAndPhase_Text(t *testing.T) {
	assert.Equal(t, "Player", SidePlayer.String())
	assert.Equal(t, "AI", SideAI.String())
	assert.Equal(t, "", SideNone.String())
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "gameOver", PhaseGameOver.String())

	var side Side
	assert.Error(t, side.UnmarshalText([]byte("Referee")))
	var phase Phase
	assert.Error(t, phase.UnmarshalText([]byte("paused")))
}
