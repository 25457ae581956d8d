package server

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/lguibr/pongvolley/game"
	"github.com/lguibr/pongvolley/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

type spectatorLog struct {
	ticks     []uint64
	matchOver *game.MatchOverMessage
	err       error
}

// followUntilMatchOver reads the feed until a matchOver message arrives.
func followUntilMatchOver(conn *websocket.Conn, result chan<- spectatorLog) {
	log := spectatorLog{}
	defer func() { result <- log }()

	if log.err = conn.SetReadDeadline(time.Now().Add(5 * time.Second)); log.err != nil {
		return
	}
	for {
		var data []byte
		if log.err = websocket.Message.Receive(conn, &data); log.err != nil {
			return
		}
		var header game.MessageHeader
		if log.err = json.Unmarshal(data, &header); log.err != nil {
			return
		}
		switch header.MessageType {
		case "matchSnapshot":
			var snapshot game.Snapshot
			if log.err = json.Unmarshal(data, &snapshot); log.err != nil {
				return
			}
			log.ticks = append(log.ticks, snapshot.Tick)
		case "matchOver":
			var over game.MatchOverMessage
			if log.err = json.Unmarshal(data, &over); log.err != nil {
				return
			}
			log.matchOver = &over
			return
		}
	}
}

func TestE2E_SpectatorsFollowAWholeMatch(t *testing.T) {
	server, httpServer := setupTestServer(t)

	const spectators = 2
	results := make(chan spectatorLog, spectators)
	for i := 0; i < spectators; i++ {
		go followUntilMatchOver(dialSubscribe(t, httpServer), results)
	}
	assert.Eventually(t, func() bool { return clientCount(t, server) == spectators }, 2*time.Second, 10*time.Millisecond)

	// A slow vertical serve never reaches a player paddle parked at the top.
	cfg := utils.DefaultConfig()
	cfg.BallSpeedsY = []int{1}
	match := game.NewMatch(cfg, rand.New(rand.NewSource(3)))

	for i := 0; i < 10000 && !match.GameOver(); i++ {
		result := match.Tick(game.Input{Up: true})
		if result.GameOver {
			server.Publish(match.Snapshot())
			server.PublishMatchOver(match.Snapshot())
		} else if match.Ticks()%uint64(cfg.SpectatorPeriod) == 0 {
			server.Publish(match.Snapshot())
		}
	}
	require.True(t, match.GameOver())

	for i := 0; i < spectators; i++ {
		select {
		case log := <-results:
			require.NoError(t, log.err)
			require.NotNil(t, log.matchOver)
			assert.Equal(t, game.SideAI, log.matchOver.Winner)
			assert.Equal(t, 3, log.matchOver.AIScore)
			assert.Equal(t, 5, log.matchOver.BestOf)

			require.NotEmpty(t, log.ticks)
			for j := 1; j < len(log.ticks); j++ {
				assert.Greater(t, log.ticks[j], log.ticks[j-1], "snapshots must arrive in tick order")
			}
			assert.Equal(t, match.Ticks(), log.ticks[len(log.ticks)-1])
		case <-time.After(6 * time.Second):
			t.Fatal("spectator did not see the end of the match")
		}
	}

	var latest game.Snapshot
	require.NoError(t, json.Unmarshal(server.Latest(), &latest))
	assert.True(t, latest.GameOver)
	assert.Equal(t, match.Ticks(), latest.Tick)
}
