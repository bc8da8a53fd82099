package websocket

import (
	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
)

type ClientMessage struct {
	Type       string              `json:"type"`
	RequestID  string              `json:"requestId,omitempty"`
	Field      string              `json:"field,omitempty"`
	Grid       [][]domain.PlayerID `json:"grid,omitempty"`
	BotID      domain.PlayerID     `json:"botId"`
	Difficulty string              `json:"difficulty,omitempty"`
}

type ServerMessage struct {
	Type      string                  `json:"type"`
	RequestID string                  `json:"requestId,omitempty"`
	Message   string                  `json:"message,omitempty"`
	Column    *int                    `json:"column,omitempty"`
	Score     *int                    `json:"score,omitempty"`
	Depth     *int                    `json:"depth,omitempty"`
	Nodes     int                     `json:"nodes,omitempty"`
	Immediate bool                    `json:"immediateWin,omitempty"`
	Cached    bool                    `json:"cached,omitempty"`
	Field     string                  `json:"field,omitempty"`
	Scores    []domain.CandidateScore `json:"candidates,omitempty"`
}
