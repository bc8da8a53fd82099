package domain

import "time"

// MoveDecision is the outcome of one engine run on a board.
type MoveDecision struct {
	Column       int  `json:"column"`
	Score        int  `json:"score"`
	ImmediateWin bool `json:"immediateWin"`
	Nodes        int  `json:"nodes"`
	Depth        int  `json:"depth"`
	// root scores in preference order; columns skipped as full are absent
	Candidates []CandidateScore `json:"candidates"`
}

type CandidateScore struct {
	Column int `json:"column"`
	Score  int `json:"score"`
}

// DecisionRecord is a decision as kept in the decision log.
type DecisionRecord struct {
	ID        int64         `json:"id"`
	Field     string        `json:"field"`
	BotID     PlayerID      `json:"botId"`
	Source    string        `json:"source"`
	Decision  MoveDecision  `json:"decision"`
	Duration  time.Duration `json:"durationNs"`
	CreatedAt time.Time     `json:"createdAt"`
}
