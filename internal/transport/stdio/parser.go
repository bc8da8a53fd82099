package stdio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/move"
)

type MoveDecider interface {
	DecideMove(ctx context.Context, req move.Request) (*move.Result, error)
}

// Settings holds what the judge announced through "settings" lines.
type Settings struct {
	BotID       domain.PlayerID
	BotName     string
	PlayerNames []string
	Columns     int
	Rows        int
	Timebank    int
	TimePerMove int
}

// Parser runs the judge's line protocol: it reads settings and updates,
// and answers every "action move" with "place_disc <column>".
type Parser struct {
	in         io.Reader
	out        io.Writer
	decider    MoveDecider
	difficulty string

	settings Settings
	round    int
	field    string
}

func NewParser(in io.Reader, out io.Writer, decider MoveDecider, settings Settings, difficulty string) *Parser {
	return &Parser{
		in:         in,
		out:        out,
		decider:    decider,
		difficulty: difficulty,
		settings:   settings,
	}
}

func (p *Parser) Settings() Settings {
	return p.settings
}

func (p *Parser) Round() int {
	return p.round
}

// Run processes commands until EOF or until ctx is cancelled between lines.
func (p *Parser) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(p.in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := p.handle(ctx, strings.Fields(line)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// handle returns an error only when writing the answer fails.
func (p *Parser) handle(ctx context.Context, parts []string) error {
	switch parts[0] {
	case "settings":
		if len(parts) < 3 {
			log.Printf("[PARSER] Incomplete settings command: %v", parts)
			return nil
		}
		p.applySetting(parts[1], parts[2])

	case "update":
		if len(parts) < 4 || parts[1] != "game" {
			log.Printf("[PARSER] Unsupported update command: %v", parts)
			return nil
		}
		p.applyUpdate(parts[2], parts[3])

	case "action":
		if len(parts) < 2 || parts[1] != "move" {
			log.Printf("[PARSER] Unsupported action command: %v", parts)
			return nil
		}
		column, ok := p.decide(ctx)
		if !ok {
			return nil
		}
		if _, err := fmt.Fprintf(p.out, "place_disc %d\n", column); err != nil {
			return fmt.Errorf("failed to write move: %w", err)
		}

	default:
		log.Printf("[PARSER] Unknown command: %s", parts[0])
	}

	return nil
}

func (p *Parser) applySetting(key, value string) {
	switch key {
	case "your_botid":
		if id, ok := parseInt(key, value); ok {
			p.settings.BotID = domain.PlayerID(id)
		}
	case "your_bot":
		p.settings.BotName = value
	case "player_names":
		p.settings.PlayerNames = strings.Split(value, ",")
	case "field_columns":
		if n, ok := parseInt(key, value); ok {
			p.settings.Columns = n
		}
	case "field_rows":
		if n, ok := parseInt(key, value); ok {
			p.settings.Rows = n
		}
	case "timebank":
		if n, ok := parseInt(key, value); ok {
			p.settings.Timebank = n
		}
	case "time_per_move":
		if n, ok := parseInt(key, value); ok {
			p.settings.TimePerMove = n
		}
	default:
		log.Printf("[PARSER] Ignoring setting %s", key)
	}
}

func (p *Parser) applyUpdate(key, value string) {
	switch key {
	case "round":
		if n, ok := parseInt(key, value); ok {
			p.round = n
		}
	case "field":
		p.field = value
	default:
		log.Printf("[PARSER] Ignoring game update %s", key)
	}
}

func (p *Parser) decide(ctx context.Context) (int, bool) {
	if !p.settings.BotID.IsPlayer() {
		log.Println("[PARSER] Move requested before your_botid was set")
		return -1, false
	}
	if p.field == "" {
		log.Println("[PARSER] Move requested before any field update")
		return -1, false
	}

	board, err := domain.ParseField(p.field)
	if err != nil {
		log.Printf("[PARSER] Rejected field in round %d: %v", p.round, err)
		return -1, false
	}
	if (p.settings.Columns > 0 && board.Columns() != p.settings.Columns) ||
		(p.settings.Rows > 0 && board.Rows() != p.settings.Rows) {
		log.Printf("[PARSER] Rejected field in round %d: %v: got %dx%d, expected %dx%d", p.round,
			domain.ErrDimensionMismatch, board.Columns(), board.Rows(), p.settings.Columns, p.settings.Rows)
		return -1, false
	}

	res, err := p.decider.DecideMove(ctx, move.Request{
		Field:      p.field,
		BotID:      p.settings.BotID,
		Difficulty: p.difficulty,
		Source:     move.SourceStdio,
	})
	if err != nil {
		log.Printf("[PARSER] No move in round %d: %v", p.round, err)
		return -1, false
	}
	return res.Column, true
}

func parseInt(key, value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[PARSER] Invalid integer for %s: %s", key, value)
		return 0, false
	}
	return n, true
}
