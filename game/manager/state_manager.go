package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameRecord is one finished session.
type GameRecord struct {
	SessionID string    `json:"session_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Score     int       `json:"score"`
	GridSize  int       `json:"grid_size"`
}

type GameStats struct {
	HighScore int          `json:"high_score"`
	Games     []GameRecord `json:"games"`
}

// StateManager keeps the score history on disk. A zero-value filename
// keeps everything in memory.
type StateManager struct {
	filename  string
	sessionID string
	startTime time.Time
	stats     GameStats
	logger    *zap.SugaredLogger
}

func NewStateManager(filename string, logger *zap.SugaredLogger) (*StateManager, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	sm := &StateManager{
		filename:  filename,
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		logger:    logger,
	}
	if filename == "" {
		return sm, nil
	}

	if err := sm.LoadStats(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load stats %s: %w", filename, err)
	}
	return sm, nil
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}

	sm.stats = stats
	return nil
}

func (sm *StateManager) SaveStats(filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create stats directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// RecordGame closes the current session with its final score and saves.
func (sm *StateManager) RecordGame(score, gridSize int) error {
	record := GameRecord{
		SessionID: sm.sessionID,
		StartTime: sm.startTime,
		EndTime:   time.Now(),
		Score:     score,
		GridSize:  gridSize,
	}
	sm.stats.Games = append(sm.stats.Games, record)
	if score > sm.stats.HighScore {
		sm.stats.HighScore = score
		sm.logger.Infof("New high score %d (session %s)", score, sm.sessionID)
	}

	if sm.filename == "" {
		return nil
	}
	return sm.SaveStats(sm.filename)
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.HighScore
}

func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.stats.Games))
	for i, g := range sm.stats.Games {
		scores[i] = g.Score
	}
	return scores
}
