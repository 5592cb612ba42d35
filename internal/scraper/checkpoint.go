package scraper

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"time"
)

// Checkpoint makes a long scrape resumable: completed game ids are flushed to
// disk after every game so a restart skips them.
type Checkpoint struct {
	path      string
	completed map[int]bool
}

type checkpointFile struct {
	CompletedGameIDs []int     `json:"completed_game_ids"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func LoadCheckpoint(path string) (*Checkpoint, error) {
	cp := &Checkpoint{path: path, completed: map[int]bool{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cp, nil
		}
		return nil, err
	}

	var file checkpointFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	for _, id := range file.CompletedGameIDs {
		cp.completed[id] = true
	}
	return cp, nil
}

func (cp *Checkpoint) Done(gameID int) bool {
	return cp.completed[gameID]
}

func (cp *Checkpoint) MarkDone(gameID int) error {
	cp.completed[gameID] = true
	return cp.save()
}

func (cp *Checkpoint) Len() int {
	return len(cp.completed)
}

func (cp *Checkpoint) save() error {
	ids := make([]int, 0, len(cp.completed))
	for id := range cp.completed {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	raw, err := json.MarshalIndent(checkpointFile{
		CompletedGameIDs: ids,
		UpdatedAt:        time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write cannot corrupt the checkpoint.
	tmp := cp.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, cp.path)
}
