package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ryanpate/invoice-generator-pro/internal/domain"
)

const historyFile = ".invoicer/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage.
// It lets invoice numbering continue across batch runs on the same day
// instead of restarting at 001.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, rec domain.RunRecord) error {
	records, err := h.Load(dir)
	if err != nil {
		return err
	}

	records = append(records, rec)

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.RunRecord, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.RunRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// NextSequence returns the sequence number the next run on the given
// date should start from: one past the highest recorded sequence, or 1
// when the date has no recorded runs.
func (h *FileHistory) NextSequence(dir, date string) (int, error) {
	records, err := h.Load(dir)
	if err != nil {
		return 0, err
	}

	last := 0
	for _, rec := range records {
		if rec.Date == date && rec.LastSequence > last {
			last = rec.LastSequence
		}
	}
	return last + 1, nil
}
