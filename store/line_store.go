package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/taskman-cli/taskman/models"
)

const (
	statusPending = "0"
	statusDone    = "1"
	tempSuffix    = ".tmp"
	lockSuffix    = ".lock"
)

// LineTaskStore implements the TaskStore interface on a newline-delimited
// text file, one record per line in the form `id,status,description`.
//
// No state is cached between operations: every call opens, reads or
// writes, and closes the file, mirroring the one-shot lifecycle of the
// CLI. Mutations rewrite the whole file to a temp file in the same
// directory and atomically rename it over the original. Lines that do not
// decode are tolerated: List skips them, rewrites copy them through
// byte-for-byte, and NextID only considers their leading integer field.
type LineTaskStore struct {
	filePath string
	flk      *flock.Flock
}

// NewLineTaskStore creates a store backed by the file at filePath.
// The advisory lock lives in a sidecar file because the data file itself
// is replaced by rename during rewrites.
func NewLineTaskStore(filePath string) *LineTaskStore {
	return &LineTaskStore{
		filePath: filePath,
		flk:      flock.New(filePath + lockSuffix),
	}
}

// FilePath returns the path of the backing store file.
func (s *LineTaskStore) FilePath() string {
	return s.filePath
}

func (s *LineTaskStore) lock() error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock store file %s: %w", s.filePath, err)
	}
	return nil
}

// formatLine encodes a record. The description is written verbatim.
func formatLine(t models.Task) string {
	status := statusPending
	if t.Completed {
		status = statusDone
	}
	return strconv.Itoa(t.ID) + "," + status + "," + t.Description
}

// parseLine decodes a well-formed record line. It splits on the first two
// commas only; everything after the second comma, embedded commas
// included, belongs to the description.
func parseLine(line string) (models.Task, bool) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) != 3 {
		return models.Task{}, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil || id <= 0 {
		return models.Task{}, false
	}
	var completed bool
	switch parts[1] {
	case statusPending:
		completed = false
	case statusDone:
		completed = true
	default:
		return models.Task{}, false
	}
	return models.Task{ID: id, Completed: completed, Description: parts[2]}, true
}

// leadingID parses the integer field before the first comma. NextID
// considers any line with a parsable positive leading id, well-formed
// or not.
func leadingID(line string) (int, bool) {
	head, _, ok := strings.Cut(line, ",")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(head)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NextID scans the whole file and returns one more than the highest
// parsable id, or 1 for a missing store or one with no parsable ids.
// The linear scan per add is a known scalability ceiling, acceptable at
// personal-tracker record counts.
func (s *LineTaskStore) NextID() (int, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.nextIDLocked()
}

func (s *LineTaskStore) nextIDLocked() (int, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to open store file %s: %w", s.filePath, err)
	}
	defer func() { _ = file.Close() }()

	maxID := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if id, ok := leadingID(scanner.Text()); ok && id > maxID {
			maxID = id
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan store file %s: %w", s.filePath, err)
	}
	return maxID + 1, nil
}

// Add validates the description, assigns the next id, and appends the new
// record in append mode, creating the file if absent. Existing content is
// untouched.
func (s *LineTaskStore) Add(description string) (models.Task, error) {
	if err := models.ValidateDescription(description); err != nil {
		return models.Task{}, err
	}

	if err := s.lock(); err != nil {
		return models.Task{}, err
	}
	defer func() { _ = s.flk.Unlock() }()

	id, err := s.nextIDLocked()
	if err != nil {
		return models.Task{}, err
	}

	task := models.NewTask(id, description)
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	file, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to open store file %s for append: %w", s.filePath, err)
	}
	if _, err := file.WriteString(formatLine(task) + "\n"); err != nil {
		_ = file.Close()
		return models.Task{}, fmt.Errorf("failed to append task to %s: %w", s.filePath, err)
	}
	if err := file.Close(); err != nil {
		return models.Task{}, fmt.Errorf("failed to close store file %s: %w", s.filePath, err)
	}
	return task, nil
}

// List reads every line and decodes the well-formed ones in on-disk
// order. Malformed lines are skipped, not errors. A missing file is an
// empty store.
func (s *LineTaskStore) List() ([]models.Task, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer func() { _ = s.flk.Unlock() }()

	file, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to open store file %s: %w", s.filePath, err)
	}
	defer func() { _ = file.Close() }()

	tasks := []models.Task{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if task, ok := parseLine(scanner.Text()); ok {
			tasks = append(tasks, task)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan store file %s: %w", s.filePath, err)
	}
	return tasks, nil
}

// SetStatus rewrites the record whose id matches with the new completion
// flag and reports whether it was found. A not-found rewrite still runs
// to completion as a content-preserving copy.
func (s *LineTaskStore) SetStatus(id int, completed bool) (bool, error) {
	if err := s.lock(); err != nil {
		return false, err
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.rewrite(func(t models.Task) (string, bool, bool) {
		if t.ID != id {
			return "", false, false
		}
		t.Completed = completed
		return formatLine(t), false, true
	})
}

// Delete removes the matching record entirely. Only well-formed records
// can match: a malformed line is preserved even when its leading field
// happens to carry the same id.
func (s *LineTaskStore) Delete(id int) (bool, error) {
	if err := s.lock(); err != nil {
		return false, err
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.rewrite(func(t models.Task) (string, bool, bool) {
		if t.ID != id {
			return "", false, false
		}
		return "", true, true
	})
}

// rewrite streams the store file through fn into a temp file in the same
// directory, then renames the temp file over the original in a single
// atomic replace. fn receives each decoded record and returns the
// replacement line, whether to omit the line, and whether it matched;
// lines that do not decode bypass fn and are copied through byte-for-byte.
// A missing store file reports no match without touching the filesystem.
func (s *LineTaskStore) rewrite(fn func(models.Task) (line string, omit bool, matched bool)) (bool, error) {
	original, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open store file %s: %w", s.filePath, err)
	}
	defer func() { _ = original.Close() }()

	tempPath := s.filePath + tempSuffix
	temp, err := os.OpenFile(tempPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return false, fmt.Errorf("failed to create temporary file %s: %w", tempPath, err)
	}
	defer func() { _ = os.Remove(tempPath) }()

	found := false
	writer := bufio.NewWriter(temp)
	reader := bufio.NewReader(original)
	for {
		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			line := strings.TrimSuffix(raw, "\n")
			write := true
			if task, ok := parseLine(line); ok {
				if replacement, omit, matched := fn(task); matched {
					found = true
					if omit {
						write = false
					} else {
						line = replacement
					}
				}
			}
			if write {
				if _, err := writer.WriteString(line + "\n"); err != nil {
					_ = temp.Close()
					return false, fmt.Errorf("failed to write temporary file %s: %w", tempPath, err)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = temp.Close()
			return false, fmt.Errorf("failed to read store file %s: %w", s.filePath, readErr)
		}
	}

	if err := writer.Flush(); err != nil {
		_ = temp.Close()
		return false, fmt.Errorf("failed to flush temporary file %s: %w", tempPath, err)
	}
	if err := temp.Close(); err != nil {
		return false, fmt.Errorf("failed to close temporary file %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, s.filePath); err != nil {
		return false, fmt.Errorf("failed to replace store file %s: %w", s.filePath, err)
	}
	return found, nil
}

// Close releases the advisory lock if held. Unlock is idempotent and can
// be called even if the lock is not held by this process.
func (s *LineTaskStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
