package tasks

import "context"

// TaskStore persists the shared task list in one flat JSON document.
// There is no ownership link to accounts: the list is global.
type TaskStore struct {
	col    *Collection[Task]
	logger Logger
}

func NewTaskStore(path string) *TaskStore {
	return &TaskStore{
		col:    NewCollection[Task](path),
		logger: defLogger{},
	}
}

func (s *TaskStore) WithLogger(logger Logger) *TaskStore {
	s.logger = logger
	return s
}

// All returns the full task list.
func (s *TaskStore) All(ctx context.Context) ([]Task, error) {
	return s.col.Load()
}

// Create appends a task and rewrites the collection.
func (s *TaskStore) Create(ctx context.Context, title, description string) (*Task, error) {
	var created Task

	err := s.col.Update(func(records []Task) ([]Task, error) {
		var lastID int64
		for _, r := range records {
			if r.ID > lastID {
				lastID = r.ID
			}
		}

		created = Task{
			ID:          nextID(lastID),
			Title:       title,
			Description: description,
		}

		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update replaces the title and description of the task with the given
// id. An unknown id returns ErrTaskNotFound.
func (s *TaskStore) Update(ctx context.Context, id int64, title, description string) (*Task, error) {
	var updated Task

	err := s.col.Update(func(records []Task) ([]Task, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Title = title
				records[i].Description = description
				updated = records[i]
				return records, nil
			}
		}
		return nil, ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the task with the given id. Deleting an absent id is
// not an error: the collection is simply rewritten without it.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	return s.col.Update(func(records []Task) ([]Task, error) {
		kept := records[:0]
		for _, r := range records {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		return kept, nil
	})
}
