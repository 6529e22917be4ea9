package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sadopc/tasker/internal/task"
)

func ToCSV(tasks []*task.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Kind", "Description", "Boards", "Status", "Priority", "Starred", "Created"}); err != nil {
		return err
	}

	for _, t := range tasks {
		it := newItem(t)
		priority := ""
		if it.Priority != 0 {
			priority = strconv.Itoa(it.Priority)
		}
		row := []string{
			strconv.FormatUint(it.ID, 10),
			it.Kind,
			it.Description,
			strings.Join(it.Boards, ";"),
			it.Status,
			priority,
			strconv.FormatBool(it.Starred),
			it.Created,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
