package export

import (
	"fmt"
	"os"

	"github.com/sadopc/tasker/internal/task"
	"gopkg.in/yaml.v3"
)

func ToYAML(tasks []*task.Task, path string) error {
	data, err := yaml.Marshal(newDocument(tasks))
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write yaml file: %w", err)
	}
	return nil
}
