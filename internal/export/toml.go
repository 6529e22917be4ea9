package export

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sadopc/tasker/internal/task"
)

func ToTOML(tasks []*task.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create toml file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(newDocument(tasks)); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}
