package theme

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadFile reads and validates one theme file from disk.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, frescoerrors.NewParseError(path, 0, err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, frescoerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

// extractLine pulls the line number out of a yaml.v3 error message, which
// does not expose it structurally.
func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
