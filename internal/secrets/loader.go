package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a secret value from the given file. The name is used only in
// error messages to give context about which secret failed to load. The
// returned value is always trimmed; an empty file is an error.
func Load(name, file string) (string, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = "secret"
	}

	file = strings.TrimSpace(file)
	if file == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	return secret, nil
}
