package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/innergy-tools/workorders/internal/model"
)

// Load reads the dotenv file at path and returns its key/value pairs as a
// fresh map. The map is built once and owned by the caller; Load has no
// side effects beyond reading the file.
//
// Parsing rules, applied line by line:
//   - a line is skipped if it is empty after trimming, starts with "#"
//     after trimming, or contains no "=" character
//   - the line is split at the FIRST "=" only, so values may themselves
//     contain "=" characters
//   - both key and value are trimmed of surrounding whitespace
//   - a value wrapped in one matching pair of quotes (both ends `"` or
//     both ends `'`) has the outer pair stripped; interior characters are
//     never unescaped
//   - a later duplicate key overwrites an earlier one
//
// A missing file yields a model.RunError of KindNotFound whose message
// names the path.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewRunError(model.KindNotFound,
				fmt.Sprintf("Environment file not found: %s", path))
		}
		return nil, model.WrapRunError(model.KindUnknown,
			fmt.Sprintf("failed to open environment file %s", path), err)
	}
	// The file handle must not outlive this call; everything is read
	// before any network activity begins.
	defer func() { _ = f.Close() }()

	env := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rest, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		env[strings.TrimSpace(key)] = unquote(strings.TrimSpace(rest))
	}
	if err := scanner.Err(); err != nil {
		return nil, model.WrapRunError(model.KindUnknown,
			fmt.Sprintf("failed to read environment file %s", path), err)
	}

	return env, nil
}

// unquote strips a single matching pair of surrounding quote characters.
// Only one layer is removed, and only when both ends carry the same quote
// character. Interior escaped quotes are left untouched.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
