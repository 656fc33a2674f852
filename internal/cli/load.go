package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/trustedtext/trusted/internal/collection"
	"github.com/trustedtext/trusted/internal/config"
	"github.com/trustedtext/trusted/internal/item"
	"github.com/trustedtext/trusted/internal/query"
)

// session is one loaded command run: config, collection, and the query
// engine over them.
type session struct {
	cfg    *config.Config
	coll   *collection.Collection
	engine *query.Engine
}

// load reads the config and the given source paths into a fresh
// collection. Unreadable sources are surfaced unmodified as command
// errors - the engine never masks collaborator failures.
func (o *RootOptions) load(paths []string) (*session, error) {
	cfg, err := config.Load(o.configPath())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	today, err := o.today()
	if err != nil {
		return nil, err
	}

	coll := collection.New()
	for _, path := range paths {
		lines, err := o.ReadSource(path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read %s", path), err)
		}
		id := path
		if path == "-" {
			id = "" // stdin gets a generated source id
		}
		id, items := coll.AddSource(id, lines)
		slog.Debug("parsed source", "source", id, "items", len(items))
	}

	return &session{
		cfg:    cfg,
		coll:   coll,
		engine: query.New(coll, cfg.ClassifyPolicy(), func() item.Date { return today }),
	}, nil
}

// configPath resolves the config file location: the --config flag, or
// .trusted.yaml in the working directory.
func (o *RootOptions) configPath() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return ".trusted.yaml"
}

// readFileLines reads a file (or stdin for "-") into lines, normalizing
// line endings. A trailing newline does not produce a phantom empty
// item.
func readFileLines(path string) ([]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

// splitLines normalizes line endings and splits into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
