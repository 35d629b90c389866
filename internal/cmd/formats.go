package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/thirteen37/dfconfig/internal/format"
	"github.com/thirteen37/dfconfig/internal/format/ini"
	"github.com/thirteen37/dfconfig/internal/format/json"
	"github.com/thirteen37/dfconfig/internal/format/native"
	"github.com/thirteen37/dfconfig/internal/format/toml"
	"github.com/thirteen37/dfconfig/line"
)

// formatNames lists the names accepted by --format.
var formatNames = []string{"auto", "json", "toml", "ini", "native"}

// handlerFor returns the handler named name. "auto" picks one from the
// extension of URL, falling back to the native format.
func handlerFor(name, URL string, syn line.Syntax) (format.Handler, error) {
	name = strings.ToLower(name)
	if name == "" || name == "auto" {
		switch strings.ToLower(path.Ext(URL)) {
		case ".json", ".jsonc":
			name = "json"
		case ".toml":
			name = "toml"
		case ".ini", ".cfg":
			name = "ini"
		default:
			name = "native"
		}
	}

	switch name {
	case "json":
		h := json.New()
		h.StripComments = strings.HasSuffix(strings.ToLower(URL), ".jsonc")
		return h, nil
	case "toml":
		return toml.New(), nil
	case "ini":
		return ini.New(), nil
	case "native":
		return native.New(syn), nil
	default:
		return nil, fmt.Errorf("unknown format %q (known: %s)", name, strings.Join(formatNames, ", "))
	}
}
