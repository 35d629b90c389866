// Package script provides parsing for dfconfig patch scripts.
//
// A patch script lists directives followed by the entries to apply:
//
//	#!/usr/bin/env dfconfig
//	# version 1
//	# syntax df
//	# preserve ["VOLUME"]
//	# remove ["OLD_*"]
//	#---
//	[SOUND:NO]
//	[FPS:YES]
package script

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/thirteen37/dfconfig/internal/keys"
	"github.com/thirteen37/dfconfig/line"
)

// CurrentVersion is the latest supported script format version.
const CurrentVersion = 1

// Separator ends the directive section explicitly.
const Separator = "---"

// Script represents a parsed patch script.
type Script struct {
	Version  int
	Syntax   string
	Preserve []keys.Selector
	Remove   []keys.Selector
	Template string
}

// Parse parses a patch script from its content.
func Parse(content string) (*Script, error) {
	script := &Script{}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0
	versionSeen := false
	var templateLines []string
	inTemplate := false

	for scanner.Scan() {
		lineNum++
		text := scanner.Text()

		// Skip shebang
		if lineNum == 1 && strings.HasPrefix(text, "#!") {
			continue
		}

		// If we're in template mode, collect all remaining lines
		if inTemplate {
			templateLines = append(templateLines, text)
			continue
		}

		// Skip blank lines in directive section
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		commented := strings.HasPrefix(trimmed, "#")
		directiveText := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))

		if directiveText == Separator {
			inTemplate = true
			continue
		}

		// Check if this line starts the template
		if !commented && isTemplateStart(trimmed) {
			inTemplate = true
			templateLines = append(templateLines, text)
			continue
		}

		parts := strings.SplitN(directiveText, " ", 2)
		if !isKnownDirective(parts[0]) {
			if commented {
				continue
			}
			return nil, fmt.Errorf("line %d: unknown directive %q", lineNum, parts[0])
		}
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: invalid directive %q", lineNum, directiveText)
		}

		directive := parts[0]
		value := strings.TrimSpace(parts[1])

		if directive != "version" && !versionSeen {
			return nil, fmt.Errorf("line %d: version directive must come first", lineNum)
		}

		switch directive {
		case "version":
			if versionSeen {
				return nil, fmt.Errorf("line %d: duplicate version directive", lineNum)
			}
			var v int
			if _, err := fmt.Sscanf(value, "%d", &v); err != nil {
				return nil, fmt.Errorf("line %d: invalid version %q", lineNum, value)
			}
			if v > CurrentVersion {
				return nil, fmt.Errorf("line %d: unsupported version %d (max supported: %d), please upgrade dfconfig", lineNum, v, CurrentVersion)
			}
			if v < 1 {
				return nil, fmt.Errorf("line %d: invalid version %d", lineNum, v)
			}
			script.Version = v
			versionSeen = true

		case "syntax":
			if _, err := line.ResolveSyntax(value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			script.Syntax = value

		case "preserve", "remove":
			selectors, err := keys.ParseList(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid %s keys %q: %w", lineNum, directive, value, err)
			}
			if directive == "preserve" {
				script.Preserve = append(script.Preserve, selectors...)
			} else {
				script.Remove = append(script.Remove, selectors...)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	if !versionSeen {
		return nil, fmt.Errorf("missing required version directive")
	}

	if len(templateLines) == 0 && len(script.Remove) == 0 {
		return nil, fmt.Errorf("no template content found")
	}

	script.Template = strings.Join(templateLines, "\n")
	if len(templateLines) > 0 {
		script.Template += "\n"
	}
	return script, nil
}

// isTemplateStart checks if a line looks like the start of template content.
func isTemplateStart(text string) bool {
	// Token entries
	if strings.HasPrefix(text, "[") {
		return true
	}
	// Bare key:value (but not our directives)
	if strings.Contains(text, line.Separator) && !isKnownDirective(strings.SplitN(text, " ", 2)[0]) {
		return true
	}
	return false
}

// isKnownDirective checks if a word is a known directive.
func isKnownDirective(word string) bool {
	switch word {
	case "version", "syntax", "preserve", "remove":
		return true
	}
	return false
}
