package commands

import (
	"strings"

	"github.com/goliatone/go-qa/internal/logging"
	"github.com/goliatone/go-qa/pkg/interfaces"
)

const commandModuleRoot = "qa.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriched
// with consistent structured fields so command executions share a shape in the
// log stream.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
