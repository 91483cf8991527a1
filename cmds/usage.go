package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stderr, "commands:")
	printCommands(p.commands, 1)
}

func printCommands(commands map[string]*Command, indent int) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	seen := make(map[*Command]bool)
	for _, name := range names {
		command := commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true

		label := name
		if len(command.Aliases) > 0 {
			label += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		pad := strings.Repeat("  ", indent)
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "%s%s\t%s\n", pad, label, command.Description)
		} else {
			fmt.Fprintf(os.Stderr, "%s%s\n", pad, label)
		}
		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
