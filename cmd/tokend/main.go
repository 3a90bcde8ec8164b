package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/coschain/cobra"
	"github.com/coschain/mide-token/cmd/tokend/commands"
	"github.com/coschain/mide-token/contract"
	"github.com/spf13/pflag"
)

// Version is the build version, set with -ldflags "-X main.Version=...".
var Version = contract.ContractVersion

var rootCmd = &cobra.Command{
	Use:   "tokend",
	Short: "tokend runs the mide token contract on a local host",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (contract %s)\n", commands.ClientIdentifier, Version, contract.ContractName)
	},
}

func pcFromCommands(parent readline.PrefixCompleterInterface, c *cobra.Command) {
	pc := readline.PcItem(strings.Fields(c.Use)[0])
	parent.SetChildren(append(parent.GetChildren(), pc))
	for _, child := range c.Commands() {
		pcFromCommands(pc, child)
	}
}

func inheritContext(c *cobra.Command) {
	for _, child := range c.Commands() {
		child.Context = c.Context
		inheritContext(child)
	}
}

func runShell() {
	completer := readline.NewPrefixCompleter()
	for _, child := range rootCmd.Commands() {
		pcFromCommands(completer, child)
	}
	shell, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: completer,
		EOFPrompt:    "exit",
	})
	if err != nil {
		panic(err)
	}
	defer shell.Close()

shell_loop:
	for {
		l, err := shell.Readline()
		if err != nil {
			break shell_loop
		}
		fields := splitLine(l)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break shell_loop
		}
		cmd, args, err := prepareLine(fields)
		if err != nil {
			shell.Terminal.Write([]byte(err.Error() + "\n"))
			continue
		}
		if cmd == nil {
			continue
		}
		cmd.Run(cmd, args)
	}
}

// prepareLine resolves a shell line to its command and positional args.
// Flag values left by earlier lines are reset before parsing. A nil command means help was printed.
func prepareLine(fields []string) (*cobra.Command, []string, error) {
	cmd, flags, err := rootCmd.Find(fields)
	if err != nil {
		return nil, nil, err
	}
	if cmd == rootCmd || cmd.Run == nil {
		cmd.Help()
		return nil, nil, nil
	}
	resetFlags(cmd)
	if err = cmd.ParseFlags(flags); err != nil {
		return nil, nil, err
	}
	if err = checkRequiredFlags(cmd); err != nil {
		return nil, nil, err
	}
	args := cmd.Flags().Args()
	if cmd.Args != nil {
		if err = cmd.Args(cmd, args); err != nil {
			return nil, nil, err
		}
	}
	return cmd, args, nil
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.InheritedFlags().VisitAll(reset)
}

func checkRequiredFlags(cmd *cobra.Command) error {
	var missing []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if req, ok := f.Annotations[cobra.BashCompOneRequiredFlag]; ok && len(req) > 0 && req[0] == "true" && !f.Changed {
			missing = append(missing, f.Name)
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %q not set", strings.Join(missing, `", "`))
	}
	return nil
}

// splitLine splits a shell line on spaces, keeping single-quoted JSON arguments whole.
func splitLine(l string) []string {
	var (
		fields []string
		cur    strings.Builder
		quoted bool
		inWord bool
	)
	for _, r := range l {
		switch {
		case r == '\'':
			quoted = !quoted
			inWord = true
		case !quoted && (r == ' ' || r == '\t'):
			if inWord {
				fields = append(fields, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		fields = append(fields, cur.String())
	}
	return fields
}

func addCommands() {
	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.StartCmd())
	rootCmd.AddCommand(commands.InstantiateCmd())
	rootCmd.AddCommand(commands.ExecuteCmd())
	rootCmd.AddCommand(commands.QueryCmd())
	rootCmd.AddCommand(commands.MigrateCmd())
	rootCmd.AddCommand(commands.InfoCmd())
	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(versionCmd)
}

func init() {
	commands.AddGlobalFlags(rootCmd)
	addCommands()
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runShell()
	}
}

func main() {
	rootCmd.SetContext("client", commands.ClientIdentifier)
	inheritContext(rootCmd)
	err := rootCmd.Execute()
	commands.Close(rootCmd)
	if err != nil {
		os.Exit(1)
	}
}
