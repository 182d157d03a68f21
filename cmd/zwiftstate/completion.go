package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for zwiftstate.

To load completions:

Bash:
  $ source <(zwiftstate completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ zwiftstate completion bash > /etc/bash_completion.d/zwiftstate
  # macOS:
  $ zwiftstate completion bash > $(brew --prefix)/etc/bash_completion.d/zwiftstate

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ zwiftstate completion zsh > "${fpath[1]}/_zwiftstate"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ zwiftstate completion fish | source

  # To load completions for each session, execute once:
  $ zwiftstate completion fish > ~/.config/fish/completions/zwiftstate.fish

PowerShell:
  PS> zwiftstate completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> zwiftstate completion powershell > zwiftstate.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Usage()
		}

		root := cmd.Root()
		out := cmd.OutOrStdout()

		switch args[0] {
		case "bash":
			return root.GenBashCompletionV2(out, true)
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// completeFactNames returns a completion function for fact name flags.
// It supports comma-separated values and excludes already-selected facts.
// Returns full values (prefix + candidate) for reliable cross-shell behavior.
func completeFactNames(flagName string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		parts := strings.Split(toComplete, ",")
		prefix := strings.Join(parts[:len(parts)-1], ",")
		if prefix != "" {
			prefix += ","
		}
		current := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))

		// Track already-used values
		used := make(map[string]struct{})
		addUsed := func(v string) {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				used[v] = struct{}{}
			}
		}

		// Values from current input
		for _, p := range parts[:len(parts)-1] {
			addUsed(p)
		}

		// Values already set on the flag (for repeated flag usage)
		if vals, err := cmd.Flags().GetStringSlice(flagName); err == nil {
			for _, v := range vals {
				addUsed(v)
			}
		}

		// Build candidates from valid fact names
		var candidates []string
		for _, n := range ValidFactNames() {
			if _, ok := used[n]; ok {
				continue
			}
			if strings.HasPrefix(n, current) {
				candidates = append(candidates, prefix+n)
			}
		}

		return candidates, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}

// registerFactNameCompletion registers completion for a fact name flag.
func registerFactNameCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, completeFactNames(flagName))
}
