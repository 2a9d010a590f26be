package cmd

import "github.com/spf13/cobra"

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for the snds CLI.

To load completions:

Bash:
  $ source <(snds completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ snds completion bash > /etc/bash_completion.d/snds
  # macOS:
  $ snds completion bash > $(brew --prefix)/etc/bash_completion.d/snds

Zsh:
  $ source <(snds completion zsh)
  # To load completions for each session, execute once:
  $ snds completion zsh > "${fpath[1]}/_snds"

Fish:
  $ snds completion fish | source
  # To load completions for each session, execute once:
  $ snds completion fish > ~/.config/fish/completions/snds.fish

PowerShell:
  PS> snds completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> snds completion powershell > snds.ps1
  # and source this file from your PowerShell profile.
`,
	}

	cmd.AddCommand(newCompletionBashCmd())
	cmd.AddCommand(newCompletionZshCmd())
	cmd.AddCommand(newCompletionFishCmd())
	cmd.AddCommand(newCompletionPowershellCmd())

	return cmd
}

func newCompletionBashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletion(stdoutFromContext(cmd.Context()))
		},
	}
}

func newCompletionZshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zsh",
		Short: "Generate zsh completion script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenZshCompletion(stdoutFromContext(cmd.Context()))
		},
	}
}

func newCompletionFishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(stdoutFromContext(cmd.Context()), true)
		},
	}
}

func newCompletionPowershellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "powershell",
		Short: "Generate powershell completion script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(stdoutFromContext(cmd.Context()))
		},
	}
}
