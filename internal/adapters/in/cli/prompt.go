package cli

import (
	"github.com/spf13/cobra"
)

// newPromptCmd creates the prompt command.
func newPromptCmd() *cobra.Command {
	var (
		configPath string
		flags      promptFlags
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the rendered nutrition prompt",
		Long:  `Render the nutrition prompt with the configured defaults and any flag overrides. No API key is needed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := openPromptKernel(configPath)
			if err != nil {
				return err
			}
			defer k.Close()

			text, err := k.Prompts().Build(k.Context(), flags.apply(cmd, k.PromptDefaults()))
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), text)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	flags.register(cmd)

	return cmd
}
