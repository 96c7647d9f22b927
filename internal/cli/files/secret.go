package files

import (
	"fmt"

	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/deskscript/gutils/internal/secret"
	"github.com/spf13/cobra"
)

func newSecretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret [flags] <name>",
		Short: "Publish a random secret for a script",
		Long: `Publish a random secret for a script.

Writes 16 random letters and digits to <dir>/<name>.secret with mode 0600
and prints them. --remove deletes the file instead. The directory defaults
to the secret_dir config key.`,
		Example: `  TOKEN=$(gutils secret clipsync)
  trap 'gutils secret --remove clipsync' EXIT`,
		Args: shared.Args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			dir := cfg.SecretDir
			if cmd.Flags().Changed("dir") {
				dir, _ = cmd.Flags().GetString("dir")
			}

			if remove, _ := cmd.Flags().GetBool("remove"); remove {
				s := &secret.Secret{Path: secret.PathFor(dir, args[0])}
				shared.Logger(cmd).Printf("removing %s", s.Path)
				return s.Remove()
			}

			s, err := secret.New(dir, args[0])
			if err != nil {
				return err
			}
			if shared.Verbose(cmd) {
				fmt.Fprintf(cmd.ErrOrStderr(), "secret written to %s\n", s.Path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Value)
			return nil
		},
	}
	cmd.Flags().String("dir", "", "Directory for the secret file")
	cmd.Flags().Bool("remove", false, "Remove the secret file")
	return cmd
}
