package auth

import (
	"github.com/spf13/cobra"

	"fnotes/internal/state"
	"fnotes/pkg/cmd/auth/check"
	"fnotes/pkg/cmd/auth/login"
	"fnotes/pkg/cmd/auth/logout"
	"fnotes/pkg/cmd/auth/register"
	"fnotes/pkg/cmd/auth/whoami"
)

func NewCmdAuth(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"a"},
		Short:   "Authenticate to the application.",
	}

	cmd.AddCommand(register.NewCmdRegister(s))
	cmd.AddCommand(login.NewCmdLogin(s))
	cmd.AddCommand(logout.NewCmdLogout(s))
	cmd.AddCommand(check.NewCmdCheck(s))
	cmd.AddCommand(whoami.NewCmdWhoami(s))

	return cmd
}
