package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/icon"
	"github.com/odyssey-club/aiosource/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)

	authLoginCmd.Flags().Bool("stdin", false, "Read the session token from standard input")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the club session used for members-only content and comments",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a session token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		var token string

		if lo.Must(cmd.Flags().GetBool("stdin")) || !term.IsTerminal(int(os.Stdin.Fd())) {
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				handleErr(errors.Join(errors.New("no token on standard input"), scanner.Err()))
			}
			token = scanner.Text()
		} else {
			handleErr(survey.AskOne(&survey.Password{
				Message: "Session token",
				Help:    "Copy the bearer token of a signed-in app.adventuresinodyssey.com session",
			}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(session.Save(token))
		fmt.Printf("%s logged in\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(session.Clear())
		fmt.Printf("%s logged out\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a session is stored",
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := session.IsAuthenticated()
		handleErr(err)

		if ok {
			fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), "logged in")
		} else {
			fmt.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Lock)), "anonymous, only free episodes are available")
		}
	},
}
