package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/config"
	"github.com/odyssey-club/aiosource/style"
	"github.com/odyssey-club/aiosource/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.SetOut(os.Stdout)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVar is an environment variable together with the config key it overrides.
type envVar struct {
	Name  string `json:"name"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Set   bool   `json:"set"`
}

func envVars() []envVar {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) envVar {
		f := config.Default[k]
		return envVar{Name: f.Env(), Key: k}
	})
	vars = append(vars, envVar{Name: where.EnvConfigPath})

	for i := range vars {
		vars[i].Value, vars[i].Set = os.LookupEnv(vars[i].Name)
	}

	slices.SortFunc(vars, func(a, b envVar) int {
		return strings.Compare(a.Name, b.Name)
	})
	return vars
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		vars := lo.Filter(envVars(), func(v envVar, _ int) bool {
			return !(setOnly && !v.Set) && !(unsetOnly && v.Set)
		})

		if asJson, _ := cmd.Flags().GetBool("json"); asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(vars))
			return
		}

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, v := range vars {
			value := style.Fg(color.Red)("unset")
			if v.Set {
				value = style.Fg(color.Green)(v.Value)
			}

			cmd.Printf("%s=%s", name(v.Name), value)
			if v.Key != "" {
				cmd.Print(style.Faint("  # " + v.Key))
			}
			cmd.Println()
		}
	},
}
