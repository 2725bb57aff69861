package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var tokenQuiet bool

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Log in to the CMS and print an access token",
	Long: `Exchange the configured service credential for a CMS access token,
the same way GET /api/get-token does.

Examples:
  gallery token
  curl -H "Authorization: Bearer $(gallery token -q)" ...`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().BoolVarP(&tokenQuiet, "quiet", "q", false, "Print only the token")
}

func runToken(cmd *cobra.Command, args []string) error {
	if err := requireCMS(); err != nil {
		return err
	}

	token, err := cmsClient.Login(getContext())
	if err != nil {
		return fmt.Errorf("failed to obtain token: %w", err)
	}

	if tokenQuiet {
		fmt.Println(token)
		return nil
	}

	fmt.Println(ui.FormatSuccess("Logged in as " + appConfig.Username))
	fmt.Println(ui.RenderKeyValue("Endpoint", appConfig.APIEndpoint))
	fmt.Println(ui.RenderKeyValue("Token", token))
	return nil
}
