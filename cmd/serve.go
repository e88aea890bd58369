package cmd

import (
	"fmt"

	"marando/pkg/web"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the hikes dashboard in the browser",
	Long:  "Load the hikes file once and serve the filter dashboard. The results table refreshes each time a filter changes. Running marando without a command does the same.",
	RunE:  runServe,
}

// runServe backs both "marando" and "marando serve".
func runServe(cmd *cobra.Command, args []string) error {
	engine, cfg, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	addrFlag, _ := cmd.Flags().GetString("addr")
	addr := cfg.ListenAddrOr(addrFlag)

	srv, err := web.NewServer(engine)
	if err != nil {
		return err
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("🥾 Ma rando sur http://%s", addr)))
	return srv.ListenAndServe(addr)
}

func addAddrFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "Listen address, defaults to the saved address or 127.0.0.1:8050")
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addAddrFlag(serveCmd)
	addAddrFlag(rootCmd)
}
