package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/coschain/cobra"
	"github.com/coschain/mide-token/common"
)

var StartCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "start the node and its http gateway",
		Args:  cobra.NoArgs,
		Run:   startNode,
	}
	return cmd
}

func startNode(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	app := makeNode(true)
	if servers := app.Config().NTPServers; len(servers) > 0 {
		if err := checkNTPTime(servers, app.Log); err != nil {
			app.Log.WithError(err).Warn("block time may drift")
		}
	}
	if err := app.Start(); err != nil {
		common.Fatalf("start node failed: %v", err)
	}

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		app.Log.Info("Got interrupt, shutting down...")
		go app.Stop()
	}()

	app.Wait()
}
