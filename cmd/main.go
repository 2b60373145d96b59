package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"

	"csvexport/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	atexit.Register(cancel)

	root := cli.NewRootCommand(clockwork.NewRealClock())
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		log.Errorf("%+v", err)
		fmt.Fprintln(os.Stderr, cli.Usage(cmd, err))
	}
	atexit.Exit(cli.ExitCode(err))
}
