package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wa-desk/internal/cli"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "wactl:", service.ErrorText(err))
		os.Exit(1)
	}
}
