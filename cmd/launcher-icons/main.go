// Package main provides a one-shot utility for launcher icon generation.
//
// It writes app/src/main/res/mipmap-*/ic_launcher.png for every density bucket.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/zerotrace/launcher-icons/internal/platform/cmd"
	"github.com/zerotrace/launcher-icons/internal/platform/config"
	"github.com/zerotrace/launcher-icons/internal/tools/launchericons"
)

func main() {
	cfg, err := launchericons.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceLauncherIcons, func(ctx context.Context) error {
		return launchericons.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("generate icons: %v", err)
	}
}
