// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/rest"

	"sitegen-api/internal/cli"
	"sitegen-api/internal/config"
	"sitegen-api/internal/handler"
	"sitegen-api/internal/svc"
)

var configFile = flag.String("f", "etc/sitegen.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	cli.LogConfigSummary(cfg)

	server := rest.MustNewServer(cfg.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(*cfg)
	handler.RegisterHandlers(server, ctx)

	// Previews degrade gracefully: a failed browser launch logs and leaves
	// the render routes answering 503 while generation keeps working.
	ctx.Render.Initialize(context.Background())
	proc.AddShutdownListener(ctx.Render.Cleanup)

	fmt.Printf("Starting server at %s:%d...\n", cfg.Host, cfg.Port)
	server.Start()
}
