package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aliyun-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/aliyun-doctor/logging"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	logging.Init(false)

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"aliyun-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAliyunTools(s, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.Region)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
