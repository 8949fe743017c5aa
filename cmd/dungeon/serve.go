package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the level preview SSH server",
	Long: `Start an SSH server that hands out level previews.

Each SSH connection gets a freshly generated level sized to the client's
terminal. The command may carry a seed and an architect. Every served
level is recorded in the database.

Settings come from the environment and can be overridden by flags:
  DUNGEON_SSH_ADDR       listen address (default :23234)
  DUNGEON_HOST_KEY       host key path (default ~/.dungeon/host_key)
  DUNGEON_DB             level database (default ~/.dungeon/levels.db)
  DUNGEON_IDLE_TIMEOUT   idle timeout (default 5m)
  DUNGEON_LOG_LEVEL      log level (default info)

Examples:
  dungeon serve                           # Listen on :23234 with auto-generated key
  dungeon serve --ssh :2222               # Listen on port 2222
  dungeon serve --host-key ./my_host_key  # Use specific host key
  dungeon serve --preset hard             # Serve harder levels

Users can connect with:
  ssh localhost -p 23234
  ssh localhost -p 23234 42 rooms`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 5*time.Minute, "Idle timeout before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	srvCfg, err := config.LoadServerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyServeFlags(cmd, &srvCfg)

	logger, err := newLogger("dungeon-ssh", srvCfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setup, err := loadSetup(setupOptions{
		ConfigPath: flagConfig,
		Preset:     flagPreset,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     srvCfg.Address,
		HostKeyPath: config.ExpandPath(srvCfg.HostKeyPath),
		DBPath:      srvCfg.DBPath,
		IdleTimeout: srvCfg.IdleTimeout,
		Params:      setup.Params,
		Prefabs:     setup.Prefabs,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting dungeon SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// applyServeFlags lets explicitly set flags win over the environment.
func applyServeFlags(cmd *cobra.Command, cfg *config.ServerConfig) {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}
