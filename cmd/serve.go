package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tbouhar/sitegen/internal/progress"
	"github.com/tbouhar/sitegen/internal/server"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with live preview",
	Long: `Builds the site and starts the dev server. Content changes trigger a
rebuild and reload open pages; header navigation runs through the live
preview socket so clicks exercise the same controllers the generated
markup is written for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		builder := &siteBuilder{cfg: cfg}
		rebuild := func(changed []string) error {
			_, buildErr := builder.build(changed, progress.NewReporter())
			return buildErr
		}
		if err := rebuild(nil); err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:    cfg.Port,
			SiteDir: cfg.OutputDir,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher := server.NewWatcher(cfg.ContentDir, rebuild, srv)
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				fmt.Fprintf(os.Stderr, "Warning: file watching stopped: %v\n", err)
			}
		}()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Port)
		if serveOpen {
			go openBrowser(url)
		}
		fmt.Printf("Serving at %s — press Ctrl+C to stop\n", url)

		return srv.Start()
	},
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}
