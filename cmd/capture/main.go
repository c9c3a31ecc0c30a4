// Clinical Capture - live camera capture with alignment guides
//
// Streams frames from a webcam or phone camera, overlays the coin and
// lesion guides, and saves a single still on click or spacebar.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dermaview/clinical-capture/internal/config"
	"github.com/dermaview/clinical-capture/internal/log"
	"github.com/dermaview/clinical-capture/pkg/session"
	"github.com/dermaview/clinical-capture/pkg/source"
	"github.com/dermaview/clinical-capture/pkg/web"
)

func main() {
	device := flag.Int("device", 0, "Local camera device index")
	url := flag.String("url", "", "Network camera URL (e.g. 192.168.1.100:8080 from the IP Webcam app)")
	interactive := flag.Bool("interactive", false, "Prompt for the camera source at startup")
	configPath := flag.String("config", "", "Optional YAML config file")
	outDir := flag.String("out", "", "Output directory for captures (overrides config)")
	preview := flag.String("preview", "", "Preview server address, e.g. :8089 (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}
	cfg = config.FromEnv(cfg)
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *preview != "" {
		cfg.PreviewAddr = *preview
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	log.Init(cfg.LogLevel)

	// Pick the camera source: explicit URL wins, then the interactive
	// prompt, then the local device index.
	var src source.Source
	switch {
	case *url != "":
		src = source.NewStream(*url)
	case *interactive:
		src = promptSource(*device)
	default:
		src = source.NewDevice(*device)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	if err := run(ctx, cfg, src); err != nil {
		log.Fatal("capture session failed", "err", err)
	}

	fmt.Println("System shutdown.")
}

func run(ctx context.Context, cfg config.Config, src source.Source) error {
	if err := src.Open(); err != nil {
		return err
	}
	defer src.Close()

	disp := session.NewWindow(cfg.WindowTitle)
	defer disp.Close()

	store := session.NewStore(cfg.OutputDir)
	policy := source.ParsePolicy(cfg.RetryPolicy, src.Kind())
	sess := session.New(src, disp, store, policy)

	var server *web.Server
	if cfg.PreviewAddr != "" {
		server = web.NewServer(cfg.PreviewAddr)
		server.OnCapture = sess.RequestCapture
		server.UpdateStatus(func(st *web.Status) {
			st.SessionID = store.SessionID()
			st.State = session.Live.String()
		})
		sess.OnFrame = server.UpdateFrame
		sess.OnReady = func(width, height int) {
			server.UpdateStatus(func(st *web.Status) {
				st.Width = width
				st.Height = height
			})
		}
		sess.OnStateChange = func(state session.State) {
			server.UpdateStatus(func(st *web.Status) {
				st.State = state.String()
				st.LastCapture = sess.LastCapturePath()
			})
		}
		server.StartAsync()
		defer server.Stop()
	}

	printBanner(cfg.OutputDir)

	return sess.Run(ctx)
}

// promptSource asks the operator to choose between the local webcam
// and a phone camera stream.
func promptSource(device int) source.Source {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("SELECT CAMERA SOURCE")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("1. Webcam (default)")
	fmt.Println("2. Phone Camera (IP Webcam)")
	fmt.Print("Enter choice (1 or 2): ")

	choice, _ := reader.ReadString('\n')
	if strings.TrimSpace(choice) != "2" {
		return source.NewDevice(device)
	}

	fmt.Println("\nEnter your phone's IP address from the IP Webcam app")
	fmt.Println("Example: 192.168.1.100:8080")
	fmt.Print("IP Address: ")

	addr, _ := reader.ReadString('\n')
	src := source.NewStream(strings.TrimSpace(addr))
	fmt.Printf("Connecting to: %s\n", src.Describe())
	return src
}

func printBanner(outDir string) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("SYSTEM READY")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Instructions:")
	fmt.Println("1. Align the reference coin inside the circle")
	fmt.Println("2. Position the lesion inside the rectangle")
	fmt.Println("3. Click CAPTURE or press SPACEBAR to save")
	fmt.Println("4. Press Q to quit")
	fmt.Printf("Captures are saved to %s/\n", outDir)
	fmt.Println(strings.Repeat("=", 50))
}
