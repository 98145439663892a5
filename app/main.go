package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/themer/app/server"
)

var opts struct {
	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"10s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"30s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /themer)"`
	} `group:"server" namespace:"server" env-namespace:"THEMER_SERVER"`

	Cookie struct {
		MaxAge time.Duration `long:"max-age" env:"MAX_AGE" default:"8760h" description:"theme cookie lifetime"`
		Secure bool          `long:"secure" env:"SECURE" description:"send theme cookie over https only"`
	} `group:"cookie" namespace:"cookie" env-namespace:"THEMER_COOKIE"`

	Limits struct {
		BodySize       int64 `long:"body-size" env:"BODY_SIZE" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec int64 `long:"rps" env:"RPS" default:"1000" description:"max concurrent requests"`
	} `group:"limits" namespace:"limits" env-namespace:"THEMER_LIMITS"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("themer %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting themer server on %s", opts.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	srv, err := server.New(server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		CookieMaxAge:    opts.Cookie.MaxAge,
		SecureCookies:   opts.Cookie.Secure,
		BodySizeLimit:   opts.Limits.BodySize,
		RequestsPerSec:  opts.Limits.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// validateBaseURL normalizes the base URL to "/path" form without trailing slash, empty means root.
func validateBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" || baseURL == "/" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	if strings.ContainsAny(baseURL, "?#") {
		return "", fmt.Errorf("base URL must be a plain path, got %q", baseURL)
	}
	return strings.TrimRight(baseURL, "/"), nil
}

func setupLogs(debug bool) {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
