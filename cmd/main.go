// inputwire - native input event stream
// Replays native input through the event adapter into a binary frame
// stream, and decodes such streams for inspection.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inputwire/internal/api"
	"inputwire/internal/channel"
	"inputwire/internal/config"
	"inputwire/internal/host"
	"inputwire/internal/input"
	"inputwire/internal/keymap"
	"inputwire/internal/protocol"
)

var (
	version    = "0.1.0"
	configPath = flag.String("config", "", "Config file (default: per-user config dir)")
	replay     = flag.String("replay", "", "Replay a JSON-lines native event script (\"-\" for stdin)")
	dump       = flag.String("dump", "", "Decode a frame stream (\"-\" for stdin)")
	jsonOut    = flag.Bool("json", false, "Print decoded frames as JSON lines")
	dest       = flag.String("dest", "", "Output destination: file path, \"-\" for stderr")
	desc       = flag.String("desc", "", "Description sent in connect/disconnect frames")
	keepAlive  = flag.Int("keepalive", 0, "Seconds of inactivity before a keep-alive frame")
	omitNames  = flag.Bool("omit-key-names", false, "Send empty key names")
	wheelDelta = flag.Bool("wheel-delta", false, "Append scroll amounts to wheel frames")
	monitor    = flag.Bool("monitor", false, "Serve decoded frames over WebSocket while dumping")
	port       = flag.Int("port", 0, "Monitor port")
	saveConfig = flag.Bool("save-config", false, "Write the effective configuration to the config file and exit")
	showVer    = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("inputwire version %s\n", version)
		return
	}

	routeLogs(*dest)
	cfgMgr, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := cfgMgr.Get()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	routeLogs(cfg.Destination)

	if *saveConfig {
		if err := persistConfig(cfgMgr, cfg); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *dump != "":
		err = runDump(ctx, cfg, *dump)
	case *replay != "":
		err = runReplay(ctx, cfg, *replay)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("%v", err)
	}
}

func loadConfig() (*config.Manager, error) {
	var cfgMgr *config.Manager
	if *configPath != "" {
		cfgMgr = config.NewManagerAt(*configPath)
	} else {
		m, err := config.NewManager()
		if err != nil {
			return nil, err
		}
		cfgMgr = m
	}
	if err := cfgMgr.Load(); err != nil {
		log.Printf("Warning: failed to load config: %v", err)
	}
	return cfgMgr, nil
}

// routeLogs moves log output to stdout when a replay writes its frame
// stream to stderr.
func routeLogs(destination string) {
	if *replay == "" {
		return
	}
	if channel.ParseDestination(destination).Kind == channel.KindDiagnostic {
		log.SetOutput(os.Stdout)
	}
}

func persistConfig(m *config.Manager, cfg *config.Config) error {
	m.Set(cfg)
	if err := m.Save(); err != nil {
		return err
	}
	log.Printf("Config: Saved to %s", m.Path())
	return nil
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dest":
			cfg.Destination = *dest
		case "desc":
			cfg.Description = *desc
		case "keepalive":
			cfg.KeepAliveSeconds = *keepAlive
		case "omit-key-names":
			cfg.OmitKeyNames = *omitNames
		case "wheel-delta":
			cfg.WheelDelta = *wheelDelta
		case "monitor":
			cfg.Monitor.Enabled = *monitor
		case "port":
			cfg.Monitor.Port = *port
		}
	})
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func runReplay(ctx context.Context, cfg *config.Config, path string) error {
	f, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	src, err := input.NewScriptSource(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read script %s: %w", path, err)
	}
	log.Printf("Replay: Loaded %d steps from %s", src.Len(), path)

	ch := channel.New(
		channel.WithDescription(cfg.Description),
		channel.WithLogOutput(os.Stdout),
		channel.WithEncoder(protocol.Encoder{
			OmitKeyNames: cfg.OmitKeyNames,
			WheelDelta:   cfg.WheelDelta,
		}),
	)
	// An unusable destination only disables the stream.
	_ = ch.Open(cfg.Destination)

	h := host.New(ch, host.Options{
		KeepAlive:       cfg.KeepAlive(),
		StopWhenDrained: true,
	})
	err = h.Run(ctx, src)

	st := ch.Stats()
	log.Printf("Replay: Wrote %d frames (%d bytes)", st.Frames, st.Bytes)
	return err
}

func runDump(ctx context.Context, cfg *config.Config, path string) error {
	f, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	defer f.Close()

	var srv *api.Server
	if cfg.Monitor.Enabled {
		srv = api.NewServer(cfg.Monitor.Token)
		go func() {
			if err := srv.Start(cfg.Monitor.Port); err != nil {
				log.Printf("Monitor error: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	out := os.Stdout
	enc := json.NewEncoder(out)
	r := protocol.NewReader(f)
	var seq uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", seq+1, err)
		}
		seq++

		if srv != nil {
			srv.Publish(ev)
		}
		if *jsonOut {
			if err := enc.Encode(protocol.NewMessage(seq, ev)); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, formatEvent(seq, ev))
	}

	if srv != nil {
		// keep serving the finished stream until interrupted
		log.Printf("Dump: %d frames decoded, monitor still running (Ctrl+C to quit)", seq)
		<-ctx.Done()
	}
	return nil
}

func formatEvent(seq uint64, ev protocol.Event) string {
	switch v := ev.(type) {
	case protocol.Keyboard:
		state := "up"
		if v.Pressed {
			state = "down"
		}
		return fmt.Sprintf("%6d %-16s %s %s name=%q mods=%s scancode=%d",
			seq, v.Tag(), state, keymap.KeyName(keymap.Keycode(v.Symbol)), v.Name,
			keymap.Modifiers(v.Modifiers), v.Scancode)
	case protocol.InputText:
		return fmt.Sprintf("%6d %-16s %q", seq, v.Tag(), v.Text)
	case protocol.KeepAlive:
		return fmt.Sprintf("%6d %s", seq, v.Tag())
	}
	return fmt.Sprintf("%6d %-16s %+v", seq, ev.Tag(), ev)
}
