package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"main/internal/ops"
	"main/internal/quote"
	"main/internal/store"
	"main/pkg/exception"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to JSON config")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "quoted",
			ServerAddress:   *pyroscopeAddr,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileInuseObjects,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() { _ = profiler.Stop() }()
	}

	db, err := store.Open(loaded.DB)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	bars := store.NewBars(db, loaded.Lookback)
	if err := bars.Migrate(); err != nil {
		log.Fatalf("bar migration failed: %v", err)
	}

	scheduler, err := quote.NewScheduler(loaded.Quote, quote.NewClock(), bars)
	if err != nil {
		log.Fatalf("scheduler init failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logs.Errorf("scheduler stopped, err: %+v", err)
		}
	}()

	logs.Infof("quoted started, universe: %d symbols", len(loaded.Quote.Universe))

	stream := scheduler.Stream()
	for {
		select {
		case <-sys.Shutdown():
			logs.Info("shutdown signal received")
			return
		case <-ctx.Done():
			return
		default:
		}

		tick, err := stream.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, exception.ErrStreamClosed) {
				return
			}
			logs.Errorf("stream read failed, err: %+v", err)
			return
		}
		logs.Infof("fresh bar %s @ %s close=%s volume=%s",
			tick.Symbol,
			tick.Bar.BarTime.Format("2006-01-02 15:04"),
			tick.Bar.Close.String(),
			tick.Bar.Volume.String(),
		)
	}
}
