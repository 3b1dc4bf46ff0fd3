package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gousb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/example/riingctl/internal/config"
	"github.com/example/riingctl/internal/device"
	"github.com/example/riingctl/internal/driver"
	"github.com/example/riingctl/internal/effects"
)

func main() {
	var (
		configPath = flag.String("config", "/etc/riingctl/config.yaml", "path to config.yaml")
		debug      = flag.Bool("debug", false, "enable debug logging")
		save       = flag.Bool("save", false, "save the profile to controller NVRAM on shutdown")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
	}
	if len(cfg.Controllers) == 0 {
		log.Fatal().Msg("no controllers configured")
	}

	ctx := gousb.NewContext()
	defer ctx.Close()

	var controllers []*driver.Controller
	var devices []*device.Device
	for _, cc := range cfg.Controllers {
		model, err := driver.ParseModel(cc.Model)
		if err != nil {
			log.Fatal().Err(err).Msg("bad controller config")
		}
		ctrl, err := driver.Open(ctx, model, cc.Unit)
		if err != nil {
			log.Fatal().Err(err).Str("model", cc.Model).Int("unit", cc.Unit).Msg("controller open failed")
		}
		defer ctrl.Close()
		controllers = append(controllers, ctrl)
		log.Info().Str("model", cc.Model).Int("unit", cc.Unit).Msg("controller ready")

		ports := cc.Devices
		if len(ports) == 0 {
			ports = []config.Attached{{Port: 1, LEDs: config.DefaultLEDs}}
		}
		for _, p := range ports {
			devices = append(devices, device.New(ctrl, model, p.Port, p.LEDs))
		}
	}

	effect := effects.Factory(effects.Config(cfg.Lighting))
	if effect == nil {
		log.Warn().Msg("no lighting effect configured; leaving controllers as-is")
	} else {
		for _, d := range devices {
			effect.AttachDevice(d)
		}
		if err := effect.Start(); err != nil {
			log.Fatal().Err(err).Str("model", effect.Model()).Msg("effect start failed")
		}
		log.Info().Str("model", effect.Model()).Int("devices", len(devices)).Msg("lighting running")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Str("signal", s.String()).Msg("shutting down")

	if effect != nil {
		effect.Stop()
	}
	if *save {
		for _, ctrl := range controllers {
			if err := ctrl.SaveProfile(); err != nil {
				log.Warn().Err(err).Msg("profile save failed")
			}
		}
	}
}
