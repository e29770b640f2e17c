package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jengzang/shadowside-backend-go/internal/api"
	"github.com/jengzang/shadowside-backend-go/internal/config"
	"github.com/jengzang/shadowside-backend-go/internal/handler"
	"github.com/jengzang/shadowside-backend-go/internal/logger"
	"github.com/jengzang/shadowside-backend-go/internal/models"
	"github.com/jengzang/shadowside-backend-go/internal/render"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	From     string `short:"f" long:"from"     description:"Start location, place name or \"lat,lon\"" required:"true"`
	To       string `short:"t" long:"to"       description:"End location, place name or \"lat,lon\""   required:"true"`
	At       string `short:"a" long:"at"       description:"Departure time (RFC3339 or 2006-01-02T15:04). Defaults to now"`
	Timezone string `short:"z" long:"timezone" description:"IANA timezone for --at without offset" default:"Local"`
	Format   string `short:"o" long:"format"   description:"Output format" choice:"text" choice:"json" choice:"yaml" choice:"geojson" default:"text"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to YAML configuration file"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts Options, w io.Writer) error {
	travelTime, err := handler.ParseTravelTime(opts.At, opts.Timezone)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return err
	}
	if opts.ConfigFile == "" && os.Getenv("DB_PATH") == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			cfg.DBPath = filepath.Join(dir, "shadeside", "geocode.db")
		}
	}

	app, err := api.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := app.Shadow.Analyze(ctx, models.AnalysisRequest{
		Start:      opts.From,
		End:        opts.To,
		TravelTime: travelTime,
	})
	if err != nil {
		return err
	}

	return write(w, opts.Format, result)
}

func write(w io.Writer, format string, result *models.AnalysisResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(result)
	case "geojson":
		data, err := render.FeatureCollection(result).MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return render.WriteText(w, result)
	}
}
