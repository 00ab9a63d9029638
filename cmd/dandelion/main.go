package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/MKhiriev/go-dandelion/internal/asset"
	"github.com/MKhiriev/go-dandelion/internal/config"
	myHTTP "github.com/MKhiriev/go-dandelion/internal/handler/http"
	"github.com/MKhiriev/go-dandelion/internal/logger"
	"github.com/MKhiriev/go-dandelion/internal/server"
	"github.com/MKhiriev/go-dandelion/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	flags, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	boot, err := config.LoadBootstrap()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewStderrLogger("dandelion-cli", boot.LogLevel)
	buildInfo := printBuildInfo(os.Stderr)

	if err := flags.ApplySystemProperties(); err != nil {
		log.Fatal().Err(err).Msg("error setting system properties")
	}

	user, err := config.LoadUserProperties(flags.PropertiesFile, flags.User)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading user properties")
	}

	cfg, err := config.FromProcess(flags.InitParams, user, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configuration")
	}

	address := flags.ServeAddress.String()
	if address == "" {
		if err := printConfiguration(os.Stdout, cfg); err != nil {
			log.Fatal().Err(err).Msg("error printing configuration")
		}
		return
	}

	manifest, err := asset.LoadManifest(flags.AssetsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading asset manifest")
	}

	srv, err := server.NewServer(newRouter(cfg, manifest, buildInfo, log), address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}
	srv.RunServer()
}

// newRouter wires the diagnostics endpoints over cfg and the assets declared
// by manifest.
func newRouter(cfg *config.Configuration, manifest *asset.Manifest, buildInfo models.AppBuildInfo, log *logger.Logger) http.Handler {
	resolver := asset.NewResolver(cfg, log, manifest.Locators()...)
	return myHTTP.NewHandler(cfg, resolver, manifest.Registry(), buildInfo, log).Init()
}

func printBuildInfo(w io.Writer) models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printConfiguration(w io.Writer, cfg *config.Configuration) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(myHTTP.NewConfigurationResponse(cfg, config.Catalog()))
}
