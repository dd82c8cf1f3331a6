package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"weather-lookup/internal/api"
	"weather-lookup/internal/chart"
	"weather-lookup/internal/config"
	"weather-lookup/internal/history"
	"weather-lookup/internal/models"
	"weather-lookup/internal/services"
	"weather-lookup/internal/storage"

	flag "github.com/spf13/pflag"
)

func main() {
	city := flag.StringP("city", "c", "", "city to look up")
	unitFlag := flag.StringP("unit", "u", "", `unit system: "metric", "imperial" or empty for Kelvin`)
	showHistory := flag.BoolP("history", "H", false, "print recent searches and exit")
	wait := flag.BoolP("wait", "w", true, "wait for the forecast chart")
	dbPath := flag.String("db", "", "history database file (default $HISTORY_DB_PATH or ~/.weather/history.db)")
	flag.Parse()

	cfg := config.Load()
	if *dbPath == "" {
		*dbPath = cfg.HistoryDBPath
	}

	if *city == "" && flag.NArg() > 0 {
		*city = strings.Join(flag.Args(), " ")
	}

	ctx := context.Background()

	store, err := storage.NewSQLite(*dbPath)
	if err != nil {
		log.Fatalf("Open history %s: %v", *dbPath, err)
	}
	defer store.Close()

	hist := history.New(store)
	hist.Load(ctx)

	if *showHistory {
		for _, term := range hist.Recent() {
			fmt.Println(term)
		}
		return
	}

	if strings.TrimSpace(*city) == "" {
		fmt.Fprintln(os.Stderr, "usage: weather --city NAME [--unit metric|imperial]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	unit, err := models.ParseUnit(*unitFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	svc := services.NewWeatherService(api.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL), hist, nil, cfg.ForecastPoints)

	res := svc.Query(ctx, strings.TrimSpace(*city), unit)
	if res.Err != nil {
		fmt.Println(services.NoCityFound)
		store.Close()
		os.Exit(1)
	}
	printWeather(res.Weather)

	if !*wait {
		return
	}
	f, err := res.Forecast(ctx)
	if err != nil {
		return
	}
	if graph := chart.Render(f, 10); graph != "" {
		fmt.Println()
		fmt.Println(graph)
	}
}

func printWeather(w *models.Weather) {
	sym := w.Unit.Symbol()
	fmt.Println(w.City)
	if icon := w.IconURL(); icon != "" {
		fmt.Println(icon)
	}
	fmt.Printf("Temperature: %.0f%s (feels like %.0f%s)\n", math.Round(w.Temp), sym, math.Round(w.FeelsLike), sym)
	fmt.Println(w.Description)
	fmt.Printf("Humidity: %d%%\n", w.Humidity)
	fmt.Printf("Wind: %.1f %s\n", w.WindSpeed, w.Unit.SpeedUnit())
}
