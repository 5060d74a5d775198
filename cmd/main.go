package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"keto-calculator/handler"
	"keto-calculator/internal/exchange"
	"keto-calculator/internal/integrations/paramstore"
	"keto-calculator/internal/repository"
	"keto-calculator/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(os.Getenv("LOG_LEVEL"))})))
	appID := os.Getenv("APP_ID")
	appIDParam := os.Getenv("APP_ID_PARAM")
	exchangeTable := os.Getenv("EXCHANGE_TABLE")
	if appID == "" && appIDParam == "" {
		slog.Error("one of APP_ID or APP_ID_PARAM must be set")
		os.Exit(1)
	}

	// ---- AWS SDK config, only when a remote source is configured ----
	var cfg aws.Config
	if appID == "" || exchangeTable != "" {
		var err error
		cfg, err = config.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load AWS config", "err", err)
			os.Exit(1)
		}
	}

	if appID == "" {
		params, err := paramstore.New(awsssm.NewFromConfig(cfg))
		if err != nil {
			slog.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
		appID, err = params.GetParameter(ctx, appIDParam)
		if err != nil {
			slog.Error("failed to load application id", "param", appIDParam, "err", err)
			os.Exit(1)
		}
	}

	// ---- Exchange table, loaded once before any request ----
	table, err := loadTable(ctx, cfg, exchangeTable)
	if err != nil {
		slog.Error("failed to load exchange table", "err", err)
		os.Exit(1)
	}
	slog.Info("exchange table loaded", "items", table.Len(), "source", tableSource(exchangeTable))

	// ---- Handler ----
	resolver, err := exchange.NewResolver(table)
	if err != nil {
		slog.Error("failed to create resolver", "err", err)
		os.Exit(1)
	}
	router, err := usecase.NewRouter(resolver)
	if err != nil {
		slog.Error("failed to create router", "err", err)
		os.Exit(1)
	}
	h, err := handler.NewHandler(router, appID)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

func loadTable(ctx context.Context, cfg aws.Config, tableName string) (*exchange.Table, error) {
	if tableName == "" {
		return exchange.Default()
	}
	repo, err := repository.New(awsdynamodb.NewFromConfig(cfg), tableName)
	if err != nil {
		return nil, err
	}
	entries, err := repo.LoadExchanges(ctx)
	if err != nil {
		return nil, err
	}
	return exchange.NewTable(entries)
}

func tableSource(tableName string) string {
	if tableName == "" {
		return "embedded"
	}
	return "dynamodb:" + tableName
}

func logLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
