// Command exchange-seed writes an exchange table into DynamoDB so the skill can
// load it at startup with EXCHANGE_TABLE.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"keto-calculator/internal/exchange"
	"keto-calculator/internal/repository"
)

var cli struct {
	Table  string `help:"DynamoDB table to write to." required:"" env:"EXCHANGE_TABLE"`
	File   string `help:"JSON object of item name to exchange text. Defaults to the embedded table." type:"existingfile"`
	DryRun bool   `help:"Validate and count entries without writing."`
}

func main() {
	kctx := kong.Parse(&cli, kong.Description("Seed the keto exchange table."))
	ctx := context.Background()

	table, err := readTable(cli.File)
	kctx.FatalIfErrorf(err)
	slog.Info("exchange table read", "items", table.Len(), "file", cli.File)
	if cli.DryRun {
		return
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	kctx.FatalIfErrorf(err)
	repo, err := repository.New(awsdynamodb.NewFromConfig(cfg), cli.Table)
	kctx.FatalIfErrorf(err)
	kctx.FatalIfErrorf(repo.PutExchanges(ctx, table.Entries()))
	slog.Info("exchange table written", "table", cli.Table, "items", table.Len())
}

func readTable(path string) (*exchange.Table, error) {
	if path == "" {
		return exchange.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return exchange.LoadJSON(f)
}
