package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	attrItem     = "item"
	attrExchange = "exchange"

	// batchWriteLimit is the DynamoDB cap on requests per BatchWriteItem call.
	batchWriteLimit   = 25
	maxUnprocessedTry = 5
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Client reads and writes the exchange table. Each row is keyed by "item" and
// carries the spoken "exchange" text.
type Client struct {
	api       dynamodbAPI
	tableName string
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

// LoadExchanges scans the whole table, following pagination, and returns
// item name to exchange text.
func (c *Client) LoadExchanges(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	var startKey map[string]types.AttributeValue
	for {
		page, err := c.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(c.tableName),
			ProjectionExpression:     aws.String("#item, #exchange"),
			ExpressionAttributeNames: map[string]string{"#item": attrItem, "#exchange": attrExchange},
			ExclusiveStartKey:        startKey,
			ConsistentRead:           aws.Bool(true),
		})
		if err != nil {
			return nil, fmt.Errorf("repository: LoadExchanges scan: %w", err)
		}
		for _, row := range page.Items {
			name, value, err := itemToExchange(row)
			if err != nil {
				return nil, fmt.Errorf("repository: LoadExchanges decode: %w", err)
			}
			out[name] = value
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

// PutExchanges writes entries in batches, resubmitting unprocessed writes a
// bounded number of times.
func (c *Client) PutExchanges(ctx context.Context, entries map[string]string) error {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for start := 0; start < len(names); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(names))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, name := range names[start:end] {
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: exchangeItem(name, entries[name])},
			})
		}
		if err := c.writeBatch(ctx, reqs); err != nil {
			return fmt.Errorf("repository: PutExchanges: %w", err)
		}
	}
	return nil
}

func (c *Client) writeBatch(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{c.tableName: reqs}
	for attempt := 0; attempt < maxUnprocessedTry; attempt++ {
		out, err := c.api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return fmt.Errorf("batch write: %w", err)
		}
		if out == nil || len(out.UnprocessedItems[c.tableName]) == 0 {
			return nil
		}
		pending = map[string][]types.WriteRequest{c.tableName: out.UnprocessedItems[c.tableName]}
	}
	return fmt.Errorf("batch write: %d items still unprocessed", len(pending[c.tableName]))
}

func itemToExchange(row map[string]types.AttributeValue) (string, string, error) {
	name, err := strAttr(row, attrItem)
	if err != nil {
		return "", "", err
	}
	value, err := strAttr(row, attrExchange)
	if err != nil {
		return "", "", err
	}
	return name, value, nil
}

func exchangeItem(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrItem:     &types.AttributeValueMemberS{Value: name},
		attrExchange: &types.AttributeValueMemberS{Value: value},
	}
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}
