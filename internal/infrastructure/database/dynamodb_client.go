package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	log "github.com/sirupsen/logrus"

	"autoservice/internal/infrastructure/config"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
// A non-empty Endpoint points the client at a local DynamoDB
// (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDB) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Errorf("[database] failed to create dynamodb config err=%v", err)
		return nil, err
	}

	var opts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
		log.Infof("[database] using custom dynamodb endpoint=%s", endpoint)
	}
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func NewAWSConfig(ctx context.Context, cfg config.DynamoDB) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		defaultString(cfg.AccessKeyID, "local"),
		defaultString(cfg.SecretAccessKey, "local"),
		"",
	)

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
