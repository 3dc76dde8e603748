package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mrled/suns/roster/internal/model"
	"github.com/mrled/suns/roster/internal/repository/dynamorepo"
	"github.com/mrled/suns/roster/internal/repository/memrepo"
)

// RepositoryConfig holds configuration for creating a repository
type RepositoryConfig struct {
	// FilePath for flat-file persistence (ignored when DynamoTable is set)
	FilePath string

	// DynamoTable is the DynamoDB table name for persistence
	DynamoTable string

	// DynamoEndpoint is an optional custom DynamoDB endpoint URL
	DynamoEndpoint string

	// RejectDuplicateRolls refuses to add a roll that is already stored
	RejectDuplicateRolls bool

	// Logger for repository diagnostics; defaults to slog.Default()
	Logger *slog.Logger
}

// NewRepository creates a StudentRepository based on the provided configuration.
// It returns an error if neither file nor DynamoDB configuration is provided,
// or if repository creation fails.
//
// A file repository that could not read its existing backing file is still
// returned; the failure has already been logged and is available from LoadErr.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (model.StudentRepository, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	if cfg.DynamoTable != "" {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		var client *dynamodb.Client
		if cfg.DynamoEndpoint != "" {
			client = dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
				o.BaseEndpoint = &cfg.DynamoEndpoint
			})
			log.Info("Using DynamoDB endpoint", slog.String("endpoint", cfg.DynamoEndpoint))
		} else {
			client = dynamodb.NewFromConfig(awsCfg)
		}

		log.Info("Using DynamoDB table", slog.String("table", cfg.DynamoTable))
		return dynamorepo.NewDynamoRepository(client, cfg.DynamoTable, cfg.RejectDuplicateRolls), nil
	}

	if cfg.FilePath != "" {
		repo := memrepo.NewMemoryRepositoryWithPersistence(memrepo.Config{
			Path:                 cfg.FilePath,
			RejectDuplicateRolls: cfg.RejectDuplicateRolls,
			Logger:               log,
		})
		log.Info("Using flat-file persistence", slog.String("path", cfg.FilePath))
		return repo, nil
	}

	return nil, fmt.Errorf("must specify either FilePath or DynamoTable in repository configuration")
}
