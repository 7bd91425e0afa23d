package main

import (
	"context"
	"errors"
	"fmt"

	"aquaops/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the DynamoDB tables",
}

var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create all tables and indexes (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ddb := database.ConnectDynamoDB()
		ctx := cmd.Context()

		for _, spec := range tableSpecs() {
			if err := createTable(ctx, ddb, spec); err != nil {
				return fmt.Errorf("create table %s: %w", spec.name, err)
			}
		}
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesCreateCmd)
}

// tableSpec describes one table: the PK is always a string attribute named
// id; gsiRange is empty for hash-only indexes.
type tableSpec struct {
	name     string
	gsiName  string
	gsiHash  string
	gsiRange string
}

func tableSpecs() []tableSpec {
	return []tableSpec{
		{name: getenvDefault("CUSTOMERS_TABLE", "customers")},
		{name: getenvDefault("PROPERTIES_TABLE", "properties"), gsiName: "customer_id-index", gsiHash: "customer_id"},
		{name: getenvDefault("POOLS_TABLE", "pools"), gsiName: "property_id-index", gsiHash: "property_id"},
		{name: getenvDefault("ESTIMATES_TABLE", "estimates"), gsiName: "customer_id-index", gsiHash: "customer_id"},
		{name: getenvDefault("COMMUNICATIONS_TABLE", "communications"), gsiName: "customer_id-occurred_at-index", gsiHash: "customer_id", gsiRange: "occurred_at"},
		{name: getenvDefault("APPOINTMENTS_TABLE", "appointments")},
		{name: getenvDefault("PAYMENTS_TABLE", "payments"), gsiName: "estimate_id-index", gsiHash: "estimate_id"},
	}
}

func createTable(ctx context.Context, ddb *dynamodb.Client, spec tableSpec) error {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}

	if spec.gsiName != "" {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(spec.gsiHash),
			AttributeType: types.ScalarAttributeTypeS,
		})
		keySchema := []types.KeySchemaElement{
			{AttributeName: aws.String(spec.gsiHash), KeyType: types.KeyTypeHash},
		}
		if spec.gsiRange != "" {
			attrs = append(attrs, types.AttributeDefinition{
				AttributeName: aws.String(spec.gsiRange),
				AttributeType: types.ScalarAttributeTypeS,
			})
			keySchema = append(keySchema, types.KeySchemaElement{
				AttributeName: aws.String(spec.gsiRange),
				KeyType:       types.KeyTypeRange,
			})
		}
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{
			{
				IndexName:  aws.String(spec.gsiName),
				KeySchema:  keySchema,
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		}
	}
	in.AttributeDefinitions = attrs

	_, err := ddb.CreateTable(ctx, in)
	if err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			fmt.Printf("table %s already exists\n", spec.name)
			return nil
		}
		return err
	}

	fmt.Printf("created table %s\n", spec.name)
	return nil
}
