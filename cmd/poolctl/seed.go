package main

import (
	"fmt"
	"time"

	"aquaops/internal/adapter/persistence/repository"
	"aquaops/internal/domain/patch"
	"aquaops/internal/infrastructure/database"
	"aquaops/internal/usecase"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small demo data set",
	Long:  `Seed creates one demo customer with a property, a pool, a draft estimate, an upcoming appointment and a logged call. Tables must exist ("poolctl tables create").`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ddb := database.ConnectDynamoDB()
		ctx := cmd.Context()

		customerRepo := repository.NewCustomerDynamoRepository(ddb)
		propertyRepo := repository.NewPropertyDynamoRepository(ddb)
		poolRepo := repository.NewPoolDynamoRepository(ddb)
		estimateRepo := repository.NewEstimateDynamoRepository(ddb)
		communicationRepo := repository.NewCommunicationDynamoRepository(ddb)
		appointmentRepo := repository.NewAppointmentDynamoRepository(ddb)

		customers := usecase.NewCustomerUseCase(customerRepo)
		properties := usecase.NewPropertyUseCase(propertyRepo, customerRepo)
		pools := usecase.NewPoolUseCase(poolRepo, propertyRepo)
		estimates := usecase.NewEstimateUseCase(estimateRepo, customerRepo, poolRepo)
		communications := usecase.NewCommunicationUseCase(communicationRepo, customerRepo)
		appointments := usecase.NewAppointmentUseCase(appointmentRepo, customerRepo, propertyRepo)

		customer, err := customers.Create(ctx, usecase.CreateCustomerInput{
			Name:       "Dana Rivers",
			Phone:      "(555) 123-4567",
			Email:      "dana@example.com",
			LeadSource: "referral",
		})
		if err != nil {
			return fmt.Errorf("seed customer: %w", err)
		}
		fmt.Printf("customer %s\n", customer.ID)

		property, err := properties.Create(ctx, usecase.CreatePropertyInput{
			CustomerID:   customer.ID,
			AddressLine1: "742 Lakeview Dr",
			City:         "Austin",
			State:        "TX",
			Zip:          "78701",
			GateCode:     "1234",
			AccessNotes:  "Dog in backyard; text before arriving.",
		})
		if err != nil {
			return fmt.Errorf("seed property: %w", err)
		}
		fmt.Printf("property %s\n", property.ID)

		pool, err := pools.Create(ctx, usecase.CreatePoolInput{
			PropertyID:     property.ID,
			Type:           "inground",
			Surface:        "plaster",
			LengthFt:       patch.Number{Value: 32, Set: true},
			WidthFt:        patch.Number{Value: 16, Set: true},
			ShallowDepthFt: patch.Number{Value: 3.5, Set: true},
			DeepDepthFt:    patch.Number{Value: 9, Set: true},
			EquipmentNotes: "Pentair pump, sand filter.",
		})
		if err != nil {
			return fmt.Errorf("seed pool: %w", err)
		}
		fmt.Printf("pool %s (%d gal)\n", pool.ID, pool.VolumeGallons)

		estimate, err := estimates.Create(ctx, usecase.CreateEstimateInput{
			CustomerID: customer.ID,
			PoolID:     pool.ID,
			Items: []usecase.LineItemInput{
				{Description: "Weekly cleaning (monthly)", Quantity: patch.Number{Value: 1, Set: true}, UnitPriceCents: patch.Int{Value: 20000, Set: true}},
				{Description: "Filter cartridge", Quantity: patch.Number{Value: 2, Set: true}, UnitPriceCents: patch.Int{Value: 4500, Set: true}},
			},
			TaxRate:    patch.Number{Value: 0.0825, Set: true},
			Notes:      "Includes chemicals.",
			ValidUntil: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		})
		if err != nil {
			return fmt.Errorf("seed estimate: %w", err)
		}
		fmt.Printf("estimate %s (total %d cents)\n", estimate.ID, estimate.TotalCents)

		nextMonday := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour).Add(14 * time.Hour)
		appointment, err := appointments.Create(ctx, usecase.CreateAppointmentInput{
			CustomerID: customer.ID,
			PropertyID: property.ID,
			Service:    "estimate_visit",
			StartsAt:   nextMonday.Format(time.RFC3339),
			EndsAt:     nextMonday.Add(time.Hour).Format(time.RFC3339),
			Notes:      "Walk the property, measure the pool.",
		})
		if err != nil {
			return fmt.Errorf("seed appointment: %w", err)
		}
		fmt.Printf("appointment %s\n", appointment.ID)

		communication, err := communications.Log(ctx, usecase.LogCommunicationInput{
			CustomerID: customer.ID,
			Type:       "call",
			Direction:  "inbound",
			Summary:    "Asked for a weekly service quote; scheduled a visit.",
			LoggedBy:   "admin",
		})
		if err != nil {
			return fmt.Errorf("seed communication: %w", err)
		}
		fmt.Printf("communication %s\n", communication.ID)

		return nil
	},
}
