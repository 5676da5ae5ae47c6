package main

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/drivers/database"
	"mediconnect-service/internal/app/drivers/logger"
	"mediconnect-service/internal/app/seed"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/app/services/core/users"
	"mediconnect-service/internal/pkg/constvars"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mediconnect-seed",
		Short: "Database tooling for the MediConnect API",
	}
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	client         *mongo.Client
	db             *mongo.Database
	log            *logrus.Logger
}

func setup() *env {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	client := database.NewMongoDB(driverConfig)
	return &env{
		driverConfig:   driverConfig,
		internalConfig: internalConfig,
		client:         client,
		db:             client.Database(driverConfig.MongoDB.DbName),
		log:            logger.NewLogrusLogger(driverConfig, internalConfig),
	}
}

func (e *env) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.client.Disconnect(ctx); err != nil {
		e.log.WithError(err).Warn("Failed to disconnect from MongoDB")
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the MongoDB indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := setup()
			defer e.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := database.EnsureIndexes(ctx, e.db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			e.log.Info("Indexes are up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo doctors, patients and appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			reset, _ := cmd.Flags().GetBool("reset")

			e := setup()
			defer e.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			if reset {
				for _, name := range []string{
					constvars.MongoCollectionAppointments,
					constvars.MongoCollectionDoctorProfiles,
					constvars.MongoCollectionPatientProfiles,
					constvars.MongoCollectionUsers,
				} {
					result, err := e.db.Collection(name).DeleteMany(ctx, bson.M{})
					if err != nil {
						return fmt.Errorf("clear %s: %w", name, err)
					}
					e.log.WithFields(logrus.Fields{"collection": name, "deleted": result.DeletedCount}).Info("Cleared collection")
				}
			}

			if err := database.EnsureIndexes(ctx, e.db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}

			dbName := e.driverConfig.MongoDB.DbName
			seeder := seed.NewSeeder(
				users.NewUserMongoRepository(e.client, dbName),
				users.NewProfileMongoRepository(e.client, dbName),
				appointments.NewAppointmentMongoRepository(e.client, dbName),
				e.internalConfig.Booking.MeetingBaseUrl,
				e.log,
			)
			summary, err := seeder.Run(ctx)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			e.log.WithFields(logrus.Fields{
				"doctors":      summary.Doctors,
				"patients":     summary.Patients,
				"appointments": summary.Appointments,
			}).Info("Seed complete")
			e.log.Infof("Doctor accounts use password %s, patient accounts use %s", seed.DoctorPassword, seed.PatientPassword)
			return nil
		},
	}
	cmd.Flags().Bool("reset", false, "delete existing users, profiles and appointments first")
	return cmd
}
