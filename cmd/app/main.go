package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"patient-record-client/internal/adapters"
	"patient-record-client/internal/config"
	"patient-record-client/internal/domain/dtos"
	"patient-record-client/internal/domain/repositories"
	"patient-record-client/internal/forms"
	"patient-record-client/internal/render"
	"patient-record-client/internal/services"
)

// app bundles the wired components of one patient page view.
type app struct {
	recordRepo repositories.PatientRecordRepositoryContract
	diagnoses  services.DiagnosisServiceContract
	alerts     services.AlertServiceContract
	submission services.SubmissionServiceContract
	logger     zerolog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	table, err := services.LoadDiagnoses(cfg.DiagnosesFile)
	if err != nil {
		return nil, err
	}

	recordRepo := repositories.NewInMemoryPatientRecordRepository()
	alerts := services.NewAlertService(cfg.AlertTTL())
	api := adapters.NewHTTPPatientAPI(cfg.BackendBaseURL, cfg.HTTPTimeout(), logger)
	submission := services.NewSubmissionService(api, recordRepo, alerts, logger)

	return &app{
		recordRepo: recordRepo,
		diagnoses:  services.NewDiagnosisService(table),
		alerts:     alerts,
		submission: submission,
		logger:     logger,
	}, nil
}

func (a *app) renderPage() {
	fmt.Print(render.PatientPage(a.recordRepo.Patient(), a.diagnoses, a.alerts.Message()))
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <patient-id>",
		Short: "Fetch a patient and print their record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.alerts.Stop()

			if err := a.submission.LoadPatient(context.Background(), args[0]); err != nil {
				return err
			}
			a.renderPage()
			return nil
		},
	}
}

func addEntryCmd() *cobra.Command {
	form := forms.NewAddEntryForm()

	cmd := &cobra.Command{
		Use:   "add-entry <patient-id>",
		Short: "Submit a new health check entry for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.alerts.Stop()

			ctx := context.Background()
			if err := a.submission.LoadPatient(ctx, args[0]); err != nil {
				return err
			}

			form.Open()
			form.Submit(func(payload dtos.NewEntry, afterSuccess func()) {
				a.submission.SubmitEntry(ctx, payload, afterSuccess)
			})

			a.renderPage()
			if msg := a.alerts.Message(); msg != "" {
				return fmt.Errorf("entry not added: %s", msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Description, "description", "", "entry description")
	cmd.Flags().StringVar(&form.Date, "date", "", "entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Specialist, "specialist", "", "attending specialist")
	cmd.Flags().StringVar(&form.HealthCheckRating, "rating", "", "health check rating (0-4)")
	cmd.Flags().StringVar(&form.DiagnosisCodes, "diagnosis-codes", "", "comma-separated diagnosis codes")
	return cmd
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "patient-record",
		Short: "Patient record client",
	}

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(addEntryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
