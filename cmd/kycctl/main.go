package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/i-fetch/p2pvault/internal/handlers"
	"github.com/i-fetch/p2pvault/internal/logger"
	"github.com/i-fetch/p2pvault/internal/ocr"
	"github.com/i-fetch/p2pvault/internal/statuscache"
	"github.com/i-fetch/p2pvault/internal/upload"
	"github.com/i-fetch/p2pvault/internal/verification"
	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

var (
	idType    string
	frontPath string
	backPath  string
	withOCR   bool
)

var rootCmd = &cobra.Command{
	Use:   "kycctl",
	Short: "Drive the p2pvault KYC submission workflow from the command line",
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Upload both document images and submit the verification request",
	RunE: func(cmd *cobra.Command, _ []string) error {
		wf, _, err := buildWorkflow(newConfig())
		if err != nil {
			return err
		}

		draft := &kycflow.Draft{IDType: idType}
		front, err := readAttachment(frontPath)
		if err != nil {
			return err
		}
		if err := draft.AttachFront(front); err != nil {
			return fmt.Errorf("%s: %w", frontPath, err)
		}
		back, err := readAttachment(backPath)
		if err != nil {
			return err
		}
		if err := draft.AttachBack(back); err != nil {
			return fmt.Errorf("%s: %w", backPath, err)
		}

		// best effort; a failed status read does not gate submission
		if _, err := wf.FetchStatus(cmd.Context()); err != nil {
			fmt.Fprintln(os.Stderr, kycflow.UserMessage(err))
		}
		result, err := wf.Submit(cmd.Context(), draft)
		if err != nil {
			fmt.Fprintln(os.Stderr, kycflow.UserMessage(err))
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("front: %s\nback: %s\nstatus: %s\n", result.FrontURL, result.BackURL, result.Status.Status)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch and print the current verification status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		wf, _, err := buildWorkflow(newConfig())
		if err != nil {
			return err
		}

		entry, err := wf.FetchStatus(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, kycflow.UserMessage(err))
			return err
		}
		fmt.Println(entry.Status)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the verification status and listen for backend status pushes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := newConfig()
		wf, store, err := buildWorkflow(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go wf.Poll(ctx)

		handler := handlers.NewStatusHandler(store, logger.Logger)
		mux := http.NewServeMux()
		mux.Handle(cfg.webhookPath, handler)

		go func() {
			if err := http.ListenAndServe(cfg.listenAddr, mux); err != nil {
				log.Fatalf("failed to listen server: %s", err)
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		cancel()
		return nil
	},
}

func buildWorkflow(cfg config) (*kycflow.Workflow, *statuscache.Cache, error) {
	store, err := statuscache.New(0)
	if err != nil {
		return nil, nil, err
	}

	uploader, err := newUploader(cfg)
	if err != nil {
		return nil, nil, err
	}

	tokens := kycflow.TokenProviderFunc(func(context.Context) (string, error) {
		if cfg.ApiToken.RawString() == "" {
			return "", kycflow.ErrUnauthenticated
		}
		return cfg.ApiToken.RawString(), nil
	})

	options := []kycflow.Option{
		kycflow.WithLogger(logger.Logger),
		kycflow.WithPollInterval(cfg.pollInterval),
	}
	if withOCR && cfg.ocrUrl != "" {
		options = append(options, kycflow.WithExtractor(ocr.New(cfg.ocrUrl, cfg.OcrApiKey.RawString())))
	}

	wf := kycflow.NewWorkflow(
		cfg.userID,
		tokens,
		verification.NewClient(cfg.apiUrl),
		uploader,
		store,
		options...,
	)
	return wf, store, nil
}

func newUploader(cfg config) (kycflow.IUploader, error) {
	switch cfg.storageBackend {
	case "minio":
		return upload.NewMinioUploader(cfg.minioEndpoint, cfg.minioAccessKey, cfg.MinioSecretKey.RawString(), cfg.minioSSL, cfg.minioBucket)
	case "cloudinary":
		return upload.NewCloudinaryUploader(cfg.CloudinaryUrl.RawString())
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.storageBackend)
	}
}

func readAttachment(path string) (kycflow.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return kycflow.Attachment{}, err
	}

	return kycflow.Attachment{
		Name:        path,
		ContentType: http.DetectContentType(data),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func main() {
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	logger.InitSlog()

	submitCmd.Flags().StringVar(&idType, "id-type", "", "ID document type (passport, driver_license, national_id, ssn)")
	submitCmd.Flags().StringVar(&frontPath, "front", "", "path to the front image")
	submitCmd.Flags().StringVar(&backPath, "back", "", "path to the back image")
	submitCmd.Flags().BoolVar(&withOCR, "ocr", false, "extract document text before submitting")
	rootCmd.AddCommand(submitCmd, statusCmd, watchCmd)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
