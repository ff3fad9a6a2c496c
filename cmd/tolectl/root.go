package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gaunghar/admin-console/modules/core"
	"github.com/gaunghar/admin-console/modules/core/domain/aggregates/account"
	corepersistence "github.com/gaunghar/admin-console/modules/core/infrastructure/persistence"
	coreservices "github.com/gaunghar/admin-console/modules/core/services"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/configuration"
	"github.com/gaunghar/admin-console/pkg/logging"
	"github.com/gaunghar/admin-console/pkg/session"
)

const passwordEnv = "TOLECTL_PASSWORD"

type globalOptions struct {
	backendURL string
	timeout    time.Duration
	toleID     string
	userName   string
	password   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:          "tolectl",
		Short:        "GaunGhar tole administration from the command line",
		SilenceUsage: true,
	}
	if _, err := configuration.LoadEnv([]string{".env", ".env.local"}); err != nil {
		logrus.WithError(err).Warn("failed to load env files")
	}
	defaultURL := os.Getenv("BACKEND_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:5000"
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.backendURL, "backend", defaultURL, "Backend base URL")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Backend request timeout")
	flags.StringVar(&opts.toleID, "tole", core.DefaultToleID, "Tole sent with the login request")
	flags.StringVar(&opts.userName, "user", "", "Administrator user name (required)")
	flags.StringVar(&opts.password, "password", "", "Administrator password, defaults to $"+passwordEnv)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log backend calls")
	_ = cmd.MarkPersistentFlagRequired("user")

	cmd.AddCommand(newExportCmd(opts), newRefsCmd(opts))
	return cmd
}

// login signs in and returns a context carrying the administrator session
// every backend operation is made on behalf of.
func (o *globalOptions) login(ctx context.Context) (context.Context, *backend.Client, error) {
	level := logrus.WarnLevel
	if o.verbose {
		level = logrus.DebugLevel
	}
	logger := logging.ConsoleLogger(level)
	client := backend.NewClient(backend.Options{
		BaseURL: o.backendURL,
		Timeout: o.timeout,
		Logger:  logger,
	})
	password := o.password
	if password == "" {
		password = os.Getenv(passwordEnv)
	}

	ctx = composables.WithLogger(ctx, logrus.NewEntry(logger).WithField("component", "tolectl"))
	auth := coreservices.NewAuthService(
		corepersistence.NewAuthRepository(client),
		session.NewMemoryStore(time.Hour),
		o.toleID,
	)
	sess, err := auth.Login(ctx, account.Credentials{
		ToleID:   o.toleID,
		UserName: o.userName,
		Password: password,
	})
	if err != nil {
		return nil, nil, err
	}
	return composables.WithSession(ctx, sess), client, nil
}
