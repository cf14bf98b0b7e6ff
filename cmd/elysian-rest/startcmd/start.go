/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redsync/redsync/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	redisapi "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/ixoworld/elysian/cmd/common"
	"github.com/ixoworld/elysian/internal/pkg/log"
	tlsutil "github.com/ixoworld/elysian/internal/pkg/utils/tls"
	"github.com/ixoworld/elysian/pkg/capability"
	"github.com/ixoworld/elysian/pkg/did"
	"github.com/ixoworld/elysian/pkg/doc/validator/jsonschema"
	"github.com/ixoworld/elysian/pkg/event"
	"github.com/ixoworld/elysian/pkg/locker"
	"github.com/ixoworld/elysian/pkg/observability/health/healthchecks"
	"github.com/ixoworld/elysian/pkg/observability/metrics"
	"github.com/ixoworld/elysian/pkg/observability/metrics/noop"
	metricsProvider "github.com/ixoworld/elysian/pkg/observability/metrics/prometheus"
	"github.com/ixoworld/elysian/pkg/observability/tracing"
	"github.com/ixoworld/elysian/pkg/queue"
	"github.com/ixoworld/elysian/pkg/queue/mem"
	restcommon "github.com/ixoworld/elysian/pkg/restapi/common"
	"github.com/ixoworld/elysian/pkg/restapi/resterr"
	"github.com/ixoworld/elysian/pkg/restapi/v1/elysian"
	"github.com/ixoworld/elysian/pkg/restapi/v1/healthcheck"
	"github.com/ixoworld/elysian/pkg/restapi/v1/logapi"
	"github.com/ixoworld/elysian/pkg/restapi/v1/mw"
	"github.com/ixoworld/elysian/pkg/restapi/v1/version"
	"github.com/ixoworld/elysian/pkg/service/admission"
	"github.com/ixoworld/elysian/pkg/service/project"
	"github.com/ixoworld/elysian/pkg/service/settlement"
	"github.com/ixoworld/elysian/pkg/service/transaction"
	"github.com/ixoworld/elysian/pkg/signature"
	"github.com/ixoworld/elysian/pkg/storage/mongodb"
	"github.com/ixoworld/elysian/pkg/storage/mongodb/capabilitystore"
	"github.com/ixoworld/elysian/pkg/storage/mongodb/domainstore"
	"github.com/ixoworld/elysian/pkg/storage/mongodb/transactionstore"
	"github.com/ixoworld/elysian/pkg/storage/mongodb/walletstore"
	"github.com/ixoworld/elysian/pkg/storage/redis"
	"github.com/ixoworld/elysian/pkg/storage/redis/didkeystore"
	"github.com/ixoworld/elysian/pkg/storage/redis/msgqueue"
	"github.com/ixoworld/elysian/pkg/storage/redis/templatecachestore"
	"github.com/ixoworld/elysian/pkg/template"
	"github.com/ixoworld/elysian/pkg/template/registry/fsregistry"
	"github.com/ixoworld/elysian/pkg/template/registry/httpregistry"
	"github.com/ixoworld/elysian/pkg/template/registry/s3registry"
	"github.com/ixoworld/elysian/pkg/txlog"
	"github.com/ixoworld/elysian/pkg/wallet"
	"github.com/ixoworld/elysian/pkg/wallet/keyprotect"
)

var logger = log.New("elysian-rest")

const (
	shutdownTimeout    = 10 * time.Second
	fetchRetries       = 3
	fetchRetryInterval = 500 * time.Millisecond
	commitLockExpiry   = 30 * time.Second
)

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
	Shutdown(ctx context.Context) error
}

type messageQueue interface {
	queue.Publisher
	queue.Subscriber
}

type options struct {
	version string
}

// StartOpts configures the start command.
type StartOpts func(opts *options)

// WithVersion sets the version reported on /version.
func WithVersion(version string) StartOpts {
	return func(opts *options) {
		opts.version = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start elysian-rest",
		Long:  "Start the transaction admission and settlement REST service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			o := &options{}

			for _, opt := range opts {
				opt(o)
			}

			return startServer(cmd.Context(), params, o)
		},
	}
}

// services holds everything the REST layer and the settlement loop run on.
type services struct {
	mongoClient *mongodb.Client
	redisClient *redis.Client
	queue       messageQueue
	bus         *event.Bus
	project     *project.Service
	settlement  *settlement.Loop
	metrics     metrics.Metrics
	tracer      trace.Tracer
}

func startServer(ctx context.Context, params *startupParameters, o *options) error { //nolint:funlen
	common.SetLogSpec(logger, params.logLevel)

	shutdownTracer, tracer, err := tracing.Initialize(params.tracingParams.provider, params.tracingParams.serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracer()

	mp := createMetricsProvider(params)

	if err = mp.Create(); err != nil {
		return fmt.Errorf("create metrics provider: %w", err)
	}

	defer func() {
		if destroyErr := mp.Destroy(); destroyErr != nil {
			logger.Warn("destroy metrics provider", log.WithError(destroyErr))
		}
	}()

	rootCAs, err := tlsutil.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return fmt.Errorf("load CA certificates: %w", err)
	}

	svc, err := buildServices(ctx, params, tlsutil.ClientConfig(rootCAs), tracer, mp.Metrics())
	if err != nil {
		return err
	}

	defer svc.close()

	e := buildEcho(params, svc, o.version)
	ready := newReadinessController(e)

	svc.settlement.Start()
	defer svc.settlement.Stop()

	srv := &http.Server{Addr: params.hostURL, Handler: e, ReadHeaderTimeout: params.requestTimeout}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		ready.Ready(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("shut down REST server", log.WithError(shutdownErr))
		}
	}()

	logger.Info("Starting elysian-rest server", log.WithHostURL(params.hostURL))

	ready.Ready(true)

	if err = serve(srv, params.tlsParameters); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("REST server stopped: %w", err)
	}

	return nil
}

func serve(srv httpServer, params *tlsParameters) error {
	if params.serveCertPath != "" && params.serveKeyPath != "" {
		return srv.ListenAndServeTLS(params.serveCertPath, params.serveKeyPath)
	}

	return srv.ListenAndServe()
}

func buildServices(ctx context.Context, params *startupParameters, tlsConfig *tls.Config, tracer trace.Tracer,
	m metrics.Metrics) (*services, error) {
	svc := &services{metrics: m, tracer: tracer}

	var err error

	svc.mongoClient, err = common.InitMongoDB(params.dbParameters, logger,
		mongodb.WithTraceProvider(otel.GetTracerProvider()))
	if err != nil {
		return nil, err
	}

	redisOpts := []redis.ClientOpt{
		redis.WithPassword(params.redisParameters.password),
		redis.WithMasterName(params.redisParameters.masterName),
		redis.WithTraceProvider(otel.GetTracerProvider()),
	}

	if params.redisParameters.tls {
		redisOpts = append(redisOpts, redis.WithTLSConfig(tlsConfig))
	}

	svc.redisClient, err = redis.New(params.redisParameters.addrs, redisOpts...)
	if err != nil {
		svc.close()

		return nil, fmt.Errorf("create redis client: %w", err)
	}

	if err = svc.build(ctx, params, tlsutil.HTTPClient(tlsConfig)); err != nil {
		svc.close()

		return nil, err
	}

	return svc, nil
}

func (svc *services) build(ctx context.Context, params *startupParameters, httpClient *http.Client) error { //nolint:funlen
	awsCfg, err := loadAWSConfig(ctx, params.awsParameters)
	if err != nil {
		return err
	}

	registry, err := createTemplateRegistry(params.templateParameters, awsCfg, httpClient,
		params.awsParameters.endpoint != "")
	if err != nil {
		return err
	}

	capStore, err := capabilitystore.NewStore(ctx, svc.mongoClient)
	if err != nil {
		return fmt.Errorf("create capability store: %w", err)
	}

	txStore, err := transactionstore.NewStore(ctx, svc.mongoClient)
	if err != nil {
		return fmt.Errorf("create transaction store: %w", err)
	}

	walletStore, err := walletstore.NewStore(ctx, svc.mongoClient)
	if err != nil {
		return fmt.Errorf("create wallet store: %w", err)
	}

	protector, err := createKeyProtector(params.awsParameters, awsCfg)
	if err != nil {
		return err
	}

	svc.queue = createQueue(params.queueParameters, svc.redisClient)

	svc.bus, err = event.Initialize()
	if err != nil {
		return fmt.Errorf("initialize event bus: %w", err)
	}

	eventPublisher := event.NewEventPublisher(svc.bus)

	resolver := did.NewResolver(didkeystore.New(svc.redisClient, params.didCacheTTL), params.blockchainURL,
		did.WithRetry(fetchRetries, fetchRetryInterval), did.WithHTTPClient(httpClient))

	capabilities := capability.NewService(capStore)
	transactions := txlog.New(txStore)

	admitter := admission.New(&admission.Config{
		Capabilities: capabilities,
		Templates:    template.New(templatecachestore.New(svc.redisClient, params.templateParameters.cacheTTL), registry),
		Schemas:      jsonschema.NewCachingValidator(),
		Signatures:   signature.NewVerifier(resolver, signature.WithIdentityHook(identityHook(params.identityHook))),
		Store:        svc.mongoClient,
		Tracer:       svc.tracer,
		Metrics:      svc.metrics,
	})

	processor := transaction.New(&transaction.Config{
		Admission: admitter,
		Log:       transactions,
		Queue:     svc.queue,
		Notifier:  transaction.NewNotifier(eventPublisher),
		Metrics:   svc.metrics,
		Locker:    createCommitLocker(params.commitLock, svc.redisClient.API()),
	})

	svc.project = project.New(&project.Config{
		Processor:    processor,
		Capabilities: capabilities,
		Wallets: wallet.NewService(&wallet.Config{
			Store:     walletStore,
			Protector: protector,
			DIDCache:  resolver,
		}),
		Stores: project.Stores{
			Projects:        domainstore.New(svc.mongoClient, project.ProjectsCollection),
			ProjectStatuses: domainstore.New(svc.mongoClient, project.ProjectStatusesCollection),
			Agents:          domainstore.New(svc.mongoClient, project.AgentsCollection),
			AgentStatuses:   domainstore.New(svc.mongoClient, project.AgentStatusesCollection),
			Claims:          domainstore.New(svc.mongoClient, project.ClaimsCollection),
			Evaluations:     domainstore.New(svc.mongoClient, project.EvaluationsCollection),
		},
		Transactions: transactions,
	})

	svc.settlement, err = settlement.New(&settlement.Config{
		Queue:      svc.queue,
		Log:        transactions,
		Handlers:   svc.project.Handlers(),
		Routes:     project.Routes(),
		EthHandler: svc.project.EthHandler(),
		Events:     eventPublisher,
		Metrics:    svc.metrics,
		Interval:   params.settlementInterval,
	})
	if err != nil {
		return fmt.Errorf("create settlement loop: %w", err)
	}

	return nil
}

func (svc *services) close() {
	if svc.bus != nil {
		if err := svc.bus.Close(); err != nil {
			logger.Warn("close event bus", log.WithError(err))
		}
	}

	if q, ok := svc.queue.(*mem.Queue); ok {
		q.Close()
	}

	if svc.redisClient != nil {
		if err := svc.redisClient.Close(); err != nil {
			logger.Warn("close redis client", log.WithError(err))
		}
	}

	if svc.mongoClient != nil {
		if err := svc.mongoClient.Close(); err != nil {
			logger.Warn("close MongoDB client", log.WithError(err))
		}
	}
}

func buildEcho(params *startupParameters, svc *services, ver string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(requestTimeout(params.requestTimeout))
	e.Use(mw.APIKeyAuth(params.apiToken))

	if params.metricsProviderName == metricsProviderPrometheus && params.promHTTPURL == "" {
		restcommon.Mount(e, metricsProvider.NewHandler())
	}

	healthcheck.NewController(e, healthchecks.Get(&healthchecks.Config{
		MongoDB: svc.mongoClient,
		Redis:   svc.redisClient,
	}))

	logapi.NewController(e)

	version.NewController(e, version.Config{
		Version: ver,
		Methods: svc.project.Methods(),
	})

	elysian.NewController(e, &elysian.Config{
		Handler: svc.project,
		Tracer:  svc.tracer,
	})

	return e
}

// requestTimeout bounds the context of every request.
func requestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func createMetricsProvider(params *startupParameters) metrics.Provider {
	if params.metricsProviderName != metricsProviderPrometheus {
		return noop.NewProvider()
	}

	if params.promHTTPURL == "" {
		return metricsProvider.NewPrometheusProvider(nil)
	}

	mux := http.NewServeMux()
	restcommon.MountMux(mux, metricsProvider.NewHandler())

	return metricsProvider.NewPrometheusProvider(&http.Server{
		Addr:              params.promHTTPURL,
		Handler:           mux,
		ReadHeaderTimeout: params.requestTimeout,
	})
}

func loadAWSConfig(ctx context.Context, params *awsParameters) (*aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{}

	if params.region != "" {
		opts = append(opts, awsconfig.WithRegion(params.region))
	}

	if params.endpoint != "" {
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(endpointResolver(params.endpoint)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &cfg, nil
}

func endpointResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpoint,
			SigningRegion:     region,
			HostnameImmutable: true,
		}, nil
	}
}

func createTemplateRegistry(params *templateParameters, awsCfg *aws.Config, httpClient *http.Client,
	pathStyle bool) (template.Registry, error) {
	switch params.registryType {
	case registryFS:
		return fsregistry.New(params.location), nil
	case registryHTTP:
		return httpregistry.New(params.location,
			httpregistry.WithRetry(fetchRetries, fetchRetryInterval),
			httpregistry.WithHTTPClient(httpClient),
		), nil
	case registryS3:
		client := s3.NewFromConfig(*awsCfg, func(o *s3.Options) {
			o.UsePathStyle = pathStyle
		})

		return s3registry.New(client, params.location, params.prefix), nil
	default:
		return nil, fmt.Errorf("unsupported template registry type: %s", params.registryType)
	}
}

type keyProtector interface {
	Protect(ctx context.Context, plaintext []byte) ([]byte, error)
	Unprotect(ctx context.Context, ciphertext []byte) ([]byte, error)
}

func createKeyProtector(params *awsParameters, awsCfg *aws.Config) (keyProtector, error) {
	if params.kmsKeyID == "" {
		logger.Warn("no KMS key configured, wallet signing keys are stored unprotected")

		return keyprotect.Noop{}, nil
	}

	k, err := keyprotect.NewKMS(awsCfg, params.kmsKeyID)
	if err != nil {
		return nil, fmt.Errorf("create KMS key protector: %w", err)
	}

	return k, nil
}

func createQueue(params *queueParameters, redisClient *redis.Client) messageQueue {
	if params.queueType == queueMem {
		logger.Warn("using in-memory message queue, outbound messages never leave this process")

		return mem.New()
	}

	return msgqueue.New(redisClient,
		msgqueue.WithOutboundKey(params.outboundKey),
		msgqueue.WithInboundKey(params.inboundKey),
	)
}

type commitLocker interface {
	NewMutex(key string, opts ...redsync.Option) locker.Lock
}

func createCommitLocker(kind string, redisClient redisapi.UniversalClient) commitLocker {
	switch kind {
	case lockRedis:
		return locker.NewRedis(redisClient, redsync.WithExpiry(commitLockExpiry))
	case lockLocal:
		return locker.NewLocal()
	default:
		return nil
	}
}

func identityHook(name string) signature.IdentityHook {
	if name == identityKYC {
		return signature.KYCCredentialHook
	}

	return signature.AcceptAll
}
