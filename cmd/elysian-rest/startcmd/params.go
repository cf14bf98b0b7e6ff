/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ixoworld/elysian/cmd/common"
	cmdutils "github.com/ixoworld/elysian/internal/pkg/utils/cmd"
	"github.com/ixoworld/elysian/pkg/observability/tracing"
	"github.com/ixoworld/elysian/pkg/storage/redis/msgqueue"
)

const (
	commonEnvVarUsageText = " Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the elysian-rest instance on. Format: HostName:Port." +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "ELYSIAN_HOST_URL"

	apiTokenFlagName  = "api-token"
	apiTokenFlagUsage = "Optional API key expected in the X-API-Key header of every non-public request." +
		commonEnvVarUsageText + apiTokenEnvKey
	apiTokenEnvKey = "ELYSIAN_API_TOKEN" //nolint:gosec

	requestTimeoutFlagName  = "request-timeout"
	requestTimeoutFlagUsage = "Deadline applied to every REST request, for example 30s. Default: 30s." +
		commonEnvVarUsageText + requestTimeoutEnvKey
	requestTimeoutEnvKey = "ELYSIAN_REQUEST_TIMEOUT"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "ELYSIAN_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "ELYSIAN_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for the elysian-rest server. " + commonEnvVarUsageText +
		tlsCertificateEnvKey
	tlsCertificateEnvKey = "ELYSIAN_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for the elysian-rest server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "ELYSIAN_TLS_KEY"

	redisAddrsFlagName  = "redis-addrs"
	redisAddrsFlagUsage = "Comma-separated list of Redis addresses." + commonEnvVarUsageText + redisAddrsEnvKey
	redisAddrsEnvKey    = "ELYSIAN_REDIS_ADDRS"

	redisPasswordFlagName  = "redis-password"
	redisPasswordFlagUsage = "Redis password." + commonEnvVarUsageText + redisPasswordEnvKey
	redisPasswordEnvKey    = "ELYSIAN_REDIS_PASSWORD" //nolint:gosec

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameFlagUsage = "Redis sentinel master name." + commonEnvVarUsageText + redisMasterNameEnvKey
	redisMasterNameEnvKey    = "ELYSIAN_REDIS_MASTER_NAME"

	redisTLSFlagName  = "redis-tls"
	redisTLSFlagUsage = "Connect to Redis over TLS using the tls-cacerts pool. Possible values [true] [false]." +
		" Defaults to false if not set. " + commonEnvVarUsageText + redisTLSEnvKey
	redisTLSEnvKey = "ELYSIAN_REDIS_TLS"

	templateRegistryTypeFlagName  = "template-registry-type"
	templateRegistryTypeFlagUsage = "Where JSON schema templates are read from. Supported options: fs, http, s3." +
		commonEnvVarUsageText + templateRegistryTypeEnvKey
	templateRegistryTypeEnvKey = "ELYSIAN_TEMPLATE_REGISTRY_TYPE"

	templateRegistryLocationFlagName  = "template-registry-location"
	templateRegistryLocationFlagUsage = "Template registry location: a directory for fs, a base URL for http," +
		" a bucket name for s3." + commonEnvVarUsageText + templateRegistryLocationEnvKey
	templateRegistryLocationEnvKey = "ELYSIAN_TEMPLATE_REGISTRY_LOCATION"

	templateRegistryPrefixFlagName  = "template-registry-prefix"
	templateRegistryPrefixFlagUsage = "Optional key prefix inside the s3 bucket." +
		commonEnvVarUsageText + templateRegistryPrefixEnvKey
	templateRegistryPrefixEnvKey = "ELYSIAN_TEMPLATE_REGISTRY_PREFIX"

	templateCacheTTLFlagName  = "template-cache-ttl"
	templateCacheTTLFlagUsage = "How long a fetched template stays in Redis. Default: 10m." +
		commonEnvVarUsageText + templateCacheTTLEnvKey
	templateCacheTTLEnvKey = "ELYSIAN_TEMPLATE_CACHE_TTL"

	didCacheTTLFlagName  = "did-cache-ttl"
	didCacheTTLFlagUsage = "How long a resolved DID document stays in Redis. Default: 1h." +
		commonEnvVarUsageText + didCacheTTLEnvKey
	didCacheTTLEnvKey = "ELYSIAN_DID_CACHE_TTL"

	blockchainURLFlagName  = "blockchain-rest-url"
	blockchainURLFlagUsage = "Blockchain REST API used to resolve signer DIDs." +
		commonEnvVarUsageText + blockchainURLEnvKey
	blockchainURLEnvKey = "ELYSIAN_BLOCKCHAIN_REST_URL"

	identityHookFlagName  = "identity-hook"
	identityHookFlagUsage = "Identity check run for capabilities that require KYC. Supported options: none, kyc." +
		" Default: none." + commonEnvVarUsageText + identityHookEnvKey
	identityHookEnvKey = "ELYSIAN_IDENTITY_HOOK"

	queueTypeFlagName  = "queue-type"
	queueTypeFlagUsage = "Message queue between the pipeline and the blockchain bridge. Supported options:" +
		" redis, mem. Default: redis." + commonEnvVarUsageText + queueTypeEnvKey
	queueTypeEnvKey = "ELYSIAN_QUEUE_TYPE"

	outboundQueueFlagName  = "queue-outbound-key"
	outboundQueueFlagUsage = "Redis list that outbound messages are pushed to. Default: " +
		msgqueue.DefaultOutboundKey + "." + commonEnvVarUsageText + outboundQueueEnvKey
	outboundQueueEnvKey = "ELYSIAN_QUEUE_OUTBOUND_KEY"

	inboundQueueFlagName  = "queue-inbound-key"
	inboundQueueFlagUsage = "Redis list that settlement responses are polled from. Default: " +
		msgqueue.DefaultInboundKey + "." + commonEnvVarUsageText + inboundQueueEnvKey
	inboundQueueEnvKey = "ELYSIAN_QUEUE_INBOUND_KEY"

	commitLockFlagName  = "commit-lock"
	commitLockFlagUsage = "Serializes commits per project. Supported options: none, local, redis. Default: none." +
		commonEnvVarUsageText + commitLockEnvKey
	commitLockEnvKey = "ELYSIAN_COMMIT_LOCK"

	settlementIntervalFlagName  = "settlement-interval"
	settlementIntervalFlagUsage = "How often the settlement loop polls the inbound queue. Default: 2s." +
		commonEnvVarUsageText + settlementIntervalEnvKey
	settlementIntervalEnvKey = "ELYSIAN_SETTLEMENT_INTERVAL"

	kmsKeyIDFlagName  = "kms-key-id"
	kmsKeyIDFlagUsage = "AWS KMS key protecting wallet signing keys. Keys are stored unprotected when not set." +
		commonEnvVarUsageText + kmsKeyIDEnvKey
	kmsKeyIDEnvKey = "ELYSIAN_KMS_KEY_ID"

	awsRegionFlagName  = "aws-region"
	awsRegionFlagUsage = "AWS region for KMS and the s3 template registry." + commonEnvVarUsageText + awsRegionEnvKey
	awsRegionEnvKey    = "ELYSIAN_AWS_REGION"

	awsEndpointFlagName  = "aws-endpoint"
	awsEndpointFlagUsage = "Optional AWS endpoint override, for example a localstack URL." +
		commonEnvVarUsageText + awsEndpointEnvKey
	awsEndpointEnvKey = "ELYSIAN_AWS_ENDPOINT"

	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderFlagUsage = "Metrics provider. Supported options: prometheus. Metrics are disabled when not set." +
		commonEnvVarUsageText + metricsProviderEnvKey
	metricsProviderEnvKey = "ELYSIAN_METRICS_PROVIDER_NAME"

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLFlagUsage = "Optional separate host:port serving /metrics. Served on host-url when not set." +
		commonEnvVarUsageText + promHTTPURLEnvKey
	promHTTPURLEnvKey = "ELYSIAN_PROM_HTTP_URL"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderFlagUsage = "Tracing span exporter. Supported options: JAEGER, STDOUT. Tracing is disabled when" +
		" not set." + commonEnvVarUsageText + tracingProviderEnvKey
	tracingProviderEnvKey = "ELYSIAN_TRACING_PROVIDER"

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameFlagUsage = "Service name reported with spans. Default: elysian." +
		commonEnvVarUsageText + tracingServiceNameEnvKey
	tracingServiceNameEnvKey = "ELYSIAN_TRACING_SERVICE_NAME"
)

const (
	defaultRequestTimeout     = 30 * time.Second
	defaultTemplateCacheTTL   = 10 * time.Minute
	defaultDIDCacheTTL        = time.Hour
	defaultSettlementInterval = 2 * time.Second
	defaultTracingServiceName = "elysian"
)

// Template registry types.
const (
	registryFS   = "fs"
	registryHTTP = "http"
	registryS3   = "s3"
)

// Queue types.
const (
	queueRedis = "redis"
	queueMem   = "mem"
)

// Commit lockers.
const (
	lockNone  = "none"
	lockLocal = "local"
	lockRedis = "redis"
)

// Identity hooks.
const (
	identityNone = "none"
	identityKYC  = "kyc"
)

const metricsProviderPrometheus = "prometheus"

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type redisParameters struct {
	addrs      []string
	password   string
	masterName string
	tls        bool
}

type templateParameters struct {
	registryType string
	location     string
	prefix       string
	cacheTTL     time.Duration
}

type queueParameters struct {
	queueType   string
	outboundKey string
	inboundKey  string
}

type awsParameters struct {
	region   string
	endpoint string
	kmsKeyID string
}

type tracingParams struct {
	provider    tracing.SpanExporterType
	serviceName string
}

type startupParameters struct {
	hostURL             string
	apiToken            string
	requestTimeout      time.Duration
	logLevel            string
	tlsParameters       *tlsParameters
	dbParameters        *common.DBParameters
	redisParameters     *redisParameters
	templateParameters  *templateParameters
	didCacheTTL         time.Duration
	blockchainURL       string
	identityHook        string
	commitLock          string
	queueParameters     *queueParameters
	settlementInterval  time.Duration
	awsParameters       *awsParameters
	metricsProviderName string
	promHTTPURL         string
	tracingParams       *tracingParams
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) { //nolint:funlen
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	requestTimeout, err := cmdutils.GetUserSetOptionalDuration(cmd, requestTimeoutFlagName, requestTimeoutEnvKey,
		defaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	templateParams, err := getTemplateParameters(cmd)
	if err != nil {
		return nil, err
	}

	didCacheTTL, err := cmdutils.GetUserSetOptionalDuration(cmd, didCacheTTLFlagName, didCacheTTLEnvKey,
		defaultDIDCacheTTL)
	if err != nil {
		return nil, err
	}

	blockchainURL, err := cmdutils.GetUserSetVarFromString(cmd, blockchainURLFlagName, blockchainURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	identityHook, err := getIdentityHook(cmd)
	if err != nil {
		return nil, err
	}

	queueParams, err := getQueueParameters(cmd)
	if err != nil {
		return nil, err
	}

	commitLock, err := getCommitLock(cmd)
	if err != nil {
		return nil, err
	}

	settlementInterval, err := cmdutils.GetUserSetOptionalDuration(cmd, settlementIntervalFlagName,
		settlementIntervalEnvKey, defaultSettlementInterval)
	if err != nil {
		return nil, err
	}

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)
	if metricsProviderName != "" && metricsProviderName != metricsProviderPrometheus {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProviderName)
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:             hostURL,
		apiToken:            cmdutils.GetUserSetOptionalVarFromString(cmd, apiTokenFlagName, apiTokenEnvKey),
		requestTimeout:      requestTimeout,
		logLevel:            cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		tlsParameters:       tlsParams,
		dbParameters:        dbParams,
		redisParameters:     redisParams,
		templateParameters:  templateParams,
		didCacheTTL:         didCacheTTL,
		blockchainURL:       blockchainURL,
		identityHook:        identityHook,
		commitLock:          commitLock,
		queueParameters:     queueParams,
		settlementInterval:  settlementInterval,
		awsParameters:       getAWSParameters(cmd),
		metricsProviderName: metricsProviderName,
		promHTTPURL:         cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey),
		tracingParams:       tracingParams,
	}, nil
}

func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	addrs, err := cmdutils.GetUserSetCSVVar(cmd, redisAddrsFlagName, redisAddrsEnvKey, false)
	if err != nil {
		return nil, err
	}

	useTLS, err := cmdutils.GetUserSetOptionalBool(cmd, redisTLSFlagName, redisTLSEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &redisParameters{
		addrs:      addrs,
		password:   cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		masterName: cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey),
		tls:        useTLS,
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPool, err := cmdutils.GetUserSetOptionalBool(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalCSVVar(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
		serveCertPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		serveKeyPath:   cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
	}, nil
}

func getTemplateParameters(cmd *cobra.Command) (*templateParameters, error) {
	registryType, err := cmdutils.GetUserSetVarFromString(cmd, templateRegistryTypeFlagName,
		templateRegistryTypeEnvKey, false)
	if err != nil {
		return nil, err
	}

	registryType = strings.ToLower(registryType)

	if registryType != registryFS && registryType != registryHTTP && registryType != registryS3 {
		return nil, fmt.Errorf("unsupported template registry type: %s", registryType)
	}

	location, err := cmdutils.GetUserSetVarFromString(cmd, templateRegistryLocationFlagName,
		templateRegistryLocationEnvKey, false)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := cmdutils.GetUserSetOptionalDuration(cmd, templateCacheTTLFlagName, templateCacheTTLEnvKey,
		defaultTemplateCacheTTL)
	if err != nil {
		return nil, err
	}

	return &templateParameters{
		registryType: registryType,
		location:     location,
		prefix: cmdutils.GetUserSetOptionalVarFromString(cmd, templateRegistryPrefixFlagName,
			templateRegistryPrefixEnvKey),
		cacheTTL: cacheTTL,
	}, nil
}

func getIdentityHook(cmd *cobra.Command) (string, error) {
	hook := strings.ToLower(cmdutils.GetUserSetOptionalVarFromString(cmd, identityHookFlagName, identityHookEnvKey))

	switch hook {
	case "", identityNone:
		return identityNone, nil
	case identityKYC:
		return identityKYC, nil
	default:
		return "", fmt.Errorf("unsupported identity hook: %s", hook)
	}
}

func getCommitLock(cmd *cobra.Command) (string, error) {
	lock := strings.ToLower(cmdutils.GetUserSetOptionalVarFromString(cmd, commitLockFlagName, commitLockEnvKey))

	switch lock {
	case "", lockNone:
		return lockNone, nil
	case lockLocal, lockRedis:
		return lock, nil
	default:
		return "", fmt.Errorf("unsupported commit lock: %s", lock)
	}
}

func getQueueParameters(cmd *cobra.Command) (*queueParameters, error) {
	queueType := strings.ToLower(cmdutils.GetUserSetOptionalVarFromString(cmd, queueTypeFlagName, queueTypeEnvKey))
	if queueType == "" {
		queueType = queueRedis
	}

	if queueType != queueRedis && queueType != queueMem {
		return nil, fmt.Errorf("unsupported queue type: %s", queueType)
	}

	params := &queueParameters{
		queueType:   queueType,
		outboundKey: cmdutils.GetUserSetOptionalVarFromString(cmd, outboundQueueFlagName, outboundQueueEnvKey),
		inboundKey:  cmdutils.GetUserSetOptionalVarFromString(cmd, inboundQueueFlagName, inboundQueueEnvKey),
	}

	if params.outboundKey == "" {
		params.outboundKey = msgqueue.DefaultOutboundKey
	}

	if params.inboundKey == "" {
		params.inboundKey = msgqueue.DefaultInboundKey
	}

	return params, nil
}

func getAWSParameters(cmd *cobra.Command) *awsParameters {
	return &awsParameters{
		region:   cmdutils.GetUserSetOptionalVarFromString(cmd, awsRegionFlagName, awsRegionEnvKey),
		endpoint: cmdutils.GetUserSetOptionalVarFromString(cmd, awsEndpointFlagName, awsEndpointEnvKey),
		kmsKeyID: cmdutils.GetUserSetOptionalVarFromString(cmd, kmsKeyIDFlagName, kmsKeyIDEnvKey),
	}
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	params := &tracingParams{
		provider: strings.ToUpper(cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName,
			tracingProviderEnvKey)),
		serviceName: serviceName,
	}

	if !tracing.IsExportedSupported(params.provider) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", params.provider)
	}

	return params, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().String(apiTokenFlagName, "", apiTokenFlagUsage)
	startCmd.Flags().String(requestTimeoutFlagName, "", requestTimeoutFlagUsage)

	startCmd.Flags().String(tlsSystemCertPoolFlagName, "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSlice(tlsCACertsFlagName, []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().String(tlsCertificateFlagName, "", tlsCertificateFlagUsage)
	startCmd.Flags().String(tlsKeyFlagName, "", tlsKeyFlagUsage)

	common.Flags(startCmd)

	startCmd.Flags().StringSlice(redisAddrsFlagName, []string{}, redisAddrsFlagUsage)
	startCmd.Flags().String(redisPasswordFlagName, "", redisPasswordFlagUsage)
	startCmd.Flags().String(redisMasterNameFlagName, "", redisMasterNameFlagUsage)
	startCmd.Flags().String(redisTLSFlagName, "", redisTLSFlagUsage)

	startCmd.Flags().String(templateRegistryTypeFlagName, "", templateRegistryTypeFlagUsage)
	startCmd.Flags().String(templateRegistryLocationFlagName, "", templateRegistryLocationFlagUsage)
	startCmd.Flags().String(templateRegistryPrefixFlagName, "", templateRegistryPrefixFlagUsage)
	startCmd.Flags().String(templateCacheTTLFlagName, "", templateCacheTTLFlagUsage)

	startCmd.Flags().String(didCacheTTLFlagName, "", didCacheTTLFlagUsage)
	startCmd.Flags().String(blockchainURLFlagName, "", blockchainURLFlagUsage)
	startCmd.Flags().String(identityHookFlagName, "", identityHookFlagUsage)

	startCmd.Flags().String(queueTypeFlagName, "", queueTypeFlagUsage)
	startCmd.Flags().String(outboundQueueFlagName, "", outboundQueueFlagUsage)
	startCmd.Flags().String(inboundQueueFlagName, "", inboundQueueFlagUsage)
	startCmd.Flags().String(commitLockFlagName, "", commitLockFlagUsage)
	startCmd.Flags().String(settlementIntervalFlagName, "", settlementIntervalFlagUsage)

	startCmd.Flags().String(kmsKeyIDFlagName, "", kmsKeyIDFlagUsage)
	startCmd.Flags().String(awsRegionFlagName, "", awsRegionFlagUsage)
	startCmd.Flags().String(awsEndpointFlagName, "", awsEndpointFlagUsage)

	startCmd.Flags().String(metricsProviderFlagName, "", metricsProviderFlagUsage)
	startCmd.Flags().String(promHTTPURLFlagName, "", promHTTPURLFlagUsage)

	startCmd.Flags().String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
}
