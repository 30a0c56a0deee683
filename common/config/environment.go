package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/inventreats/infra-definitions/common/namer"
	"github.com/pulumi/pulumi-command/sdk/go/command"
	"github.com/pulumi/pulumi-random/sdk/v4/go/random"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	sdkconfig "github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

const (
	multiValueSeparator = ","

	namerNamespace            = "common"
	StackInfraConfigNamespace = "stackinfra"
	WebappConfigNamespace     = "webapp"

	// Infra namespace
	StackInfraPostgresVersion      = "postgresVersion"
	StackInfraRedisVersion         = "redisVersion"
	StackInfraElasticsearchVersion = "elasticsearchVersion"

	// Webapp namespace
	WebappDeployParamName           = "deploy"
	WebappPostgresDBParamName       = "postgresDb"
	WebappPostgresUserParamName     = "postgresUser"
	WebappPostgresPasswordParamName = "postgresPassword"
	WebappDatabaseURLParamName      = "databaseUrl"
	WebappSecretKeyParamName        = "djangoSecretKey"
	WebappCacheURLParamName         = "cacheUrl"
	WebappSearchURLParamName        = "searchUrl"
	WebappFullImagePathParamName    = "fullImagePath"
	WebappImageRepositoryParamName  = "imageRepository"
	WebappVersionParamName          = "version"
	WebappBuildContextParamName     = "buildContext"
	WebappEnvFileParamName          = "envFile"
	WebappWorkersParamName          = "workers"
	WebappThreadsParamName          = "threads"
	WebappRuntimePackagesParamName  = "runtimePackages"
	WebappBuildPackagesParamName    = "buildPackages"
	WebappExtraComposeFileParamName = "extraComposeFile"
)

const (
	defaultPostgresDB      = "inventreats"
	defaultPostgresUser    = "inventreats"
	defaultImageRepository = "inventreats/webapp"

	defaultPostgresVersion      = "15-alpine"
	defaultRedisVersion         = "7-alpine"
	defaultElasticsearchVersion = "7.17.9"

	defaultUwsgiWorkers = 2
	defaultUwsgiThreads = 4
)

// Shared libraries kept in the final webapp image, and the build toolchain
// installed for the dependency build and purged afterwards.
var (
	defaultRuntimePackages = []string{"libpq5", "libxml2", "libjpeg62-turbo", "zlib1g"}
	defaultBuildPackages   = []string{"build-essential", "libpq-dev", "libxml2-dev", "libjpeg62-turbo-dev", "zlib1g-dev"}
)

var initRandomProvider sync.Once
var randomProvider *random.Provider

var initCommandProvider sync.Once
var commandProvider *command.Provider

type CommonEnvironment struct {
	Ctx          *pulumi.Context
	InfraConfig  *sdkconfig.Config
	WebappConfig *sdkconfig.Config
	CommonNamer  namer.Namer

	providerRegistry map[ProviderID]pulumi.ProviderResource
}

func NewCommonEnvironment(ctx *pulumi.Context) (CommonEnvironment, error) {
	env := CommonEnvironment{
		Ctx:              ctx,
		InfraConfig:      sdkconfig.New(ctx, StackInfraConfigNamespace),
		WebappConfig:     sdkconfig.New(ctx, WebappConfigNamespace),
		CommonNamer:      namer.NewNamer(ctx, ""),
		providerRegistry: make(map[ProviderID]pulumi.ProviderResource),
	}

	commandProvider, err := env.CommandProvider()
	if err != nil {
		return env, err
	}
	env.RegisterProvider(ProviderCommand, commandProvider)

	randomProvider, err := env.RandomProvider()
	if err != nil {
		return env, err
	}
	env.RegisterProvider(ProviderRandom, randomProvider)

	ctx.Log.Debug(fmt.Sprintf("webapp version: %s", env.WebappVersion()), nil)
	ctx.Log.Debug(fmt.Sprintf("deploy: %v", env.WebappDeploy()), nil)
	ctx.Log.Debug(fmt.Sprintf("full image path: %v", env.WebappFullImagePath()), nil)
	return env, nil
}

// Infra namespace
func (e *CommonEnvironment) PostgresVersion() string {
	return e.GetStringWithDefault(e.InfraConfig, StackInfraPostgresVersion, defaultPostgresVersion)
}

func (e *CommonEnvironment) RedisVersion() string {
	return e.GetStringWithDefault(e.InfraConfig, StackInfraRedisVersion, defaultRedisVersion)
}

func (e *CommonEnvironment) ElasticsearchVersion() string {
	return e.GetStringWithDefault(e.InfraConfig, StackInfraElasticsearchVersion, defaultElasticsearchVersion)
}

// Webapp namespace
func (e *CommonEnvironment) WebappDeploy() bool {
	return e.GetBoolWithDefault(e.WebappConfig, WebappDeployParamName, true)
}

func (e *CommonEnvironment) PostgresDB() string {
	return e.GetStringWithDefault(e.WebappConfig, WebappPostgresDBParamName, defaultPostgresDB)
}

func (e *CommonEnvironment) PostgresUser() string {
	return e.GetStringWithDefault(e.WebappConfig, WebappPostgresUserParamName, defaultPostgresUser)
}

// PostgresPassword is required, an unset value fails the deployment instead of
// silently wiring empty credentials into dependent services.
func (e *CommonEnvironment) PostgresPassword() pulumi.StringOutput {
	return e.WebappConfig.RequireSecret(WebappPostgresPasswordParamName)
}

// DjangoSecretKey returns the configured secret key. Use HasDjangoSecretKey to
// decide whether a key should be generated instead.
func (e *CommonEnvironment) DjangoSecretKey() pulumi.StringOutput {
	return e.WebappConfig.RequireSecret(WebappSecretKeyParamName)
}

func (e *CommonEnvironment) HasDjangoSecretKey() bool {
	_, err := e.WebappConfig.Try(WebappSecretKeyParamName)
	return err == nil
}

// DatabaseURL is assembled from the Postgres parameters when not set explicitly.
func (e *CommonEnvironment) DatabaseURL() pulumi.StringInput {
	if url, err := e.WebappConfig.Try(WebappDatabaseURLParamName); err == nil {
		return pulumi.String(url)
	}
	return pulumi.Sprintf("postgres://%s:%s@postgres:5432/%s", e.PostgresUser(), e.PostgresPassword(), e.PostgresDB())
}

func (e *CommonEnvironment) CacheURL() string {
	return e.GetStringWithDefault(e.WebappConfig, WebappCacheURLParamName, "redis://redis:6379/1")
}

func (e *CommonEnvironment) SearchURL() string {
	return e.GetStringWithDefault(e.WebappConfig, WebappSearchURLParamName, "http://elasticsearch:9200")
}

func (e *CommonEnvironment) WebappFullImagePath() string {
	return e.WebappConfig.Get(WebappFullImagePathParamName)
}

func (e *CommonEnvironment) WebappImageRepository() string {
	return e.GetStringWithDefault(e.WebappConfig, WebappImageRepositoryParamName, defaultImageRepository)
}

func (e *CommonEnvironment) WebappVersion() string {
	return e.GetStringWithDefault(e.WebappConfig, WebappVersionParamName, "latest")
}

func (e *CommonEnvironment) WebappBuildContext() string {
	return e.WebappConfig.Get(WebappBuildContextParamName)
}

func (e *CommonEnvironment) WebappEnvFile() string {
	return e.WebappConfig.Get(WebappEnvFileParamName)
}

func (e *CommonEnvironment) WebappWorkers() int {
	return e.GetIntWithDefault(e.WebappConfig, WebappWorkersParamName, defaultUwsgiWorkers)
}

func (e *CommonEnvironment) WebappThreads() int {
	return e.GetIntWithDefault(e.WebappConfig, WebappThreadsParamName, defaultUwsgiThreads)
}

func (e *CommonEnvironment) WebappRuntimePackages() []string {
	return e.GetStringListWithDefault(e.WebappConfig, WebappRuntimePackagesParamName, defaultRuntimePackages)
}

func (e *CommonEnvironment) WebappBuildPackages() []string {
	return e.GetStringListWithDefault(e.WebappConfig, WebappBuildPackagesParamName, defaultBuildPackages)
}

// WebappExtraComposeFilePath is an optional operator-provided compose file
// deployed next to the generated stack manifests.
func (e *CommonEnvironment) WebappExtraComposeFilePath() string {
	return e.WebappConfig.Get(WebappExtraComposeFileParamName)
}

func (e *CommonEnvironment) GetBoolWithDefault(config *sdkconfig.Config, paramName string, defaultValue bool) bool {
	val, err := config.TryBool(paramName)
	if err == nil {
		return val
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) GetStringListWithDefault(config *sdkconfig.Config, paramName string, defaultValue []string) []string {
	val, err := config.Try(paramName)
	if err == nil {
		return strings.Split(val, multiValueSeparator)
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) GetStringWithDefault(config *sdkconfig.Config, paramName string, defaultValue string) string {
	val, err := config.Try(paramName)
	if err == nil {
		return val
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) GetIntWithDefault(config *sdkconfig.Config, paramName string, defaultValue int) int {
	val, err := config.TryInt(paramName)
	if err == nil {
		return val
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) CommandProvider() (*command.Provider, error) {
	var err error

	if commandProvider != nil {
		return commandProvider, nil
	}
	initCommandProvider.Do(func() {
		commandProvider, err = command.NewProvider(e.Ctx, "command-provider", &command.ProviderArgs{})
	})
	return commandProvider, err
}

func (e *CommonEnvironment) RandomProvider() (*random.Provider, error) {
	var err error

	if randomProvider != nil {
		return randomProvider, nil
	}
	initRandomProvider.Do(func() {
		randomProvider, err = random.NewProvider(e.Ctx, "random-provider", &random.ProviderArgs{})
	})
	return randomProvider, err
}
