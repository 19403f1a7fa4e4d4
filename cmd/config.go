package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"suitegate.dev/pkg/suitegate/internal/adapter"
	"suitegate.dev/pkg/suitegate/internal/domain"
	m "suitegate.dev/pkg/suitegate/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "suitegate"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	storeFlagName          = "store"
	backendFlagName        = "backend"
	branchFlagName         = "branch"
	suiteFlagName          = "suite"
	formatFlagName         = "format"
	verboseFlagName        = "verbose"
	allowEqualFlagName     = "allow-equal"
	maxNewFailuresFlagName = "max-new-failures"
	fetchTimeoutFlagName   = "fetch-timeout"
	fetchRetriesFlagName   = "fetch-retries"

	storeConfigKey          = "store"
	backendConfigKey        = "baseline.backend"
	branchConfigKey         = "baseline.branch"
	fetchTimeoutConfigKey   = "baseline.fetch_timeout"
	fetchRetriesConfigKey   = "baseline.fetch_retries"
	allowEqualConfigKey     = "policy.allow_equal"
	maxNewFailuresConfigKey = "policy.max_new_failures"
	suitesConfigKey         = "suites"

	defaultBackend        = adapter.BackendFile
	defaultFetchTimeout   = domain.DefaultFetchTimeout
	defaultFetchRetries   = domain.DefaultFetchRetries
	defaultAllowEqual     = true
	defaultMaxNewFailures = 0

	envPrefix = "SUITEGATE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".suitegate.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultSuites maps the known suites to the log format their runs produce.
var defaultSuites = map[string]string{
	"gnu": adapter.FormatGNU,
	"bfs": adapter.FormatBFS,
}

var globalLogger *slog.Logger

// configErr holds the outcome of reading the config file at startup. It is
// reported once a command runs.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(storeConfigKey, adapter.DefaultStorePath)
	viper.SetDefault(backendConfigKey, defaultBackend)
	viper.SetDefault(branchConfigKey, m.DefaultBranch)
	viper.SetDefault(fetchTimeoutConfigKey, defaultFetchTimeout.String())
	viper.SetDefault(fetchRetriesConfigKey, defaultFetchRetries)
	viper.SetDefault(allowEqualConfigKey, defaultAllowEqual)
	viper.SetDefault(maxNewFailuresConfigKey, defaultMaxNewFailures)

	for suite, format := range defaultSuites {
		viper.SetDefault(suiteFormatKey(suite), format)
	}

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = readConfig()
}

// readConfig loads suitegate.yaml when present. A missing file is fine; an
// unreadable or malformed one is not.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", configFileName, err)
}

func suiteFormatKey(suite string) string {
	return suitesConfigKey + "." + suite + ".format"
}

// resolveFormat picks the parser format for suite: an explicit flag wins,
// then suites.<suite>.format from the config.
func resolveFormat(suite, explicit string) (string, error) {
	if format := strings.TrimSpace(explicit); format != "" {
		return format, nil
	}

	if suite == "" {
		return "", errors.New("no suite given; pass --suite")
	}

	if format := viper.GetString(suiteFormatKey(suite)); format != "" {
		return format, nil
	}

	return "", errors.New("no format configured for suite " + strconv.Quote(suite) + "; pass --format or set " + suiteFormatKey(suite))
}

// baselineRef builds the ref addressed by the current branch and suite.
func baselineRef(suite string) (m.BaselineRef, error) {
	if strings.TrimSpace(suite) == "" {
		return m.BaselineRef{}, errors.New("no suite given; pass --suite")
	}

	branch := viper.GetString(branchConfigKey)
	if branch == "" {
		branch = m.DefaultBranch
	}

	return m.BaselineRef{Branch: branch, Suite: suite}, nil
}

func policyFromConfig() m.TolerancePolicy {
	return m.TolerancePolicy{
		AllowEqual:     viper.GetBool(allowEqualConfigKey),
		MaxNewFailures: viper.GetInt(maxNewFailuresConfigKey),
	}
}

func fetchTimeoutFromConfig() time.Duration {
	timeout := viper.GetDuration(fetchTimeoutConfigKey)
	if timeout <= 0 {
		return defaultFetchTimeout
	}

	return timeout
}

func fetchRetriesFromConfig() uint64 {
	retries := viper.GetInt(fetchRetriesConfigKey)
	if retries < 0 {
		return 0
	}

	return uint64(retries)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
